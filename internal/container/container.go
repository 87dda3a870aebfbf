package container

import (
	"cloud.google.com/go/storage"
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-car-rental/config"
	"github.com/oksasatya/go-car-rental/internal/domain/repository"
	"github.com/oksasatya/go-car-rental/pkg/helpers"
)

// app-level container to share constructed components across packages
// Router can auto-wire modules from these singletons.

var (
	cfg         *config.Config
	logger      *logrus.Logger
	pgPool      *pgxpool.Pool
	redisClient *redis.Client
	gcsClient   *storage.Client

	jwtManager *helpers.JWTManager
	cookies    *helpers.SessionCookie
	hasher     *helpers.BcryptHasher

	rabbitPub *helpers.RabbitPublisher
	esClient  *elasticsearch.Client

	users    repository.UserRepository
	cars     repository.CarRepository
	bookings repository.BookingRepository
)

func SetConfig(c *config.Config)   { cfg = c }
func GetConfig() *config.Config    { return cfg }
func SetLogger(l *logrus.Logger)   { logger = l }
func GetLogger() *logrus.Logger    { return logger }
func SetPGPool(p *pgxpool.Pool)    { pgPool = p }
func GetPGPool() *pgxpool.Pool     { return pgPool }
func SetRedis(r *redis.Client)     { redisClient = r }
func GetRedis() *redis.Client      { return redisClient }
func SetGCS(s *storage.Client)     { gcsClient = s }
func GetGCS() *storage.Client      { return gcsClient }
func SetJWT(m *helpers.JWTManager) { jwtManager = m }

// GetJWT panics when startup has not installed a token manager; there is no
// safe default signing secret to fall back to here.
func GetJWT() *helpers.JWTManager {
	if jwtManager == nil {
		panic("container: JWT manager not configured")
	}
	return jwtManager
}

func SetCookies(c *helpers.SessionCookie) { cookies = c }
func GetCookies() *helpers.SessionCookie  { return cookies }

func SetHasher(h *helpers.BcryptHasher) { hasher = h }
func GetHasher() *helpers.BcryptHasher {
	if hasher == nil {
		return helpers.NewPasswordHasher()
	}
	return hasher
}

func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return rabbitPub }
func SetES(c *elasticsearch.Client)           { esClient = c }
func GetES() *elasticsearch.Client            { return esClient }

// SetRepositories installs the storage backend chosen at startup.
func SetRepositories(u repository.UserRepository, c repository.CarRepository, b repository.BookingRepository) {
	users, cars, bookings = u, c, b
}
func GetUserRepository() repository.UserRepository       { return users }
func GetCarRepository() repository.CarRepository         { return cars }
func GetBookingRepository() repository.BookingRepository { return bookings }
