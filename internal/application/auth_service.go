package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-car-rental/internal/domain/entity"
	repo "github.com/oksasatya/go-car-rental/internal/domain/repository"
	"github.com/oksasatya/go-car-rental/pkg/helpers"
)

const (
	minPasswordLen = 8
	// bcrypt only accepts inputs up to 72 bytes
	maxPasswordBytes = 72
)

// PasswordHasher is satisfied by helpers.BcryptHasher.
type PasswordHasher interface {
	Hash(plain string) (string, error)
	Verify(plain, hash string) (bool, error)
}

type AuthService struct {
	Repo     repo.UserRepository
	Hasher   PasswordHasher
	JWT      *helpers.JWTManager
	Notifier *Notifier
	Logger   *logrus.Logger
}

func NewAuthService(repo repo.UserRepository, hasher PasswordHasher, jwt *helpers.JWTManager, notifier *Notifier, logger *logrus.Logger) *AuthService {
	return &AuthService{Repo: repo, Hasher: hasher, JWT: jwt, Notifier: notifier, Logger: logger}
}

type SignupInput struct {
	Email    string
	Password string
	Name     string
}

// SessionResult is what login and signup hand back to the transport layer.
type SessionResult struct {
	User  *entity.SessionUser
	Token string
}

// NormalizeEmail lower-cases and trims an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidatePassword enforces 8 to 72 bytes and at least one upper, lower and digit.
func ValidatePassword(p string) error {
	if len(p) < minPasswordLen {
		return ErrPasswordTooShort
	}
	if len(p) > maxPasswordBytes {
		return ErrPasswordTooLong
	}
	var upper, lower, digit bool
	for _, r := range p {
		switch {
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= '0' && r <= '9':
			digit = true
		}
	}
	if !upper || !lower || !digit {
		return ErrPasswordTooSimple
	}
	return nil
}

// Signup validates the input, stores the new user and issues a session token.
func (s *AuthService) Signup(ctx context.Context, in SignupInput) (*SessionResult, error) {
	email := NormalizeEmail(in.Email)
	if email == "" || in.Password == "" {
		return nil, ErrMissingField
	}
	if err := ValidatePassword(in.Password); err != nil {
		return nil, err
	}

	existing, err := s.Repo.GetByEmail(ctx, email)
	if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, fmt.Errorf("lookup user: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}
	u := &entity.User{Email: email, Password: hash, Name: strings.TrimSpace(in.Name)}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicate) {
			return nil, ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	res, err := s.issue(u)
	if err != nil {
		return nil, err
	}
	Stats.Add(statSignups, 1)
	s.Notifier.Welcome(ctx, u)
	return res, nil
}

// Login checks credentials. Unknown email and wrong password both yield ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*SessionResult, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, ErrMissingField
	}

	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			Stats.Add(statLoginFailures, 1)
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	ok, err := s.Hasher.Verify(password, u.Password)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("stored credential unusable")
		}
		Stats.Add(statLoginFailures, 1)
		return nil, ErrInvalidCredentials
	}
	if !ok {
		Stats.Add(statLoginFailures, 1)
		return nil, ErrInvalidCredentials
	}
	res, err := s.issue(u)
	if err != nil {
		return nil, err
	}
	Stats.Add(statLogins, 1)
	return res, nil
}

// Session resolves a token to the user it was issued for.
func (s *AuthService) Session(ctx context.Context, token string) (*entity.SessionUser, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}
	claims, err := s.JWT.Verify(token)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	u, err := s.Repo.GetByID(ctx, claims.UserID)
	if err != nil {
		if !errors.Is(err, repo.ErrNotFound) && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", claims.UserID).Warn("session user lookup failed")
		}
		return nil, ErrUnauthenticated
	}
	return u.ToSession(), nil
}

// GetUser returns the stored user by id.
func (s *AuthService) GetUser(ctx context.Context, id string) (*entity.User, error) {
	u, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	return u, nil
}

func (s *AuthService) issue(u *entity.User) (*SessionResult, error) {
	token, _, err := s.JWT.Issue(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("issue session token failed")
		}
		return nil, fmt.Errorf("issue token: %w", err)
	}
	return &SessionResult{User: u.ToSession(), Token: token}, nil
}
