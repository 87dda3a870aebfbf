package router

import (
	app "github.com/oksasatya/go-car-rental/internal/application"
	"github.com/oksasatya/go-car-rental/internal/container"
	handlers "github.com/oksasatya/go-car-rental/internal/interface/http"
	"github.com/oksasatya/go-car-rental/internal/router/modules"
)

// Services groups the application services built from the container.
type Services struct {
	Auth     *app.AuthService
	Cars     *app.CarService
	Bookings *app.BookingService
}

// BuildServices wires the application layer from the container singletons.
func BuildServices() Services {
	cfg := container.GetConfig()
	logger := container.GetLogger()

	var notifier *app.Notifier
	if pub := container.GetRabbitPub(); pub != nil {
		notifier = app.NewNotifier(pub, cfg, logger)
	}

	return Services{
		Auth: app.NewAuthService(
			container.GetUserRepository(),
			container.GetHasher(),
			container.GetJWT(),
			notifier,
			logger,
		),
		Cars: app.NewCarService(
			container.GetCarRepository(),
			container.GetRedis(),
			cfg.CarsCacheTTL,
			container.GetES(),
			cfg.ESCarsIndex,
			container.GetGCS(),
			cfg.GCSBucket,
			logger,
		),
		Bookings: app.NewBookingService(
			container.GetBookingRepository(),
			container.GetCarRepository(),
			container.GetUserRepository(),
			notifier,
			logger,
		),
	}
}

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry) {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	svc := BuildServices()

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(svc.Auth, container.GetCookies(), logger)))
	r.Add(modules.NewCarModule(handlers.NewCarHandler(svc.Cars, logger)))
	r.Add(modules.NewBookingModule(handlers.NewBookingHandler(svc.Bookings, logger)))
	if cfg.DebugMetricsEnabled {
		r.Add(modules.NewDebugModule())
	}
	r.AddPage(modules.NewPageModule(handlers.NewPageHandler(svc.Auth, svc.Cars, svc.Bookings, cfg.CompanyName, logger)))
}
