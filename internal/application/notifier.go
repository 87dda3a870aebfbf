package application

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/go-car-rental/config"
	"github.com/oksasatya/go-car-rental/internal/domain/entity"
	"github.com/oksasatya/go-car-rental/pkg/mailer"
	tpl "github.com/oksasatya/go-car-rental/pkg/mailer/templates"
)

// JobPublisher is satisfied by helpers.RabbitPublisher.
type JobPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}

// Notifier enqueues transactional emails. A nil Notifier, a nil publisher or
// MailSendEnabled=false turn every call into a no-op. Publish failures are
// logged and never fail the request that triggered them.
type Notifier struct {
	Pub    JobPublisher
	Cfg    *config.Config
	Logger *logrus.Logger
}

func NewNotifier(pub JobPublisher, cfg *config.Config, logger *logrus.Logger) *Notifier {
	return &Notifier{Pub: pub, Cfg: cfg, Logger: logger}
}

func (n *Notifier) enabled() bool {
	return n != nil && n.Pub != nil && n.Cfg != nil && n.Cfg.MailSendEnabled
}

func (n *Notifier) Welcome(ctx context.Context, u *entity.User) {
	if !n.enabled() {
		return
	}
	data := tpl.NewWelcomeData(n.Cfg, u.Name, u.Email, tpl.WithTime(time.Now()))
	n.publish(ctx, mailer.EmailJob{To: u.Email, Template: tpl.Welcome, Data: data})
}

func (n *Notifier) BookingCreated(ctx context.Context, u *entity.User, b *entity.Booking, car *entity.Car, days int) {
	if !n.enabled() || u == nil {
		return
	}
	info := tpl.BookingInfo{
		ID:              b.ID,
		CarName:         car.Make + " " + car.Model,
		StartDate:       b.StartDate,
		EndDate:         b.EndDate,
		Days:            days,
		TotalPrice:      b.TotalPrice,
		PickupLocation:  b.PickupLocation,
		DropoffLocation: b.DropoffLocation,
	}
	data := tpl.NewBookingConfirmationData(n.Cfg, u.Name, u.Email, info, tpl.WithTime(time.Now()))
	n.publish(ctx, mailer.EmailJob{To: u.Email, Template: tpl.BookingConfirmation, Data: data})
}

func (n *Notifier) publish(ctx context.Context, job mailer.EmailJob) {
	if err := n.Pub.PublishJSON(ctx, job); err != nil && n.Logger != nil {
		n.Logger.WithError(err).WithField("template", job.Template).Warn("failed to publish email job")
	}
}
