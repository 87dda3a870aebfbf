package mailer

import (
	"context"
	"fmt"
	"strings"
	"time"

	mg "github.com/mailgun/mailgun-go/v4"
)

const sendTimeout = 10 * time.Second

// Email is one rendered message. Tag is the template name, so Mailgun
// analytics can split welcome mails from booking confirmations.
type Email struct {
	To      string
	Subject string
	Text    string
	HTML    string
	Tag     string
}

// MailgunConfig holds the delivery settings read from MAILGUN_* env vars.
type MailgunConfig struct {
	Domain     string
	APIKey     string
	Sender     string
	SenderName string // shown as "SenderName <Sender>"
	APIBase    string // empty keeps the US endpoint; mailgun.APIBaseEU for EU domains
	TestMode   bool   // accepted by Mailgun but never delivered
}

// Mailgun sends rental emails through one shared client.
type Mailgun struct {
	client   *mg.MailgunImpl
	from     string
	testMode bool
}

func NewMailgun(cfg MailgunConfig) *Mailgun {
	client := mg.NewMailgun(cfg.Domain, cfg.APIKey)
	if cfg.APIBase != "" {
		client.SetAPIBase(cfg.APIBase)
	}
	return &Mailgun{client: client, from: fromAddress(cfg.SenderName, cfg.Sender), testMode: cfg.TestMode}
}

func fromAddress(name, sender string) string {
	name = strings.TrimSpace(name)
	if name == "" || strings.Contains(sender, "<") {
		return sender
	}
	return fmt.Sprintf("%s <%s>", name, sender)
}

func (m *Mailgun) message(e Email) *mg.Message {
	msg := m.client.NewMessage(m.from, e.Subject, e.Text, e.To)
	if e.HTML != "" {
		msg.SetHtml(e.HTML)
	}
	if e.Tag != "" {
		_ = msg.AddTag(e.Tag)
	}
	if m.testMode {
		msg.EnableTestMode()
	}
	return msg
}

// Send delivers e. The caller's deadline wins when it is shorter than sendTimeout.
func (m *Mailgun) Send(ctx context.Context, e Email) error {
	c, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()
	if _, _, err := m.client.Send(c, m.message(e)); err != nil {
		return fmt.Errorf("mailgun send to %s: %w", e.To, err)
	}
	return nil
}
