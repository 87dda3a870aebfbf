package mailer

import (
	"testing"

	mg "github.com/mailgun/mailgun-go/v4"
	"github.com/stretchr/testify/assert"
)

func TestFromAddress(t *testing.T) {
	assert.Equal(t, "DriveLux <noreply@drivelux.test>", fromAddress("DriveLux", "noreply@drivelux.test"))
	assert.Equal(t, "noreply@drivelux.test", fromAddress(" ", "noreply@drivelux.test"))
	assert.Equal(t, "Ops <ops@drivelux.test>", fromAddress("DriveLux", "Ops <ops@drivelux.test>"))
}

func TestMailgunMessage(t *testing.T) {
	m := NewMailgun(MailgunConfig{
		Domain: "mg.drivelux.test", APIKey: "key", Sender: "noreply@drivelux.test",
		SenderName: "DriveLux", APIBase: mg.APIBaseEU, TestMode: true,
	})
	assert.Equal(t, mg.APIBaseEU, m.client.APIBase())

	msg := m.message(Email{To: "a@example.com", Subject: "Booking confirmed", Text: "t", HTML: "<p>h</p>", Tag: "booking_confirmation"})
	assert.Equal(t, []string{"a@example.com"}, msg.To())
	assert.Equal(t, []string{"booking_confirmation"}, msg.Tags())
	assert.True(t, msg.TestMode())

	plain := NewMailgun(MailgunConfig{Domain: "mg.drivelux.test", APIKey: "key", Sender: "noreply@drivelux.test"})
	assert.Equal(t, mg.APIBase, plain.client.APIBase())
	assert.Empty(t, plain.message(Email{To: "a@example.com", Subject: "s", Text: "t"}).Tags())
}
