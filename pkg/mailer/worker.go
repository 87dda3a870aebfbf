package mailer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Sender delivers one rendered email. *Mailgun implements it.
type Sender interface {
	Send(ctx context.Context, e Email) error
}

// RenderFunc renders a named template into subject, text and html bodies.
type RenderFunc func(name string, data any) (string, string, string, error)

// Outcome tells the consumer what to do with a delivery.
type Outcome int

const (
	Ack Outcome = iota
	// Drop rejects a message that can never succeed.
	Drop
	// Requeue puts a message back after a transient failure.
	Requeue
)

var ErrInvalidJob = errors.New("invalid email job")

// Handle decodes, renders and sends one queued job.
func Handle(ctx context.Context, body []byte, render RenderFunc, sender Sender) (Outcome, error) {
	var job EmailJob
	if err := json.Unmarshal(body, &job); err != nil {
		return Drop, fmt.Errorf("%w: %v", ErrInvalidJob, err)
	}
	if job.To == "" {
		return Drop, fmt.Errorf("%w: missing recipient", ErrInvalidJob)
	}
	subject, text, html, err := job.Prepare(render)
	if err != nil {
		return Drop, fmt.Errorf("render %s: %w", job.Template, err)
	}
	if subject == "" || (text == "" && html == "") {
		return Drop, fmt.Errorf("%w: empty subject or body", ErrInvalidJob)
	}

	c, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	email := Email{To: job.To, Subject: subject, Text: text, HTML: html, Tag: job.Template}
	if err := sender.Send(c, email); err != nil {
		return Requeue, fmt.Errorf("send: %w", err)
	}
	return Ack, nil
}
