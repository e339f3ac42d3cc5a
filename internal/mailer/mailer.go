// Package mailer delivers composed messages over SMTP or Amazon SES.
package mailer

import (
	"context"
	"errors"
	"fmt"
	"net/mail"

	"github.com/cecoladevelopment/site-backend/internal/config"
)

// Message is a fully composed notification ready for delivery.
type Message struct {
	From     string
	FromName string
	To       string
	ReplyTo  string
	Subject  string
	Text     string
	HTML     string
}

// Sender renders the From header value, display name included.
func (m *Message) Sender() string {
	if m.FromName == "" {
		return m.From
	}
	return (&mail.Address{Name: m.FromName, Address: m.From}).String()
}

// Transport delivers messages through one mail service.
type Transport interface {
	// Verify checks that the service is reachable and accepts our credentials.
	Verify(ctx context.Context) error
	// Send delivers msg and returns the message identifier.
	Send(ctx context.Context, msg *Message) (string, error)
	Name() string
}

// FailureKind classifies a failed verification.
type FailureKind string

const (
	KindAuthentication FailureKind = "authentication"
	KindConnectivity   FailureKind = "connectivity"
)

// VerifyError is returned by Transport.Verify.
type VerifyError struct {
	Kind FailureKind
	Err  error
}

func (e *VerifyError) Error() string {
	return fmt.Sprintf("%s check failed: %v", e.Kind, e.Err)
}

func (e *VerifyError) Unwrap() error {
	return e.Err
}

// KindOf returns the failure kind carried by err. Errors that are not a
// VerifyError count as connectivity failures.
func KindOf(err error) FailureKind {
	var verifyErr *VerifyError
	if errors.As(err, &verifyErr) {
		return verifyErr.Kind
	}
	return KindConnectivity
}

func authFailure(err error) error {
	return &VerifyError{Kind: KindAuthentication, Err: err}
}

func connFailure(err error) error {
	return &VerifyError{Kind: KindConnectivity, Err: err}
}

// New builds the transport selected by cfg.Transport.
func New(ctx context.Context, cfg config.MailConfig) (Transport, error) {
	switch cfg.Transport {
	case config.TransportSES:
		t, err := NewSESTransport(ctx, cfg.SES.Region)
		if err != nil {
			return nil, err
		}
		return t, nil
	case config.TransportSMTP, "":
		if cfg.SMTP.Host == "" {
			return nil, fmt.Errorf("mail.smtp.host is required")
		}
		return NewSMTPTransport(cfg.SMTP), nil
	default:
		return nil, fmt.Errorf("unknown mail transport %q", cfg.Transport)
	}
}
