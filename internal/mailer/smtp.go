package mailer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"net/smtp"
	"strconv"
	"time"

	"github.com/cecoladevelopment/site-backend/internal/config"
)

const defaultSMTPTimeout = 15 * time.Second

// SMTPTransport relays through an authenticated SMTP submission server.
// Secure selects implicit TLS (port 465); otherwise the session is upgraded
// with STARTTLS whenever the server advertises it.
type SMTPTransport struct {
	host     string
	port     int
	secure   bool
	username string
	password string
	timeout  time.Duration

	tlsConfig *tls.Config
}

func NewSMTPTransport(cfg config.SMTPConfig) *SMTPTransport {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultSMTPTimeout
	}
	return &SMTPTransport{
		host:     cfg.Host,
		port:     cfg.Port,
		secure:   cfg.Secure,
		username: cfg.Username,
		password: cfg.Password,
		timeout:  timeout,
		tlsConfig: &tls.Config{
			ServerName: cfg.Host,
			MinVersion: tls.VersionTLS12,
		},
	}
}

func (t *SMTPTransport) Name() string {
	return "smtp"
}

// Verify opens a session, upgrades it, authenticates and quits.
func (t *SMTPTransport) Verify(ctx context.Context) error {
	client, err := t.open(ctx)
	if err != nil {
		return err
	}
	defer client.Close()

	if err := client.Quit(); err != nil {
		return connFailure(fmt.Errorf("failed to close SMTP session: %w", err))
	}
	return nil
}

func (t *SMTPTransport) Send(ctx context.Context, msg *Message) (string, error) {
	messageID := newMessageID(msg.From, t.host)
	raw, err := buildMIME(msg, messageID, time.Now())
	if err != nil {
		return "", err
	}

	client, err := t.open(ctx)
	if err != nil {
		return "", err
	}
	defer client.Close()

	if err = client.Mail(msg.From); err != nil {
		return "", fmt.Errorf("failed to set sender: %w", err)
	}
	if err = client.Rcpt(msg.To); err != nil {
		return "", fmt.Errorf("failed to set recipient %s: %w", msg.To, err)
	}

	w, err := client.Data()
	if err != nil {
		return "", fmt.Errorf("failed to open data writer: %w", err)
	}
	if _, err = w.Write(raw); err != nil {
		return "", fmt.Errorf("failed to write message: %w", err)
	}
	if err = w.Close(); err != nil {
		return "", fmt.Errorf("failed to close data writer: %w", err)
	}

	if err = client.Quit(); err != nil {
		return "", fmt.Errorf("failed to close SMTP session: %w", err)
	}
	return messageID, nil
}

// open dials the server and returns an authenticated client. Failures are
// returned as *VerifyError.
func (t *SMTPTransport) open(ctx context.Context) (*smtp.Client, error) {
	addr := net.JoinHostPort(t.host, strconv.Itoa(t.port))
	dialer := &net.Dialer{Timeout: t.timeout}

	var (
		conn net.Conn
		err  error
	)
	if t.secure {
		conn, err = (&tls.Dialer{NetDialer: dialer, Config: t.tlsConfig}).DialContext(ctx, "tcp", addr)
	} else {
		conn, err = dialer.DialContext(ctx, "tcp", addr)
	}
	if err != nil {
		return nil, connFailure(fmt.Errorf("failed to connect to SMTP server: %w", err))
	}

	deadline := time.Now().Add(t.timeout)
	if d, ok := ctx.Deadline(); ok && d.Before(deadline) {
		deadline = d
	}
	if err = conn.SetDeadline(deadline); err != nil {
		conn.Close()
		return nil, connFailure(err)
	}

	client, err := smtp.NewClient(conn, t.host)
	if err != nil {
		conn.Close()
		return nil, connFailure(fmt.Errorf("failed to start SMTP session: %w", err))
	}

	if !t.secure {
		if ok, _ := client.Extension("STARTTLS"); ok {
			if err = client.StartTLS(t.tlsConfig); err != nil {
				client.Close()
				return nil, connFailure(fmt.Errorf("failed to start TLS: %w", err))
			}
		}
	}

	if t.username != "" {
		auth := smtp.PlainAuth("", t.username, t.password, t.host)
		if err = client.Auth(auth); err != nil {
			client.Close()
			return nil, authFailure(fmt.Errorf("SMTP authentication failed: %w", err))
		}
	}

	return client, nil
}
