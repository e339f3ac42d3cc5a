// Package contact relays assessment requests from the site's contact form
// to the sales mailbox.
package contact

import (
	"context"
	"time"

	"github.com/cecoladevelopment/site-backend/internal/config"
	"github.com/cecoladevelopment/site-backend/internal/errors"
	"github.com/cecoladevelopment/site-backend/internal/logger"
	"github.com/cecoladevelopment/site-backend/internal/mailer"
	"github.com/cecoladevelopment/site-backend/internal/metrics"
	"github.com/cecoladevelopment/site-backend/internal/models"
)

type Relay struct {
	transport mailer.Transport
	cfg       config.ContactConfig
	logger    logger.Logger
	now       func() time.Time
}

// NewRelay returns a Relay. transport may be nil when mail is not
// configured; submissions then fail with SERVICE_UNAVAILABLE.
func NewRelay(transport mailer.Transport, cfg config.ContactConfig, log logger.Logger) *Relay {
	return &Relay{
		transport: transport,
		cfg:       cfg,
		logger:    log.With(map[string]interface{}{"component": "contact"}),
		now:       time.Now,
	}
}

// Submit validates sub, checks the transport and delivers the notification.
func (r *Relay) Submit(ctx context.Context, sub models.ContactSubmission) (*models.ContactResponse, error) {
	sub = Normalize(sub)
	if err := Validate(sub); err != nil {
		r.logger.Info("contact submission rejected", map[string]interface{}{"reason": err.Error()})
		r.record(metrics.OutcomeInvalid)
		return nil, err
	}

	if r.transport == nil {
		r.logger.Error("mail transport not configured", nil)
		r.record(metrics.OutcomeUnavailable)
		return nil, errors.NewServiceUnavailableError("Email service configuration error", "mail transport settings not set in environment variables")
	}

	if err := r.transport.Verify(ctx); err != nil {
		hint := string(mailer.KindOf(err))
		r.logger.WithError(err).Error("mail transport verification failed", map[string]interface{}{
			"transport": r.transport.Name(),
			"hint":      hint,
		})
		r.record(metrics.OutcomeUnavailable)
		return nil, errors.NewTransportUnavailableError(hint, err)
	}
	r.logger.Debug("mail transport verified", map[string]interface{}{"transport": r.transport.Name()})

	msg, err := Compose(sub, r.cfg, r.now())
	if err != nil {
		r.record(metrics.OutcomeDeliveryFailed)
		return nil, errors.Normalize(err)
	}

	messageID, err := r.transport.Send(ctx, msg)
	if err != nil {
		r.logger.WithError(err).Error("failed to send contact notification", map[string]interface{}{
			"transport": r.transport.Name(),
			"company":   sub.Company,
		})
		r.record(metrics.OutcomeDeliveryFailed)
		return nil, errors.NewDeliveryFailedError(err)
	}

	r.logger.Info("Email sent successfully", map[string]interface{}{
		"transport": r.transport.Name(),
		"messageId": messageID,
		"company":   sub.Company,
	})
	r.record(metrics.OutcomeSent)

	return &models.ContactResponse{
		Success:   true,
		Message:   "Email sent successfully",
		MessageID: messageID,
	}, nil
}

func (r *Relay) record(outcome string) {
	metrics.ContactSubmissions.WithLabelValues(outcome).Inc()
}
