// Package api exposes the inquiry and contact operations over HTTP.
package api

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/cecoladevelopment/site-backend/internal/config"
	"github.com/cecoladevelopment/site-backend/internal/contact"
	"github.com/cecoladevelopment/site-backend/internal/errors"
	"github.com/cecoladevelopment/site-backend/internal/logger"
	"github.com/cecoladevelopment/site-backend/internal/models"
)

// Responder answers visitor questions.
type Responder interface {
	Respond(ctx context.Context, query string) (*models.InquiryResponse, error)
}

// Relay forwards contact form submissions.
type Relay interface {
	Submit(ctx context.Context, sub models.ContactSubmission) (*models.ContactResponse, error)
}

type Handler struct {
	responder Responder
	relay     Relay
	app       config.AppConfig
	timeout   time.Duration
	logger    logger.Logger
}

func NewHandler(responder Responder, relay Relay, cfg *config.Config, log logger.Logger) *Handler {
	return &Handler{
		responder: responder,
		relay:     relay,
		app:       cfg.App,
		timeout:   cfg.Server.RequestTimeout,
		logger:    log.With(map[string]interface{}{"component": "api"}),
	}
}

// HandleInquiry serves /api/ai-helper.
func (h *Handler) HandleInquiry(c *gin.Context) {
	if !requirePost(c) {
		return
	}

	var req models.InquiryRequest
	if err := c.ShouldBind(&req); err != nil {
		// An unreadable body is reported the same way as a missing query.
		h.logger.Debug("failed to bind inquiry request", map[string]interface{}{"error": err.Error()})
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	resp, err := h.responder.Respond(ctx, req.Query)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// HandleContact serves /api/contact. JSON bodies are checked against the
// payload schema; url-encoded form posts bind directly.
func (h *Handler) HandleContact(c *gin.Context) {
	if !requirePost(c) {
		return
	}

	sub, err := bindSubmission(c)
	if err != nil {
		h.renderError(c, err)
		return
	}

	ctx, cancel := h.requestContext(c)
	defer cancel()

	resp, err := h.relay.Submit(ctx, sub)
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) HandleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": h.app.Name,
		"version": h.app.Version,
	})
}

func (h *Handler) requestContext(c *gin.Context) (context.Context, context.CancelFunc) {
	if h.timeout <= 0 {
		return context.WithCancel(c.Request.Context())
	}
	return context.WithTimeout(c.Request.Context(), h.timeout)
}

// renderError writes err as an ErrorResponse. Transport diagnostics are only
// included when the deployment opts in.
func (h *Handler) renderError(c *gin.Context, err error) {
	stdErr := errors.Normalize(err)
	_ = c.Error(err)

	body := models.ErrorResponse{
		Error:   stdErr.Title,
		Message: stdErr.Message,
		Fields:  stdErr.Fields,
		Hint:    stdErr.Hint,
	}
	if h.app.ExposeErrorDetails {
		body.Details = stdErr.Details
	}

	status := stdErr.HTTPStatus()
	fields := map[string]interface{}{
		"code":      stdErr.Code,
		"status":    status,
		"requestId": c.GetString(requestIDKey),
	}
	if status >= http.StatusInternalServerError {
		h.logger.WithError(err).Error(stdErr.Title, fields)
	} else {
		h.logger.Info(stdErr.Title, fields)
	}

	c.JSON(status, body)
}

func requirePost(c *gin.Context) bool {
	if c.Request.Method == http.MethodPost {
		return true
	}
	c.JSON(http.StatusMethodNotAllowed, models.ErrorResponse{Error: "Method not allowed"})
	return false
}

func bindSubmission(c *gin.Context) (models.ContactSubmission, error) {
	var sub models.ContactSubmission

	if c.ContentType() != gin.MIMEJSON {
		if err := c.ShouldBind(&sub); err != nil {
			return sub, errors.NewInvalidInputError("Invalid request body", err.Error())
		}
		return sub, nil
	}

	raw, err := c.GetRawData()
	if err != nil {
		return sub, errors.NewInvalidInputError("Invalid request body", err.Error())
	}
	if len(raw) == 0 {
		return sub, nil
	}
	if err := contact.ValidatePayload(raw); err != nil {
		return sub, err
	}
	if err := json.Unmarshal(raw, &sub); err != nil {
		return sub, errors.NewInvalidInputError("Invalid request body", err.Error())
	}
	return sub, nil
}
