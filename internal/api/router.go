package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cecoladevelopment/site-backend/internal/logger"
)

const (
	InquiryPath = "/api/ai-helper"
	ContactPath = "/api/contact"
)

// NewRouter wires the handlers. The operation routes accept any method so
// that preflights get CORS headers and everything but POST gets a 405.
func NewRouter(h *Handler, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogging(log), Metrics())

	router.Any(InquiryPath, CORS(InquiryMethods), h.HandleInquiry)
	router.Any(ContactPath, CORS(ContactMethods), h.HandleContact)

	router.GET("/health", h.HandleHealth)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
