package handler

import (
	"context"
	"net/http"
	"time"

	"linkgate/internal/codegen"
	"linkgate/internal/model"
	"linkgate/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// GoneMessage is the body of the 410 answer for an expired link
const GoneMessage = "Ce lien a expiré. Veuillez contacter le propriétaire ou créer un nouveau lien."

const analyticsTimeout = 5 * time.Second

// RedirectHandler handles short link redirection
type RedirectHandler struct {
	resolver  service.ResolverInterface
	analytics service.AnalyticsServiceInterface
}

// NewRedirectHandler creates a new RedirectHandler. analytics may be nil.
func NewRedirectHandler(resolver service.ResolverInterface, analytics service.AnalyticsServiceInterface) *RedirectHandler {
	return &RedirectHandler{
		resolver:  resolver,
		analytics: analytics,
	}
}

// Redirect handles GET /:code
// @Summary Redirect to the long URL
// @Description Every answer is marked no-store and noindex
// @Tags redirect
// @Produce plain
// @Param code path string true "Short code"
// @Success 302
// @Failure 404,410,500 {string} string
// @Router /{code} [get]
func (h *RedirectHandler) Redirect(c *gin.Context) {
	code := c.Param("code")

	c.Header("Cache-Control", "no-store")
	c.Header("X-Robots-Tag", "noindex")

	if !codegen.IsValid(code) {
		c.String(http.StatusNotFound, "Not found")
		return
	}

	res, err := h.resolver.Resolve(c.Request.Context(), code)
	if err != nil {
		log.Error().Err(err).Str("code", code).Msg("Failed to resolve short code")
		c.String(http.StatusInternalServerError, "Server error")
		return
	}

	switch res.Status {
	case model.ResolveNotFound:
		c.String(http.StatusNotFound, "Not found")
	case model.ResolveGone:
		c.String(http.StatusGone, GoneMessage)
	default:
		h.recordAccess(c, code)
		c.Redirect(http.StatusFound, res.LongURL)
	}
}

// recordAccess feeds the real-time counters without delaying the redirect
func (h *RedirectHandler) recordAccess(c *gin.Context, code string) {
	if h.analytics == nil {
		return
	}

	clientIP := c.ClientIP()
	userAgent := c.Request.UserAgent()
	referer := c.Request.Referer()

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), analyticsTimeout)
		defer cancel()

		if err := h.analytics.RecordAccess(ctx, code, clientIP, userAgent, referer); err != nil {
			log.Error().Err(err).Str("code", code).Msg("Failed to record access")
		}
	}()
}
