package handler

import (
	"errors"
	"net/http"

	"linkgate/internal/auth"
	"linkgate/internal/codegen"
	"linkgate/internal/model"
	"linkgate/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

const (
	// SystemCreator owns records created by the bearer secret without an email
	SystemCreator = "system@local"
	// AdminUpdater is recorded as updatedBy for updates made with the bearer secret
	AdminUpdater = "admin@local"
)

// APIHandler serves the authenticated /api/url endpoints
type APIHandler struct {
	urls      service.ShortURLServiceInterface
	resolver  service.ResolverInterface
	analytics service.AnalyticsServiceInterface
}

// NewAPIHandler creates a new APIHandler. analytics may be nil when Redis
// is not configured.
func NewAPIHandler(
	urls service.ShortURLServiceInterface,
	resolver service.ResolverInterface,
	analytics service.AnalyticsServiceInterface,
) *APIHandler {
	RegisterValidators()
	return &APIHandler{
		urls:      urls,
		resolver:  resolver,
		analytics: analytics,
	}
}

// Register mounts the API routes on group
func (h *APIHandler) Register(group *gin.RouterGroup) {
	group.GET("/url", h.List)
	group.GET("/url/:code", h.Get)
	group.GET("/url/:code/analytics", h.Analytics)
	group.POST("/url", h.Create)
	group.PUT("/url", h.Update)
	group.DELETE("/url", h.Delete)
}

// List handles GET /api/url
// @Summary List short URLs
// @Description Lists the caller's records. Admins list the records of ?email=
// @Tags url
// @Produce json
// @Param email query string false "Owner email (admins only, required for them)"
// @Success 200 {array} model.ShortURL
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/url [get]
func (h *APIHandler) List(c *gin.Context) {
	decision, _ := auth.FromContext(c)

	owner := decision.Identity
	if decision.IsAdmin {
		owner = c.Query("email")
		if owner == "" {
			abortWithError(c, http.StatusBadRequest, "email is required for admin listing")
			return
		}
	}

	items, err := h.urls.ListByOwner(c.Request.Context(), owner)
	if err != nil {
		h.serverError(c, err, "Failed to list short urls")
		return
	}
	if items == nil {
		items = []model.ShortURL{}
	}

	c.JSON(http.StatusOK, items)
}

// Get handles GET /api/url/:code
// @Summary Get a short URL
// @Tags url
// @Produce json
// @Param code path string true "Short code"
// @Success 200 {object} model.ShortURL
// @Failure 400,403,404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/url/{code} [get]
func (h *APIHandler) Get(c *gin.Context) {
	rec, ok := h.loadVisible(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, rec)
}

// Analytics handles GET /api/url/:code/analytics
// @Summary Get real-time analytics of a short URL
// @Tags url
// @Produce json
// @Param code path string true "Short code"
// @Success 200 {object} model.AnalyticsResponse
// @Failure 400,403,404,503 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/url/{code}/analytics [get]
func (h *APIHandler) Analytics(c *gin.Context) {
	rec, ok := h.loadVisible(c)
	if !ok {
		return
	}

	if h.analytics == nil {
		abortWithError(c, http.StatusServiceUnavailable, "analytics disabled")
		return
	}

	resp, err := h.analytics.GetAnalytics(c.Request.Context(), rec.Code)
	if err != nil {
		h.serverError(c, err, "Failed to get analytics")
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Create handles POST /api/url
// @Summary Create a short URL
// @Description Only the bearer secret may set the owner through email
// @Tags url
// @Accept json
// @Produce json
// @Param request body model.CreateURLRequest true "Create request"
// @Success 201 {object} model.ShortURL
// @Failure 400,409 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/url [post]
func (h *APIHandler) Create(c *gin.Context) {
	decision, _ := auth.FromContext(c)

	var req model.CreateURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid body")
		return
	}
	if req.ExpiresAt.Invalid {
		abortWithError(c, http.StatusBadRequest, "invalid expiresAt")
		return
	}
	if req.Label == "" || req.LongURL == "" {
		abortWithError(c, http.StatusBadRequest, "label and longUrl are required")
		return
	}

	createdBy := decision.Identity
	if decision.Elevated {
		createdBy = req.Email
		if createdBy == "" {
			createdBy = SystemCreator
		}
	}

	rec, err := h.urls.Create(c.Request.Context(), model.CreateInput{
		Label:     req.Label,
		LongURL:   req.LongURL,
		ExpiresAt: req.ExpiresAt.Value,
		CreatedBy: createdBy,
	})
	if err != nil {
		switch {
		case errors.Is(err, service.ErrLabelRequired), errors.Is(err, service.ErrInvalidURL):
			abortWithError(c, http.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrCodeSpaceExhausted):
			abortWithError(c, http.StatusConflict, err.Error())
		default:
			h.serverError(c, err, "Failed to create short url")
		}
		return
	}

	log.Info().Str("code", rec.Code).Str("created_by", rec.CreatedBy).Msg("Short url created")

	c.JSON(http.StatusCreated, rec)
}

// Update handles PUT /api/url
// @Summary Update a short URL
// @Description Omitted fields keep their value, expiresAt null clears the expiry
// @Tags url
// @Accept json
// @Produce json
// @Param request body model.UpdateURLRequest true "Update request"
// @Success 200 {object} model.ShortURL
// @Failure 400,403,404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/url [put]
func (h *APIHandler) Update(c *gin.Context) {
	decision, _ := auth.FromContext(c)

	var req model.UpdateURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid body")
		return
	}
	if !codegen.IsValid(req.Code) {
		abortWithError(c, http.StatusBadRequest, "invalid code")
		return
	}
	if req.ExpiresAt.Invalid {
		abortWithError(c, http.StatusBadRequest, "invalid expiresAt")
		return
	}

	updatedBy := decision.Identity
	if decision.Elevated {
		updatedBy = AdminUpdater
	}

	rec, err := h.urls.Update(c.Request.Context(), model.UpdateInput{
		Code:      req.Code,
		Label:     req.Label,
		LongURL:   req.LongURL,
		ExpiresAt: req.ExpiresAt,
		UpdatedBy: updatedBy,
	}, decision.Identity, decision.IsAdmin)
	if err != nil {
		h.writeMutationError(c, err, "Failed to update short url")
		return
	}
	if rec == nil {
		abortWithError(c, http.StatusNotFound, "not found")
		return
	}

	h.resolver.Invalidate(req.Code)

	c.JSON(http.StatusOK, rec)
}

// Delete handles DELETE /api/url
// @Summary Delete a short URL
// @Tags url
// @Accept json
// @Param request body model.DeleteURLRequest true "Delete request"
// @Success 204
// @Failure 400,403,404 {object} ErrorResponse
// @Security BearerAuth
// @Router /api/url [delete]
func (h *APIHandler) Delete(c *gin.Context) {
	decision, _ := auth.FromContext(c)

	var req model.DeleteURLRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "invalid code")
		return
	}

	found, err := h.urls.Remove(c.Request.Context(), req.Code, decision.Identity, decision.IsAdmin)
	if err != nil {
		h.writeMutationError(c, err, "Failed to delete short url")
		return
	}
	if !found {
		abortWithError(c, http.StatusNotFound, "not found")
		return
	}

	h.resolver.Invalidate(req.Code)

	c.Status(http.StatusNoContent)
}

// loadVisible fetches the record named by the :code parameter and checks
// that the caller may see it. It writes the error response itself.
func (h *APIHandler) loadVisible(c *gin.Context) (*model.ShortURL, bool) {
	decision, _ := auth.FromContext(c)

	code := c.Param("code")
	if !codegen.IsValid(code) {
		abortWithError(c, http.StatusBadRequest, "invalid code")
		return nil, false
	}

	rec, err := h.urls.GetByCode(c.Request.Context(), code)
	if err != nil {
		h.serverError(c, err, "Failed to get short url")
		return nil, false
	}
	if rec == nil {
		abortWithError(c, http.StatusNotFound, "not found")
		return nil, false
	}
	if !decision.IsAdmin && rec.CreatedBy != decision.Identity {
		abortWithError(c, http.StatusForbidden, "forbidden")
		return nil, false
	}

	return rec, true
}

func (h *APIHandler) writeMutationError(c *gin.Context, err error, msg string) {
	switch {
	case errors.Is(err, service.ErrForbidden):
		abortWithError(c, http.StatusForbidden, "forbidden")
	case errors.Is(err, service.ErrInvalidURL):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		h.serverError(c, err, msg)
	}
}

func (h *APIHandler) serverError(c *gin.Context, err error, msg string) {
	log.Error().Err(err).Str("path", c.Request.URL.Path).Msg(msg)
	abortWithError(c, http.StatusInternalServerError, "Server error")
}
