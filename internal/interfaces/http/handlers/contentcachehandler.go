package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pawpath/pawpath/internal/application/contentcache"
	"github.com/pawpath/pawpath/internal/application/contentcache/dto"
	"github.com/pawpath/pawpath/internal/shared/constants"
	"github.com/pawpath/pawpath/internal/shared/errors"
	"github.com/pawpath/pawpath/internal/shared/logger"
	"github.com/pawpath/pawpath/internal/shared/utils"
)

type ContentCacheHandler struct {
	service contentCacheService
	leases  regenerationLeaseService
	logger  logger.Interface
}

func NewContentCacheHandler(
	service contentCacheService,
	leases regenerationLeaseService,
	logger logger.Interface,
) *ContentCacheHandler {
	return &ContentCacheHandler{
		service: service,
		leases:  leases,
		logger:  logger,
	}
}

type PutContentRequest struct {
	Payload          json.RawMessage `json:"payload"`
	GeneratorVersion string          `json:"generator_version" binding:"required"`
	GeneratedAt      *time.Time      `json:"generated_at"`
}

type AcquireLeaseRequest struct {
	TTLSeconds int `json:"ttl_seconds" binding:"gte=0"`
}

func keyFromPath(c *gin.Context) dto.KeyInput {
	return dto.KeyInput{
		ContentType: c.Param("contentType"),
		SubjectID:   c.Param("subjectId"),
		Locale:      c.Param("locale"),
	}
}

func setCacheHeaders(c *gin.Context, status, reason, generatorVersion string) {
	c.Header(constants.HeaderXCacheStatus, status)
	if reason != "" {
		c.Header(constants.HeaderXCacheStaleReason, reason)
	}
	if generatorVersion != "" {
		c.Header(constants.HeaderXGeneratorVersion, generatorVersion)
	}
}

// GetContent handles GET /content-cache/:contentType/:subjectId/:locale
// @Summary Look up cached content
// @Description Returns the entry with X-Cache-Status hit or stale; 404 with X-Cache-Status miss when absent
// @Tags content-cache
// @Produce json
// @Param contentType path string true "Content type" Enums(article, faq, service_description)
// @Param subjectId path string true "Subject slug"
// @Param locale path string true "BCP 47 locale"
// @Param allow_stale query bool false "Serve the last known copy when storage is unavailable"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /content-cache/{contentType}/{subjectId}/{locale} [get]
func (h *ContentCacheHandler) GetContent(c *gin.Context) {
	in := keyFromPath(c)

	var (
		result *dto.LookupResponse
		err    error
	)
	if c.Query("allow_stale") == "true" {
		result, err = h.service.GetWithFallback(c.Request.Context(), in)
	} else {
		result, err = h.service.Get(c.Request.Context(), in)
	}
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.Entry == nil {
		setCacheHeaders(c, result.Status, "", "")
		utils.ErrorResponseWithError(c, errors.NewNotFoundError("content not found"))
		return
	}

	setCacheHeaders(c, result.Status, result.Reason, result.Entry.GeneratorVersion)
	utils.SuccessResponse(c, http.StatusOK, "", result.Entry)
}

// PutContent handles PUT /content-cache/:contentType/:subjectId/:locale
// @Summary Store generated content
// @Description Inserts or overwrites the entry for the key; 201 when created, 200 when overwritten
// @Tags content-cache
// @Accept json
// @Produce json
// @Param contentType path string true "Content type" Enums(article, faq, service_description)
// @Param subjectId path string true "Subject slug"
// @Param locale path string true "BCP 47 locale"
// @Param entry body PutContentRequest true "Payload and generator version"
// @Success 200 {object} utils.APIResponse
// @Success 201 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /content-cache/{contentType}/{subjectId}/{locale} [put]
func (h *ContentCacheHandler) PutContent(c *gin.Context) {
	var req PutContentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for put content", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	result, err := h.service.Put(c.Request.Context(), dto.PutRequest{
		Key:              keyFromPath(c),
		Payload:          req.Payload,
		GeneratorVersion: req.GeneratorVersion,
		GeneratedAt:      req.GeneratedAt,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if result.Created {
		utils.CreatedResponse(c, result.Entry, "Content stored")
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Content replaced", result.Entry)
}

// DeleteContent handles DELETE /content-cache/:contentType/:subjectId/:locale
// @Summary Invalidate cached content
// @Tags content-cache
// @Produce json
// @Param contentType path string true "Content type" Enums(article, faq, service_description)
// @Param subjectId path string true "Subject slug"
// @Param locale path string true "BCP 47 locale"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /content-cache/{contentType}/{subjectId}/{locale} [delete]
func (h *ContentCacheHandler) DeleteContent(c *gin.Context) {
	deleted, err := h.service.Invalidate(c.Request.Context(), keyFromPath(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"deleted": deleted})
}

// RenderContent handles GET /content-cache/:contentType/:subjectId/:locale/html
// @Summary Render an article as HTML
// @Tags content-cache
// @Produce html
// @Param contentType path string true "Content type" Enums(article, faq, service_description)
// @Param subjectId path string true "Subject slug"
// @Param locale path string true "BCP 47 locale"
// @Success 200 {string} string "Sanitized HTML"
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /content-cache/{contentType}/{subjectId}/{locale}/html [get]
func (h *ContentCacheHandler) RenderContent(c *gin.Context) {
	result, err := h.service.Render(c.Request.Context(), keyFromPath(c), contentcache.FormatHTML)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	setCacheHeaders(c, result.Status, result.Reason, result.GeneratorVersion)
	utils.HTMLResponse(c, http.StatusOK, result.HTML)
}

// AcquireLease handles POST /content-cache/:contentType/:subjectId/:locale/lease
// @Summary Acquire a regeneration lease
// @Tags content-cache
// @Accept json
// @Produce json
// @Param contentType path string true "Content type" Enums(article, faq, service_description)
// @Param subjectId path string true "Subject slug"
// @Param locale path string true "BCP 47 locale"
// @Param lease body AcquireLeaseRequest false "Lease TTL"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 409 {object} utils.APIResponse
// @Failure 429 {object} utils.APIResponse
// @Router /content-cache/{contentType}/{subjectId}/{locale}/lease [post]
func (h *ContentCacheHandler) AcquireLease(c *gin.Context) {
	var req AcquireLeaseRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for acquire lease", "error", err)
			utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
			return
		}
	}

	ttl := time.Duration(req.TTLSeconds) * time.Second
	result, err := h.leases.AcquireLease(c.Request.Context(), keyFromPath(c), ttl)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ReleaseLease handles DELETE /content-cache/:contentType/:subjectId/:locale/lease?token=
// @Summary Release a regeneration lease
// @Tags content-cache
// @Produce json
// @Param contentType path string true "Content type" Enums(article, faq, service_description)
// @Param subjectId path string true "Subject slug"
// @Param locale path string true "BCP 47 locale"
// @Param token query string true "Lease token"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /content-cache/{contentType}/{subjectId}/{locale}/lease [delete]
func (h *ContentCacheHandler) ReleaseLease(c *gin.Context) {
	released, err := h.leases.ReleaseLease(c.Request.Context(), keyFromPath(c), c.Query("token"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "", gin.H{"released": released})
}
