package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pawpath/pawpath/internal/application/business/dto"
	"github.com/pawpath/pawpath/internal/shared/errors"
	"github.com/pawpath/pawpath/internal/shared/logger"
	"github.com/pawpath/pawpath/internal/shared/utils"
)

// ActionUpdateStatus is the only mutation the admin table issues.
const ActionUpdateStatus = "updateStatus"

type BusinessHandler struct {
	service businessService
	logger  logger.Interface
}

func NewBusinessHandler(service businessService, logger logger.Interface) *BusinessHandler {
	return &BusinessHandler{
		service: service,
		logger:  logger,
	}
}

type BusinessActionRequest struct {
	Action string `json:"action" binding:"required"`
	Status string `json:"status"`
}

// ListBusinesses handles GET /admin/businesses
// @Summary List businesses
// @Description Filtered, paginated business directory ordered by id
// @Tags admin-businesses
// @Produce json
// @Param status query string false "Status filter" Enums(active, pending, suspended)
// @Param plan query string false "Plan filter" Enums(FREE, STARTER, PRO, ENTERPRISE)
// @Param billingStatus query string false "Billing status filter" Enums(TRIAL, ACTIVE, EXPIRED, CANCELLED)
// @Param search query string false "Case-insensitive match on name or contact email"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Rows to skip" default(0)
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 503 {object} utils.APIResponse
// @Router /admin/businesses [get]
func (h *BusinessHandler) ListBusinesses(c *gin.Context) {
	window, err := utils.ParseWindow(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	req := dto.ListBusinessesRequest{
		Status:        utils.OptionalQuery(c, "status"),
		Plan:          utils.OptionalQuery(c, "plan"),
		BillingStatus: utils.OptionalQuery(c, "billingStatus"),
		Search:        utils.OptionalQuery(c, "search"),
		Limit:         window.Limit,
		Offset:        window.Offset,
	}

	result, err := h.service.ListBusinesses(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// GetBusiness handles GET /admin/businesses/:id
// @Summary Get business by ID
// @Tags admin-businesses
// @Produce json
// @Param id path int true "Business ID"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/businesses/{id} [get]
func (h *BusinessHandler) GetBusiness(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "business")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.service.GetBusiness(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ApplyAction handles PATCH /admin/businesses/:id
// @Summary Apply an admin action to a business
// @Description The only supported action is updateStatus
// @Tags admin-businesses
// @Accept json
// @Produce json
// @Param id path int true "Business ID"
// @Param action body BusinessActionRequest true "Action and target status"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Failure 404 {object} utils.APIResponse
// @Router /admin/businesses/{id} [patch]
func (h *BusinessHandler) ApplyAction(c *gin.Context) {
	id, err := utils.ParseUintParam(c, "id", "business")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req BusinessActionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for business action", "business_id", id, "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request body", err.Error()))
		return
	}

	switch req.Action {
	case ActionUpdateStatus:
		result, err := h.service.UpdateBusinessStatus(c.Request.Context(), id, req.Status)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		utils.SuccessResponse(c, http.StatusOK, "Business status updated", result)
	default:
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("unknown action", fmt.Sprintf("action %q is not supported", req.Action)))
	}
}
