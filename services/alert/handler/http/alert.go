package http

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/safinity/safinity/internal/pkg/models"
	"github.com/safinity/safinity/internal/utils"
	"github.com/safinity/safinity/services/alert"
)

// AlertHandler handles HTTP requests for alert dispatch
type AlertHandler struct {
	alertUC alert.AlertUC
}

// NewAlertHandler creates a new alert handler
func NewAlertHandler(alertUC alert.AlertUC) *AlertHandler {
	return &AlertHandler{alertUC: alertUC}
}

// Dispatch triggers an alert fan-out to the user's emergency contacts. The
// response status reflects the aggregate outcome: all sent, partially sent,
// or none sent.
func (h *AlertHandler) Dispatch(c echo.Context) error {
	var req models.DispatchRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.UserID == "" || req.Kind == "" {
		return utils.BadRequestResponse(c, "User ID and alert kind are required")
	}
	if req.Kind == models.AlertCustom && req.CustomText == "" {
		return utils.BadRequestResponse(c, "Custom alerts require message text")
	}

	result := h.alertUC.Dispatch(c.Request().Context(), &req)

	switch result.Status {
	case models.DispatchSuccess:
		return utils.SuccessResponse(c, http.StatusOK, result.Message, result)
	case models.DispatchPartial:
		return utils.SuccessResponse(c, http.StatusMultiStatus, result.Message, result)
	default:
		return c.JSON(http.StatusBadGateway, utils.Response{
			Success: false,
			Message: result.Message,
			Data:    result,
		})
	}
}
