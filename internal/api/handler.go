package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/herdpulse/internal/domain/dto"
	"github.com/guttosm/herdpulse/internal/service"
)

// Handler provides HTTP handlers for the farmer dashboard.
//
// Responsibilities:
//   - Extract the farmer id from the path (or the farmer_id query parameter)
//   - Delegate aggregation to the DashboardService
//   - Translate results into response DTOs and errors into status codes
type Handler struct {
	svc service.DashboardService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.DashboardService) *Handler {
	return &Handler{svc: svc}
}

// GetDashboard handles the farmer dashboard requests.
//
// Responses:
//   - 200 OK: DashboardResponse with herd and sales metrics (empty data is not an error).
//   - 400 Bad Request: missing or malformed farmer id (kind InvalidArgument).
//   - 503 Service Unavailable: a repository read failed or timed out (kind RepositoryUnavailable).
//   - 500 Internal Server Error: anything else.
//
// GetDashboard godoc
// @Summary      Get farmer dashboard
// @Description  Aggregates the farmer's livestock and sales into herd health, vaccination and revenue metrics
// @Tags         dashboard
// @Produce      json
// @Param        farmerId  path      string  true  "Farmer id" example(farmer-42)
// @Success      200       {object}  dto.DashboardResponse  "Success"
// @Failure      400       {object}  dto.ErrorResponse      "Invalid farmer id"
// @Failure      503       {object}  dto.ErrorResponse      "Repository unavailable"
// @Failure      500       {object}  dto.ErrorResponse      "Internal Error"
// @Router       /api/v1/farmers/{farmerId}/dashboard [get]
func (h *Handler) GetDashboard(c *gin.Context) {
	farmerID := c.Param("farmerId")
	if farmerID == "" {
		farmerID = c.Query("farmer_id")
	}

	d, err := h.svc.GetDashboard(c.Request.Context(), farmerID)
	if err != nil {
		status, message := errorStatus(err)
		resp := dto.NewErrorResponse(message, err)
		if kind, ok := service.KindOf(err); ok {
			resp = resp.WithKind(string(kind))
		}
		c.JSON(status, resp)
		return
	}

	c.JSON(http.StatusOK, dto.NewDashboardResponse(d))
}

// errorStatus maps service error kinds to HTTP statuses.
func errorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, service.ErrInvalidArgument):
		return http.StatusBadRequest, "invalid farmer id"
	case errors.Is(err, service.ErrRepositoryUnavailable):
		return http.StatusServiceUnavailable, "dashboard data is temporarily unavailable"
	default:
		return http.StatusInternalServerError, "failed to build dashboard"
	}
}
