package http

import (
	"net/http"

	"github.com/staffhub/staffhub-backend-go/internal/handler/http/response"
	dashboardService "github.com/staffhub/staffhub-backend-go/internal/service/dashboard"
)

type DashboardHandler interface {
	Stats(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboardService.DashboardService
}

func NewDashboardHandler(service dashboardService.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{dashboardService: service}
}

// Stats implements DashboardHandler.
func (h *dashboardHandlerImpl) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.Stats(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, stats)
}
