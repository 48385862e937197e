package http

import (
	"net/http"
	"time"

	"github.com/attendly/attendly-backend/internal/domain/auth"
	"github.com/attendly/attendly-backend/internal/domain/dashboard"
	"github.com/attendly/attendly-backend/internal/handler/http/middleware"
	"github.com/attendly/attendly-backend/internal/handler/http/response"
)

type DashboardHandler interface {
	GetEmployeeDashboard(w http.ResponseWriter, r *http.Request)
	GetManagerDashboard(w http.ResponseWriter, r *http.Request)
}

type dashboardHandlerImpl struct {
	dashboardService dashboard.DashboardService
}

func NewDashboardHandler(dashboardService dashboard.DashboardService) DashboardHandler {
	return &dashboardHandlerImpl{
		dashboardService: dashboardService,
	}
}

// GetEmployeeDashboard implements DashboardHandler.
func (h *dashboardHandlerImpl) GetEmployeeDashboard(w http.ResponseWriter, r *http.Request) {
	employeeID, ok := middleware.UserID(r)
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	result, err := h.dashboardService.GetEmployeeDashboard(r.Context(), employeeID, time.Now().UTC())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetManagerDashboard implements DashboardHandler.
func (h *dashboardHandlerImpl) GetManagerDashboard(w http.ResponseWriter, r *http.Request) {
	result, err := h.dashboardService.GetManagerDashboard(r.Context(), time.Now().UTC())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
