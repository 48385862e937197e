package dashboard

import (
	"context"
	"time"
)

// DashboardService defines the interface for dashboard operations.
// The current time is passed in so "today", the running month, and the
// seven-day window are deterministic under test.
type DashboardService interface {
	// GetEmployeeDashboard returns the personal dashboard for one employee.
	GetEmployeeDashboard(ctx context.Context, employeeID string, now time.Time) (*EmployeeDashboardResponse, error)

	// GetManagerDashboard returns the team-wide dashboard (manager only).
	GetManagerDashboard(ctx context.Context, now time.Time) (*ManagerDashboardResponse, error)
}
