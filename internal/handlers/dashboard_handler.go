package handlers

import (
	"net/http"
	"time"

	"budget-coach/internal/errors"
	"budget-coach/internal/services"

	"github.com/labstack/echo/v4"
)

// DashboardHandler serves the read-only analysis endpoints.
type DashboardHandler struct {
	dashboardService services.DashboardServiceInterface
	defaultHorizon   int
	now              func() time.Time
}

func NewDashboardHandler(dashboardService services.DashboardServiceInterface, defaultHorizon int) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		defaultHorizon:   defaultHorizon,
		now:              time.Now,
	}
}

// GetDashboard returns the full dashboard snapshot
// @Summary Get dashboard
// @Description Categorize recent transactions, estimate income, detect recurring bills, forecast and generate insights as of a date
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Param asOf query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Success 200 {object} models.DashboardSnapshot "Dashboard snapshot"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid asOf date"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /dashboard [get]
func (h *DashboardHandler) GetDashboard(c echo.Context) error {
	asOf, err := parseAsOf(c, h.now)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("asOf must be YYYY-MM-DD"))
	}

	snapshot, err := h.dashboardService.ComputeDashboard(c.Request().Context(), asOf)
	if err != nil {
		return SendServiceError(c, err)
	}

	c.Response().Header().Set("Cache-Control", "no-store")
	return c.JSON(http.StatusOK, snapshot)
}

// GetAnalysis returns spending, income, recurring bills and a forecast
// @Summary Get spending analysis
// @Description Spending analysis and bill forecast without stats or coaching insights
// @Tags Dashboard
// @Security BearerAuth
// @Produce json
// @Param asOf query string false "Reference date (YYYY-MM-DD), defaults to today"
// @Param horizon query int false "Forecast horizon in days (1-365)" default(30)
// @Success 200 {object} dto.AnalysisResponse "Spending analysis"
// @Failure 400 {object} errors.ErrorResponse "VALIDATION_005 - Invalid asOf date or ANALYSIS_001 - Horizon out of range"
// @Failure 401 {object} errors.ErrorResponse "AUTH_002 - Missing or invalid authentication"
// @Failure 500 {object} errors.ErrorResponse "SYSTEM_001 - Internal server error"
// @Router /analysis [get]
func (h *DashboardHandler) GetAnalysis(c echo.Context) error {
	asOf, err := parseAsOf(c, h.now)
	if err != nil {
		return SendError(c, errors.ValidationInvalidDate, errors.WithDetails("asOf must be YYYY-MM-DD"))
	}

	horizon := getIntParam(c, "horizon", h.defaultHorizon)
	analysis, err := h.dashboardService.Analyze(c.Request().Context(), asOf, horizon)
	if err != nil {
		return SendServiceError(c, err)
	}

	return c.JSON(http.StatusOK, analysis)
}
