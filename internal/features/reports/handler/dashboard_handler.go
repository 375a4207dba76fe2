package handler

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"sales-dashboard/internal/core/logger"
	"sales-dashboard/internal/features/reports/domain"
	"sales-dashboard/internal/features/reports/ports"
	"sales-dashboard/internal/features/reports/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

//go:embed templates/dashboard.html
var templateFS embed.FS

// DashboardHandler handles the admin dashboard page and its data endpoints.
type DashboardHandler struct {
	// service computes the reports.
	service ports.ReportService
	// cache optionally fronts the chart-data endpoint. Nil disables it.
	cache ports.ChartDataCache
	// windowDays is the default trailing window for unbound requests.
	windowDays int
	// tmpl renders the dashboard page.
	tmpl *template.Template
	// now is the time source for default-range binding.
	now func() time.Time
}

// NewDashboardHandler creates a new DashboardHandler. cache may be nil.
func NewDashboardHandler(s ports.ReportService, cache ports.ChartDataCache, windowDays int) (*DashboardHandler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/dashboard.html")
	if err != nil {
		return nil, fmt.Errorf("parse dashboard template: %w", err)
	}
	if windowDays <= 0 {
		windowDays = 30
	}
	return &DashboardHandler{
		service:    s,
		cache:      cache,
		windowDays: windowDays,
		tmpl:       tmpl,
		now:        time.Now,
	}, nil
}

// Register mounts the dashboard routes on the Fiber app.
func (h *DashboardHandler) Register(app *fiber.App) {
	app.Get("/admin/dashboard", h.Dashboard)
	app.Get("/admin/dashboard/data", h.ChartData)
	app.Get("/admin/dashboard/analytics", h.Analytics)
}

// Dashboard renders the sales dashboard page.
// @Summary Sales dashboard page
// @Description Renders the dashboard with summary cards, charts and tables for an optional date range.
// @Produce html
// @Param start_date query string false "Range start (YYYY-MM-DD)"
// @Param end_date query string false "Range end (YYYY-MM-DD)"
// @Success 200 {string} string "rendered page"
// @Failure 503 {string} string "data unavailable"
// @Router /admin/dashboard [get]
func (h *DashboardHandler) Dashboard(c *fiber.Ctx) error {
	r := domain.NewDateRange(c.Query("start_date"), c.Query("end_date"), h.now(), h.windowDays)

	report, err := h.service.Dashboard(c.Context(), r)
	if err != nil {
		logger.Get().Error("Dashboard report failed",
			zap.String("start", r.StartString()),
			zap.String("end", r.EndString()),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return h.renderPage(c, http.StatusServiceUnavailable, unavailableView(r))
	}

	view, err := newDashboardView(report)
	if err != nil {
		return fmt.Errorf("build dashboard view: %w", err)
	}
	return h.renderPage(c, http.StatusOK, view)
}

// ChartData serves the chart refresh payload for a trailing period.
// @Summary Chart data for a trailing period
// @Description Returns parallel label/sales/orders sequences for the requested period.
// @Produce json
// @Param period query int false "Trailing window in days (7, 30 or 90)"
// @Success 200 {object} domain.ChartData
// @Failure 503 {object} ErrorResponse
// @Router /admin/dashboard/data [get]
func (h *DashboardHandler) ChartData(c *fiber.Ctx) error {
	requested, _ := strconv.Atoi(c.Query("period"))
	period := domain.NormalizePeriod(requested, h.windowDays)

	if h.cache != nil {
		if payload, ok := h.cache.Get(c.Context(), period); ok {
			c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
			return c.Send(payload)
		}
	}

	data, err := h.service.ChartData(c.Context(), period)
	if err != nil {
		logger.Get().Error("Chart data failed",
			zap.Int("period_days", period),
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return h.serviceError(c, err)
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode chart data: %w", err)
	}
	if h.cache != nil {
		h.cache.Set(c.Context(), period, payload)
	}

	c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return c.Send(payload)
}

// Analytics serves status breakdowns and month-over-month growth.
// @Summary Sales analytics
// @Description Returns payment/order status breakdowns and the month-over-month growth rate.
// @Produce json
// @Success 200 {object} domain.AnalyticsReport
// @Failure 503 {object} ErrorResponse
// @Router /admin/dashboard/analytics [get]
func (h *DashboardHandler) Analytics(c *fiber.Ctx) error {
	report, err := h.service.Analytics(c.Context())
	if err != nil {
		logger.Get().Error("Analytics report failed",
			zap.String("ray_id", rayID(c)),
			zap.Error(err),
		)
		return h.serviceError(c, err)
	}
	return c.Status(http.StatusOK).JSON(report)
}

func (h *DashboardHandler) serviceError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	msg := "Internal Server Error"
	if errors.Is(err, service.ErrDataUnavailable) {
		status = http.StatusServiceUnavailable
		msg = "Sales data unavailable"
	}
	return c.Status(status).JSON(ErrorResponse{
		Message: msg,
		RayID:   rayID(c),
	})
}

func (h *DashboardHandler) renderPage(c *fiber.Ctx, status int, view *dashboardView) error {
	var buf bytes.Buffer
	if err := h.tmpl.Execute(&buf, view); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}
	c.Set(fiber.HeaderContentType, fiber.MIMETextHTMLCharsetUTF8)
	return c.Status(status).Send(buf.Bytes())
}

func rayID(c *fiber.Ctx) string {
	id, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return id
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}
