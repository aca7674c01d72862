// Package analyticshdl - Handler cho các endpoint analytics (read-only).
package analyticshdl

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	analyticsvc "crm_backend/internal/api/analytics/service"
	basehdl "crm_backend/internal/api/base/handler"
)

// AnalyticsHandler phục vụ chỉ số dashboard, phân bố deal theo giai đoạn
// và doanh số theo kỳ.
type AnalyticsHandler struct {
	AnalyticsService *analyticsvc.AnalyticsService
}

// NewAnalyticsHandler tạo AnalyticsHandler mới.
func NewAnalyticsHandler() (*AnalyticsHandler, error) {
	svc, err := analyticsvc.NewAnalyticsService()
	if err != nil {
		return nil, fmt.Errorf("tạo AnalyticsService: %w", err)
	}
	return &AnalyticsHandler{AnalyticsService: svc}, nil
}

// HandleGetDashboardStats xử lý GET /analytics/dashboard-stats.
func (h *AnalyticsHandler) HandleGetDashboardStats(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		stats, err := h.AnalyticsService.GetDashboardStats(c.Context())
		basehdl.Respond(c, stats, err)
		return nil
	})
}

// HandleGetDealsByStage xử lý GET /analytics/deals-by-stage.
func (h *AnalyticsHandler) HandleGetDealsByStage(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		items, err := h.AnalyticsService.GetDealsByStage(c.Context())
		basehdl.Respond(c, items, err)
		return nil
	})
}

// HandleGetSalesByPeriod xử lý GET /analytics/sales-by-period?period=monthly.
// Mặc định monthly khi không truyền period.
func (h *AnalyticsHandler) HandleGetSalesByPeriod(c fiber.Ctx) error {
	return basehdl.SafeHandlerWrapper(c, func() error {
		period := c.Query("period", analyticsvc.PeriodMonthly)
		buckets, err := h.AnalyticsService.GetSalesByPeriod(c.Context(), period)
		basehdl.Respond(c, buckets, err)
		return nil
	})
}
