// Package router đăng ký các route thuộc domain analytics.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	analyticshdl "crm_backend/internal/api/analytics/handler"
	"crm_backend/internal/api/middleware"
	apirouter "crm_backend/internal/api/router"
)

// Register đăng ký các route analytics lên v1 (read-only, cần đăng nhập).
func Register(v1 fiber.Router, _ *apirouter.Router) error {
	h, err := analyticshdl.NewAnalyticsHandler()
	if err != nil {
		return fmt.Errorf("tạo AnalyticsHandler: %w", err)
	}

	authReadMiddleware := middleware.AuthMiddleware("Analytics.Read")

	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "GET", "/dashboard-stats", []fiber.Handler{authReadMiddleware}, h.HandleGetDashboardStats)
	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "GET", "/deals-by-stage", []fiber.Handler{authReadMiddleware}, h.HandleGetDealsByStage)
	apirouter.RegisterRouteWithMiddleware(v1, "/analytics", "GET", "/sales-by-period", []fiber.Handler{authReadMiddleware}, h.HandleGetSalesByPeriod)

	return nil
}
