// Package middleware chứa các middleware dùng chung cho Fiber app.
package middleware

import (
	"fmt"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v3"

	"crm_backend/internal/common"
	"crm_backend/internal/global"
	"crm_backend/internal/logger"
)

// extractBearerToken lấy JWT token từ header Authorization (format: "Bearer <token>")
func extractBearerToken(c fiber.Ctx) string {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}

// respondUnauthorized trả về lỗi 401 theo format response chuẩn của ứng dụng
func respondUnauthorized(c fiber.Ctx, message string) error {
	c.Set("Content-Type", "application/json; charset=utf-8")
	return c.Status(common.StatusUnauthorized).JSON(fiber.Map{
		"code":    common.ErrCodeAuthToken.Code,
		"message": message,
		"status":  "error",
	})
}

// AuthMiddleware xác thực JWT token từ header Authorization.
// Token hợp lệ: user_id trong claims được lưu vào Locals cho các handler phía sau.
// Tham số permission được giữ để các domain router khai báo quyền theo route,
// việc kiểm tra phân quyền chi tiết nằm ngoài phạm vi hiện tại.
func AuthMiddleware(permission string) fiber.Handler {
	return func(c fiber.Ctx) error {
		tokenString := extractBearerToken(c)
		if tokenString == "" {
			return respondUnauthorized(c, common.MsgTokenMissing)
		}

		token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("phương thức ký không được hỗ trợ: %v", t.Header["alg"])
			}
			return []byte(global.MongoDB_ServerConfig.JwtSecret), nil
		})
		if err != nil {
			// Phân biệt token hết hạn với token sai định dạng/chữ ký
			if ve, ok := err.(*jwt.ValidationError); ok && ve.Errors&jwt.ValidationErrorExpired != 0 {
				return respondUnauthorized(c, common.MsgTokenExpired)
			}
			logger.WithRequest(c).WithError(err).Debug("JWT không hợp lệ")
			return respondUnauthorized(c, common.MsgTokenInvalid)
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok || !token.Valid {
			return respondUnauthorized(c, common.MsgTokenInvalid)
		}

		if userID, ok := claims["user_id"].(string); ok && userID != "" {
			c.Locals("user_id", userID)
		}
		if permission != "" {
			c.Locals("permission_name", permission)
		}

		return c.Next()
	}
}
