package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	jwtsvc "foodgram/internal/pkg/jwt"
)

// OptionalJWT кладёт user_id в контекст, если передан валидный токен,
// но не отклоняет анонимные запросы. Используется на публичных
// маршрутах чтения, где для авторизованных заполняются флаги
// is_subscribed / is_favorited / is_in_shopping_cart.
func OptionalJWT(jwt *jwtsvc.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if strings.HasPrefix(h, "Bearer ") {
			tokenStr := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
			if claims, err := jwt.ValidateToken(tokenStr); err == nil {
				c.Set("user_id", claims.UserID)
			}
		}

		c.Next()
	}
}
