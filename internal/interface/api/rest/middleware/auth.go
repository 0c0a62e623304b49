package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/thiagohrcosta/FastFeet-API/internal/domain/account"
	"github.com/thiagohrcosta/FastFeet-API/internal/infrastructure/jwt"
	"github.com/thiagohrcosta/FastFeet-API/internal/policy"
)

const CtxCaller = "caller"

func AuthMiddleware(jwtService *jwt.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "missing Authorization header"},
			)
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token format"},
			)
			return
		}

		claims, err := jwtService.ValidateToken(tokenStr)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token"},
			)
			return
		}

		accountID, err := uuid.Parse(claims.AccountID)
		if err != nil {
			c.AbortWithStatusJSON(
				http.StatusUnauthorized,
				gin.H{"error": "invalid token"},
			)
			return
		}

		c.Set(CtxCaller, policy.Caller{
			AccountID: accountID,
			Role:      account.Role(claims.Role),
		})

		c.Next()
	}
}

func CallerFromContext(c *gin.Context) (policy.Caller, bool) {
	v, ok := c.Get(CtxCaller)
	if !ok {
		return policy.Caller{}, false
	}
	caller, ok := v.(policy.Caller)
	return caller, ok
}
