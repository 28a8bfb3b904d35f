package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/apierror"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/model"
	"github.com/cyberghostzuhair/Bytewavesystems-pos/internal/repository"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const (
	ClaimsKey = "claims"
)

// JWTClaims are the custom claims embedded in every access token.
type JWTClaims struct {
	UserID    string `json:"user_id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	TenantID  string `json:"tenant_id"`
	StaffName string `json:"staff_name"`
	jwt.RegisteredClaims
}

// JWTAuth validates the Bearer token on every protected route and, for
// tenant-bound sessions, re-resolves the tenant against the registry. A
// deleted, suspended or newly-expired node therefore terminates its live
// sessions on their next request — registry mutations never leave a stale
// session usable.
func JWTAuth(secret string, tenants repository.TenantRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Authentication required"))
			return
		}

		tokenStr := strings.TrimPrefix(header, "Bearer ")
		claims := &JWTClaims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrSignatureInvalid
			}
			return []byte(secret), nil
		})

		if err != nil || !token.Valid {
			c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Token invalid or expired"))
			return
		}

		if claims.Role != model.RolePlatformAdmin {
			tenant, terr := tenants.FindByID(c.Request.Context(), claims.TenantID)
			if terr != nil {
				c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Session terminated: business node no longer exists"))
				return
			}
			if tenant.Status == model.StatusSuspended {
				c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Session terminated: subscription suspended"))
				return
			}
			if tenant.Expired(time.Now()) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, apierror.New("Session terminated: subscription expired"))
				return
			}
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// RequireRole rejects requests whose session role is not in the allowed list.
func RequireRole(roles ...string) gin.HandlerFunc {
	allowed := make(map[string]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(c *gin.Context) {
		claims, ok := c.MustGet(ClaimsKey).(*JWTClaims)
		if !ok || !allowed[claims.Role] {
			c.AbortWithStatusJSON(http.StatusForbidden, apierror.New("Insufficient permissions"))
			return
		}
		c.Next()
	}
}

// GetClaims is a helper to retrieve typed claims from the Gin context.
func GetClaims(c *gin.Context) *JWTClaims {
	claims, _ := c.MustGet(ClaimsKey).(*JWTClaims)
	return claims
}
