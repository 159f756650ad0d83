package middlewares

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/BtJ-gogo/meta-back-end-developer/entity"
	"github.com/BtJ-gogo/meta-back-end-developer/utils"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"gorm.io/gorm"
)

// Authenticate verifies the bearer token and loads the caller together
// with group memberships onto the request context. Roles are read from
// the DB on every request so roster changes apply immediately.
func Authenticate(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.GetHeader("Authorization")
		if h == "" || !strings.HasPrefix(h, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "missing or invalid token"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(h, "Bearer ")

		claims := &utils.Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method")
			}
			return []byte(secret), nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "invalid token"})
			c.Abort()
			return
		}

		var user entity.User
		if err := db.Preload("Groups").First(&user, claims.UserID).Error; err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unknown user"})
			c.Abort()
			return
		}

		c.Set(utils.PrincipalKey, &user)
		c.Next()
	}
}

// RequireAny is the per-verb allow-list: the caller must satisfy at
// least one of the listed roles. Rejection carries no detail about which
// predicate failed.
func RequireAny(roles ...entity.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		u := utils.Principal(c)
		if u == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"ok": false, "error": "unauthorized"})
			c.Abort()
			return
		}
		for _, r := range roles {
			if u.Satisfies(r) {
				c.Next()
				return
			}
		}
		c.JSON(http.StatusForbidden, gin.H{"ok": false, "error": "forbidden"})
		c.Abort()
	}
}
