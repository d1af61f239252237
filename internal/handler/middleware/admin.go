package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"dealhub/internal/handler/httperr"
	"dealhub/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

const ctxAdminKey = "admin"

type AdminAuth struct {
	admin commands.AdminCommands
}

func NewAdminAuth(admin commands.AdminCommands) *AdminAuth {
	return &AdminAuth{admin: admin}
}

// RequireAdmin accepts "Authorization: Bearer <secret|session token>".
// Routes stay open while no admin credential is configured.
func (m *AdminAuth) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !m.admin.Enabled() {
			c.Next()
			return
		}

		credential := bearerToken(c.GetHeader("Authorization"))
		if err := m.admin.Authorize(c.Request.Context(), credential); err != nil {
			slog.Warn("admin authorization failed", "path", c.Request.URL.Path, "client_ip", c.ClientIP())
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Unauthorized", nil)
			return
		}

		c.Set(ctxAdminKey, true)
		c.Next()
	}
}

func IsAdmin(c *gin.Context) bool {
	return c.GetBool(ctxAdminKey)
}

func bearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}
