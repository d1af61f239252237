//go:build unit || e2e

package authtest

import (
	"net/http"
	"testing"
	"time"

	"dealhub/internal/handler/dto/request"
	"dealhub/internal/pkg/clock"
	"dealhub/internal/pkg/config"
	"dealhub/internal/pkg/jwt"
	"dealhub/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// AdminToken signs a session token the way /api/admin/session does.
func AdminToken(t *testing.T, cfg config.AdminConfig) string {
	t.Helper()
	duration, err := time.ParseDuration(cfg.SessionDuration)
	require.NoError(t, err)
	token, _, err := jwt.NewService(cfg.SessionSecret, duration, clock.NewRealClock()).IssueAdminSession()
	require.NoError(t, err)
	return token
}

// ExpiredAdminToken is signed with the right secret but already expired.
func ExpiredAdminToken(t *testing.T, cfg config.AdminConfig) string {
	t.Helper()
	past := clock.NewMockClock(time.Now().Add(-48 * time.Hour))
	token, _, err := jwt.NewService(cfg.SessionSecret, time.Hour, past).IssueAdminSession()
	require.NoError(t, err)
	return token
}

func LoginAdmin(t *testing.T, router *gin.Engine, password string) string {
	t.Helper()

	w := httptest.PerformRequest(t, router, http.MethodPost, "/api/admin/session",
		request.AdminLoginRequest{Password: password}, "")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Data struct {
			Token string `json:"token"`
		} `json:"data"`
	}
	require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &body))
	require.NotEmpty(t, body.Data.Token)
	return body.Data.Token
}
