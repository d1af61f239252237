package bootstrap

import (
	"crypto/rand"
	"encoding/hex"
	"log/slog"
	"time"

	"dealhub/internal/pkg/clock"
	"dealhub/internal/pkg/config"
	"dealhub/internal/pkg/jwt"
	"dealhub/internal/pkg/password"

	"go.uber.org/fx"
)

var SessionModule = fx.Module("session",
	fx.Provide(
		NewSessionService,
		NewPasswordVerifier,
	),
)

func NewSessionService(cfg config.Config, clk clock.Clock, logger *slog.Logger) *jwt.Service {
	duration, err := time.ParseDuration(cfg.Admin.SessionDuration)
	if err != nil {
		panic("invalid ADMIN_SESSION_DURATION: " + err.Error())
	}

	secret := cfg.Admin.SessionSecret
	if secret == "" {
		// sessions then end with the process
		buf := make([]byte, 32)
		if _, err := rand.Read(buf); err != nil {
			panic("failed to generate session secret: " + err.Error())
		}
		secret = hex.EncodeToString(buf)
		if cfg.Admin.Enabled() {
			logger.Warn("ADMIN_SESSION_SECRET is not set; using a per-process secret")
		}
	}

	return jwt.NewService(secret, duration, clk)
}

func NewPasswordVerifier(cfg config.Config) *password.Verifier {
	return password.NewVerifier(cfg.Admin.Password, cfg.Admin.PasswordHash)
}
