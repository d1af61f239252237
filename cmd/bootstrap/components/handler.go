package components

import (
	"dealhub/internal/handler"
	"dealhub/internal/handler/api"
	reqdto "dealhub/internal/handler/dto/request"
	"dealhub/internal/handler/middleware"
	"dealhub/internal/pkg/config"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewDealHandler,
		api.NewLocationHandler,
		api.NewUploadHandler,
		api.NewAdminHandler,
		middleware.NewAdminAuth,
		func(cfg config.Config) *middleware.IPRateLimiter {
			return middleware.NewIPRateLimiter(cfg.RateLimit)
		},
		func(d *api.DealHandler, l *api.LocationHandler, u *api.UploadHandler, a *api.AdminHandler) handler.Handlers {
			return handler.Handlers{Deals: d, Locations: l, Uploads: u, Admin: a}
		},
		func(auth *middleware.AdminAuth, rl *middleware.IPRateLimiter) handler.Middlewares {
			return handler.Middlewares{Admin: auth, RateLimiter: rl}
		},
	),
	fx.Invoke(
		reqdto.RegisterValidators,
		handler.NewRouter,
	),
)
