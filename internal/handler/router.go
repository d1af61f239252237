package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"dealhub/internal/handler/api"
	"dealhub/internal/handler/middleware"
	"dealhub/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Deals     *api.DealHandler
	Locations *api.LocationHandler
	Uploads   *api.UploadHandler
	Admin     *api.AdminHandler
}

type Middlewares struct {
	Admin       *middleware.AdminAuth
	RateLimiter *middleware.IPRateLimiter
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, cfg, h, mw)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, cfg config.Config, h Handlers, mw Middlewares) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAdmin := mw.Admin.RequireAdmin()
	rateLimited := mw.RateLimiter.RateLimit()
	uploadLimit := bodyLimit(cfg.Storage.MaxBytes)

	apiGroup := engine.Group("/api")
	{
		deals := apiGroup.Group("/deals")
		addRoutes(deals, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Deals.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Deals.Get},
			{Method: http.MethodPost, Path: "/:id/view", Handler: h.Deals.RecordView},
			{Method: http.MethodPost, Path: "/:id/click", Handler: h.Deals.RecordClick},
			{Method: http.MethodPost, Path: "", Handler: h.Deals.Create, Mw: []gin.HandlerFunc{requireAdmin}},
			{Method: http.MethodPost, Path: "/bulk", Handler: h.Deals.BulkCreate, Mw: []gin.HandlerFunc{requireAdmin}},
			{Method: http.MethodPut, Path: "/:id", Handler: h.Deals.Update, Mw: []gin.HandlerFunc{requireAdmin}},
			{Method: http.MethodDelete, Path: "/:id", Handler: h.Deals.Delete, Mw: []gin.HandlerFunc{requireAdmin}},
		})

		locations := apiGroup.Group("/locations")
		locations.Use(requireAdmin, rateLimited)
		{
			addRoutes(locations, []route{
				{Method: http.MethodGet, Path: "/search", Handler: h.Locations.Search},
				{Method: http.MethodGet, Path: "/nationwide", Handler: h.Locations.Nationwide},
				{Method: http.MethodGet, Path: "/reverse", Handler: h.Locations.Reverse},
				{Method: http.MethodGet, Path: "/geocode", Handler: h.Locations.Geocode},
			})
		}

		addRoutes(apiGroup.Group("/admin"), []route{
			{Method: http.MethodPost, Path: "/session", Handler: h.Admin.Login, Mw: []gin.HandlerFunc{rateLimited}},
		})

		addRoutes(apiGroup.Group("/uploads"), []route{
			{Method: http.MethodPost, Path: "/images", Handler: h.Uploads.UploadImage, Mw: []gin.HandlerFunc{requireAdmin, uploadLimit}},
		})
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

// bodyLimit caps the request body; multipart overhead gets a small allowance.
func bodyLimit(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if maxBytes > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes+64<<10)
		}
		c.Next()
	}
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
