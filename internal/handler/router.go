package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"guest-conversion/internal/domain/user"
	"guest-conversion/internal/handler/api"
	"guest-conversion/internal/handler/middleware"
	"guest-conversion/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Unlocks     *api.UnlockHandler
	DealCodes   *api.DealCodeHandler
	CheckIn     *api.CheckInHandler
	PaymentGate *api.PaymentGateHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger) {
	engine.Use(logger.Recovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS, logger.GetSlogLogger()))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(logger.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	apiGroup.Use(authMiddleware.RequireAuth())
	{
		guest := apiGroup.Group("")
		guest.Use(authMiddleware.RequireRole(user.RoleGuest))
		addRoutes(guest, []route{
			{Method: http.MethodGet, Path: "/unlocks", Handler: h.Unlocks.List},
			{Method: http.MethodPost, Path: "/unlocks/:id/cancel", Handler: h.Unlocks.Cancel},
			{Method: http.MethodPost, Path: "/unlocks/:id/appreciation", Handler: h.Unlocks.Appreciate},
			{Method: http.MethodPost, Path: "/unlocks/:id/booking", Handler: h.Unlocks.Book},
			{Method: http.MethodGet, Path: "/deal-codes", Handler: h.DealCodes.List},
		})

		staff := apiGroup.Group("")
		staff.Use(authMiddleware.RequireRole(user.RoleHost, user.RoleTourGuide))
		addRoutes(staff, []route{
			{Method: http.MethodPost, Path: "/check-in/lookup", Handler: h.CheckIn.Lookup},
			{Method: http.MethodGet, Path: "/check-in/session", Handler: h.CheckIn.Session},
			{Method: http.MethodDelete, Path: "/check-in/session", Handler: h.CheckIn.Reset},
			{Method: http.MethodPost, Path: "/check-in/confirm", Handler: h.CheckIn.Confirm},
			{Method: http.MethodPost, Path: "/check-in/resend", Handler: h.CheckIn.Resend},
			{Method: http.MethodPost, Path: "/check-out", Handler: h.CheckIn.CheckOut},
		})

		gate := apiGroup.Group("/payment-gate")
		addRoutes(gate, []route{
			{Method: http.MethodGet, Path: "", Handler: h.PaymentGate.Status},
			{Method: http.MethodPost, Path: "/verify", Handler: h.PaymentGate.Verify},
			{Method: http.MethodDelete, Path: "", Handler: h.PaymentGate.Dismiss},
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
