package middleware

import (
	"log/slog"
	"slices"

	"guest-conversion/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware always exposes X-Request-ID so the dashboard can quote it
// in support requests. Without configured origins cross-origin calls are not
// answered with CORS headers at all.
func NewCORSMiddleware(cfg config.CORSConfig, logger *slog.Logger) gin.HandlerFunc {
	if len(cfg.AllowOrigins) == 0 {
		logger.Warn("CORS の許可オリジンが未設定です。クロスオリジン要求は許可されません")
		return func(c *gin.Context) { c.Next() }
	}

	expose := slices.Clone(cfg.ExposeHeaders)
	if !slices.Contains(expose, requestIDHeader) {
		expose = append(expose, requestIDHeader)
	}

	logger.Info("CORS ミドルウェアを初期化しました", "allow_origins", cfg.AllowOrigins, "expose_headers", expose)
	return cors.New(cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    expose,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
}
