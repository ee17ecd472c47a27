package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/dhanrush/dhanrush-backend/internal/config"
	"github.com/dhanrush/dhanrush-backend/internal/http/handlers"
	"github.com/dhanrush/dhanrush-backend/internal/http/middleware"
)

// SetupRouter регистрирует HTTP-поверхность: живость, статику веб-приложения
// и колбэк рекламных сетей.
func SetupRouter(
	cfg *config.Config,
	healthHandler *handlers.HealthHandler,
	rewardHandler *handlers.RewardHandler,
) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()

	r.GET("/", healthHandler.Index)
	r.GET("/healthz", healthHandler.Healthz)
	r.StaticFS("/web", http.Dir(cfg.WebDir))

	rewardRateLimit := middleware.RateLimitMiddleware(cfg.RateLimitLimit, cfg.RateLimitPeriod)
	r.GET("/reward", rewardRateLimit, rewardHandler.Reward)

	return r
}
