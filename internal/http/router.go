package api

import (
	intconfig "cucisepatu/internal/config"
	h "cucisepatu/internal/http/handlers"
	"cucisepatu/internal/http/middleware"
	"cucisepatu/internal/repositories"
	"cucisepatu/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func NewRouter(env intconfig.Env, store repositories.OrderStore, logger zerolog.Logger) *gin.Engine {
	r := gin.New()
	// trailing-slash variants fall through to NoRoute instead of a redirect
	r.RedirectTrailingSlash = false
	r.Use(
		middleware.RequestID(),
		middleware.Logger(logger),
		gin.CustomRecovery(h.Recovery),
		middleware.CORS(utils.SplitList(env.CORSAllowedOrigins)),
	)

	if err := r.SetTrustedProxies(nil); err != nil {
		logger.Warn().Err(err).Msg("failed to set trusted proxies")
	}

	r.NoRoute(h.NotFound)

	r.GET("/", h.Index)
	r.GET("/health", h.Health)
	r.GET("/health/db", h.DBCheck(store))

	orders := h.OrderHandler{Store: store, Logger: logger}
	items := r.Group("/items")
	{
		items.GET("", orders.List)
		items.GET("/:id", orders.Get)
		items.GET("/:id/receipt", orders.Receipt)
		items.POST("", orders.Create)
		items.PUT("/:id", orders.Update)
		items.DELETE("/:id", orders.Delete)
	}

	return r
}
