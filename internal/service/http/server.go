package http

import (
	"github.com/gin-gonic/gin"
	"github.com/reusedev/ghibli-detox/internal/consts"
	"github.com/reusedev/ghibli-detox/internal/modules/ratelimit"
	"github.com/reusedev/ghibli-detox/internal/service/http/handler"
	"github.com/reusedev/ghibli-detox/internal/service/http/middleware"
)

func Serve(port string, limiter ratelimit.Limiter) {
	e := gin.New()
	initRouter(e, limiter)
	if err := e.Run(port); err != nil {
		panic(err)
	}
}

func initRouter(e *gin.Engine, limiter ratelimit.Limiter) {
	e.Use(gin.Recovery())
	e.Use(middleware.RequestLogger())
	api := e.Group("/api")
	{
		api.POST("/analyze", middleware.RateLimit(limiter, consts.ActionAnalyze), handler.Analyze)
		api.POST("/generate", middleware.RateLimit(limiter, consts.ActionGenerate), handler.Generate)
		api.GET("/images", handler.ListImages)
		api.GET("/images/:id", handler.GetImage)
		api.DELETE("/images/:id", handler.DeleteImage)
		api.GET("/stats/count", handler.CountImages)
	}
}
