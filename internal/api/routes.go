package api

import (
	"github.com/gin-gonic/gin"

	"github.com/youruser/bingoapp/internal/generator"
)

func RegisterRoutes(r *gin.Engine, g *generator.Generator) {
	h := &handlers{gen: g}
	api := r.Group("/api")
	{
		api.GET("/health", health)
		api.GET("/phrases", h.phrases)
		api.POST("/sample", h.sample)
		api.POST("/sheet/image", h.sheetImage)
	}
}
