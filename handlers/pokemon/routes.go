package pokemon

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all routes related to pokemons
// r: the RouterGroup to which the routes are added
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	pokemons := r.Group("/pokemon")
	{
		pokemons.POST("", h.Create)
		pokemons.GET("", h.FindAll)
		pokemons.GET("/:term", h.FindOne)
		pokemons.PATCH("/:term", h.Update)
		pokemons.DELETE("/:id", h.Remove)
	}

	catalog := r.Group("/catalog")
	{
		catalog.GET("/export", h.ExportExcel)
		catalog.POST("/import", h.ImportExcel)
		catalog.GET("/ws", h.CatalogWebSocket)
	}
}
