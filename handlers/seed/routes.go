package seed

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers the seed route
// r: the RouterGroup to which the routes are added
func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.GET("/seed", h.ExecuteSeed)
}
