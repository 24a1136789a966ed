package v2

import (
	"pokedex/docs"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterSwaggerRoutes serves the generated API documentation under /swagger
func RegisterSwaggerRoutes(r *gin.Engine) {
	docs.SwaggerInfo.BasePath = Prefix
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
