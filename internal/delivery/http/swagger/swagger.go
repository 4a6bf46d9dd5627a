package http_swagger

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Controller serves the API docs UI under /swagger.
type Controller struct {
	handler gin.HandlerFunc
}

// New serves docs for host; an empty host makes the UI use the page origin.
func New(host string) *Controller {
	SwaggerInfo.Host = host
	return &Controller{
		handler: ginSwagger.WrapHandler(swaggerFiles.Handler,
			ginSwagger.URL("/swagger/doc.json"),
			ginSwagger.DefaultModelsExpandDepth(-1),
		),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/swagger/*any", c.handler)
}
