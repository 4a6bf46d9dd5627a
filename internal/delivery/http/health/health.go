package http_health

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
)

type Controller struct {
	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(opts ...ControllerOption) *Controller {
	c := &Controller{
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/", c.alive)
}

// @Summary Liveness
// @Tags Health
// @Produce plain
// @Success 200 {string} string "Server is running"
// @Router / [get]
func (c *Controller) alive(ctx *gin.Context) {
	c.logger.Debug("liveness check", slog.String("remote", ctx.ClientIP()))
	ctx.String(http.StatusOK, "Server is running")
}
