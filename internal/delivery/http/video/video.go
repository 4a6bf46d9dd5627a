package http_video

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/moviefav/internal/delivery/http/common"
)

type URLSigner interface {
	PresignedURL(ctx context.Context, name string) (string, error)
}

// Controller serves /videos/* either straight from a local directory or,
// when a signer is configured, by redirecting to object storage.
type Controller struct {
	dir    string
	signer URLSigner
	logger *slog.Logger
}

func NewLocal(dir string) *Controller {
	return &Controller{
		dir:    dir,
		logger: slog.Default(),
	}
}

func NewRemote(signer URLSigner) *Controller {
	return &Controller{
		signer: signer,
		logger: slog.Default(),
	}
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	if c.signer == nil {
		router.Static("/videos", c.dir)
		return
	}
	router.GET("/videos/*name", c.redirect)
	router.HEAD("/videos/*name", c.redirect)
}

func (c *Controller) redirect(ctx *gin.Context) {
	name := strings.TrimPrefix(ctx.Param("name"), "/")
	if name == "" {
		ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
			Error: "video not found",
		})
		return
	}

	u, err := c.signer.PresignedURL(ctx.Request.Context(), name)
	if err != nil {
		c.logger.Error("failed to sign video url", slog.String("name", name), slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error: "internal error",
		})
		return
	}

	ctx.Redirect(http.StatusTemporaryRedirect, u)
}
