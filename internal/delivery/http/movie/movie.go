package http_movie

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/moviefav/internal/delivery/http/common"
	"github.com/humanbelnik/moviefav/internal/model"
	usecase_catalog "github.com/humanbelnik/moviefav/internal/usecase/catalog"
)

type Usecase interface {
	Search(ctx context.Context, query string) ([]model.SearchItem, error)
	DefaultMovies(ctx context.Context) ([]model.Movie, error)
}

type Controller struct {
	uc Usecase

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc Usecase, opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	api := router.Group("/api")
	api.GET("/search", c.search)
	api.GET("/default-movies", c.defaultMovies)
}

// @Summary Search catalog
// @Description Free-text search against the movie catalog
// @Tags Movies operations
// @Produce json
// @Param query query string true "Search text" example("batman")
// @Success 200 {array} model.SearchItem
// @Failure 400 {object} http_common.ErrorResponse "Query parameter is required"
// @Failure 404 {object} http_common.ErrorResponse "Catalog reported no match"
// @Failure 500 {object} http_common.ErrorResponse "Catalog unavailable"
// @Router /api/search [get]
func (c *Controller) search(ctx *gin.Context) {
	query := ctx.Query("query")

	items, err := c.uc.Search(ctx.Request.Context(), query)
	if err != nil {
		var nf *usecase_catalog.NotFoundError
		switch {
		case errors.Is(err, usecase_catalog.ErrInvalidInput):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Error: "Query parameter is required",
			})
		case errors.As(err, &nf):
			ctx.JSON(http.StatusNotFound, http_common.ErrorResponse{
				Error: nf.Message,
			})
		default:
			c.logger.Error("catalog search failed",
				slog.String("error", err.Error()),
				slog.String("query", query),
			)
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
				Error: "Failed to fetch movies from OMDb",
			})
		}
		return
	}

	ctx.JSON(http.StatusOK, items)
}

// @Summary Default movies
// @Description Full catalog records for the built-in home page list
// @Tags Movies operations
// @Produce json
// @Success 200 {array} model.Movie
// @Failure 500 {object} http_common.ErrorResponse "Catalog unavailable"
// @Router /api/default-movies [get]
func (c *Controller) defaultMovies(ctx *gin.Context) {
	movies, err := c.uc.DefaultMovies(ctx.Request.Context())
	if err != nil {
		c.logger.Error("default movies lookup failed", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error: "Failed to fetch default movies",
		})
		return
	}

	ctx.JSON(http.StatusOK, movies)
}
