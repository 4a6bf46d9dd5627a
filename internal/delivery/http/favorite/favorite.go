package http_favorite

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/moviefav/internal/delivery/http/common"
	http_auth_middleware "github.com/humanbelnik/moviefav/internal/delivery/http/middleware/auth"
	"github.com/humanbelnik/moviefav/internal/model"
	usecase_favorite "github.com/humanbelnik/moviefav/internal/usecase/favorite"
)

type Usecase interface {
	List(ctx context.Context, ownerEmail string) ([]model.Favorite, error)
	Add(ctx context.Context, ownerEmail string, d model.FavoriteDraft) (string, error)
	Remove(ctx context.Context, ownerEmail string, ID string) (int64, error)
}

// AddFavoriteRequestDTO uses the catalog's field names so a search result can
// be posted back as is. Any client supplied email is ignored.
type AddFavoriteRequestDTO struct {
	ImdbID   string `json:"imdbID" example:"tt0372784"`
	Title    string `json:"Title" example:"Batman Begins"`
	Poster   string `json:"Poster" example:"https://example.com/poster.jpg"`
	VideoURL string `json:"videoUrl,omitempty" example:"/videos/batman-begins.mp4"`
}

func (r *AddFavoriteRequestDTO) ToDraft() model.FavoriteDraft {
	return model.FavoriteDraft{
		ImdbID:    r.ImdbID,
		Title:     r.Title,
		PosterURL: r.Poster,
		VideoURL:  r.VideoURL,
	}
}

type InsertResultDTO struct {
	Acknowledged bool   `json:"acknowledged"`
	InsertedID   string `json:"insertedId"`
}

type DeleteResultDTO struct {
	Acknowledged bool  `json:"acknowledged"`
	DeletedCount int64 `json:"deletedCount"`
}

type Controller struct {
	uc   Usecase
	auth gin.HandlerFunc

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(uc Usecase,
	authMiddleware *http_auth_middleware.Middleware,
	opts ...ControllerOption) *Controller {
	c := &Controller{
		uc:     uc,
		auth:   authMiddleware.AuthRequired(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/favorites", c.auth, c.listFavorites)
	router.DELETE("/favorites/:id", c.auth, c.deleteFavorite)
	router.POST("/api/favorites", c.auth, c.addFavorite)
}

// @Summary List favorites
// @Description Returns the caller's favorites in insertion order
// @Tags Favorites operations
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Favorite
// @Failure 401 {object} http_common.ErrorResponse "No token provided"
// @Failure 403 {object} http_common.ErrorResponse "Invalid token"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /favorites [get]
func (c *Controller) listFavorites(ctx *gin.Context) {
	email, ok := http_auth_middleware.Email(ctx)
	if !ok {
		c.noIdentity(ctx)
		return
	}

	ff, err := c.uc.List(ctx.Request.Context(), email)
	if err != nil {
		c.logger.Error("failed to list favorites", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error: "Failed to load favorites",
		})
		return
	}

	ctx.JSON(http.StatusOK, ff)
}

// @Summary Add favorite
// @Description Saves a movie to the caller's favorites
// @Tags Favorites operations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddFavoriteRequestDTO true "Movie to save"
// @Success 200 {object} InsertResultDTO
// @Failure 400 {object} http_common.ErrorResponse "Missing required movie data"
// @Failure 401 {object} http_common.ErrorResponse "No token provided"
// @Failure 403 {object} http_common.ErrorResponse "Invalid token"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /api/favorites [post]
func (c *Controller) addFavorite(ctx *gin.Context) {
	email, ok := http_auth_middleware.Email(ctx)
	if !ok {
		c.noIdentity(ctx)
		return
	}

	var req AddFavoriteRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request body", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Invalid request body",
		})
		return
	}

	ID, err := c.uc.Add(ctx.Request.Context(), email, req.ToDraft())
	if err != nil {
		if errors.Is(err, usecase_favorite.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Error: "Missing required movie data",
			})
			return
		}
		c.logger.Error("failed to add favorite",
			slog.String("error", err.Error()),
			slog.String("imdb_id", req.ImdbID),
		)
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error: "Failed to add favorite",
		})
		return
	}

	ctx.JSON(http.StatusOK, InsertResultDTO{Acknowledged: true, InsertedID: ID})
}

// @Summary Delete favorite
// @Description Deletes one of the caller's favorites; deleting a missing or foreign id reports zero
// @Tags Favorites operations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Favorite id"
// @Success 200 {object} DeleteResultDTO
// @Failure 401 {object} http_common.ErrorResponse "No token provided"
// @Failure 403 {object} http_common.ErrorResponse "Invalid token"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /favorites/{id} [delete]
func (c *Controller) deleteFavorite(ctx *gin.Context) {
	email, ok := http_auth_middleware.Email(ctx)
	if !ok {
		c.noIdentity(ctx)
		return
	}

	ID := ctx.Param("id")
	n, err := c.uc.Remove(ctx.Request.Context(), email, ID)
	if err != nil {
		c.logger.Error("failed to delete favorite",
			slog.String("error", err.Error()),
			slog.String("id", ID),
		)
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error: "Failed to delete favorite",
		})
		return
	}

	ctx.JSON(http.StatusOK, DeleteResultDTO{Acknowledged: true, DeletedCount: n})
}

func (c *Controller) noIdentity(ctx *gin.Context) {
	c.logger.Error("route reached without verified identity", slog.String("path", ctx.FullPath()))
	ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{
		Error: "No token provided",
	})
}
