package http_auth

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/moviefav/internal/delivery/http/common"
	"github.com/humanbelnik/moviefav/internal/model"
	service_jwt_auth "github.com/humanbelnik/moviefav/internal/service/auth/jwt"
)

type TokenIssuer interface {
	Issue(email model.Email) (model.Token, error)
}

type Controller struct {
	issuer TokenIssuer
	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(
	issuer TokenIssuer,
	opts ...ControllerOption,
) *Controller {
	c := &Controller{
		issuer: issuer,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.POST("/jwt", c.issueToken)
}

// TokenRequestDTO DTO for session token request
type TokenRequestDTO struct {
	Email string `json:"email" example:"a@b.com"`
}

// TokenResponseDTO DTO for session token response
type TokenResponseDTO struct {
	Token string `json:"token"`
}

// issueToken issues a session token
// @Summary Issue session token
// @Description Returns a bearer token valid for 24 hours for the given email
// @Tags Auth operations
// @Accept json
// @Produce json
// @Param request body TokenRequestDTO true "Email to bind to the session"
// @Success 200 {object} TokenResponseDTO
// @Failure 400 {object} http_common.ErrorResponse "Email is required"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /jwt [post]
func (c *Controller) issueToken(ctx *gin.Context) {
	var req TokenRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		c.logger.Warn("invalid request format", slog.String("error", err.Error()))
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Error: "Email is required",
		})
		return
	}

	token, err := c.issuer.Issue(req.Email)
	if err != nil {
		if errors.Is(err, service_jwt_auth.ErrInvalidInput) {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Error: "Email is required",
			})
			return
		}
		c.logger.Error("failed to issue token", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{
			Error: "internal error",
		})
		return
	}

	ctx.JSON(http.StatusOK, TokenResponseDTO{Token: token})
}
