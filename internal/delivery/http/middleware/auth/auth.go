package http_auth_middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/moviefav/internal/delivery/http/common"
	"github.com/humanbelnik/moviefav/internal/model"
	service_jwt_auth "github.com/humanbelnik/moviefav/internal/service/auth/jwt"
)

const emailKey = "auth.email"

type TokenVerifier interface {
	Verify(t model.Token) (model.Email, error)
}

type Middleware struct {
	verifier TokenVerifier
	logger   *slog.Logger
}

func New(
	verifier TokenVerifier,
) *Middleware {
	return &Middleware{
		verifier: verifier,
		logger:   slog.Default(),
	}
}

// AuthRequired rejects the request with 401 when no bearer token is present
// and with 403 when the token does not verify. On success the verified email
// is available through Email.
func (m *Middleware) AuthRequired() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		email, err := m.verifier.Verify(bearerToken(ctx.GetHeader("Authorization")))
		if err != nil {
			if errors.Is(err, service_jwt_auth.ErrMissingToken) {
				m.logger.Warn("no bearer token", slog.String("path", ctx.FullPath()))
				ctx.AbortWithStatusJSON(http.StatusUnauthorized, http_common.ErrorResponse{
					Error: "No token provided",
				})
				return
			}

			m.logger.Warn("invalid token", slog.String("path", ctx.FullPath()), slog.String("error", err.Error()))
			ctx.AbortWithStatusJSON(http.StatusForbidden, http_common.ErrorResponse{
				Error: "Invalid token",
			})
			return
		}

		ctx.Set(emailKey, email)
		ctx.Next()
	}
}

// Email returns the identity set by AuthRequired.
func Email(ctx *gin.Context) (model.Email, bool) {
	email := ctx.GetString(emailKey)
	return email, email != ""
}

// bearerToken takes the credential after the scheme; the scheme itself is
// not checked.
func bearerToken(header string) string {
	_, token, _ := strings.Cut(strings.TrimSpace(header), " ")
	return strings.TrimSpace(token)
}
