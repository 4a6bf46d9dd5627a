package http_access_middleware

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/moviefav/internal/delivery/http/common"
)

const (
	ModeReadWrite = "RW"
	ModeReadOnly  = "RO"
)

// ReadOnly turns every favorites mutation into 502 when mode is RO.
// Token issuance stays open since it touches no storage.
func ReadOnly(mode string, exempt ...string) gin.HandlerFunc {
	if mode != ModeReadOnly {
		return func(c *gin.Context) { c.Next() }
	}

	allowed := make(map[string]struct{}, len(exempt))
	for _, p := range exempt {
		allowed[p] = struct{}{}
	}

	return func(c *gin.Context) {
		switch c.Request.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			c.Next()
			return
		}
		if _, ok := allowed[c.Request.URL.Path]; ok {
			c.Next()
			return
		}

		slog.Warn("write rejected on read-only instance",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
		)
		c.AbortWithStatusJSON(http.StatusBadGateway, http_common.ErrorResponse{
			Error: "Write operations not allowed on read-only instance",
		})
	}
}
