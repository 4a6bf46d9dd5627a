package http_auth_middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	http_common "github.com/humanbelnik/moviefav/internal/delivery/http/common"
	service_jwt_auth "github.com/humanbelnik/moviefav/internal/service/auth/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) (*gin.Engine, *service_jwt_auth.Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	svc, err := service_jwt_auth.New("secret")
	require.NoError(t, err)

	r := gin.New()
	r.GET("/me", New(svc).AuthRequired(), func(ctx *gin.Context) {
		email, ok := Email(ctx)
		if !ok {
			ctx.Status(http.StatusInternalServerError)
			return
		}
		ctx.String(http.StatusOK, email)
	})
	return r, svc
}

func do(r http.Handler, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthRequired(t *testing.T) {
	r, svc := newRouter(t)
	token, err := svc.Issue("a@b.com")
	require.NoError(t, err)

	testCases := []struct {
		name   string
		header string
		status int
		body   string
	}{
		{name: "no header", header: "", status: http.StatusUnauthorized},
		{name: "scheme only", header: "Bearer", status: http.StatusUnauthorized},
		{name: "scheme with blank token", header: "Bearer   ", status: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer nope", status: http.StatusForbidden},
		{name: "valid token", header: "Bearer " + token, status: http.StatusOK, body: "a@b.com"},
		{name: "lowercase scheme", header: "bearer " + token, status: http.StatusOK, body: "a@b.com"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(r, tc.header)

			assert.Equal(t, tc.status, w.Code)
			if tc.body != "" {
				assert.Equal(t, tc.body, w.Body.String())
				return
			}

			var resp http_common.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.NotEmpty(t, resp.Error)
		})
	}
}

func TestBearerToken(t *testing.T) {
	assert.Equal(t, "abc", bearerToken("Bearer abc"))
	assert.Equal(t, "abc", bearerToken("  Bearer   abc  "))
	assert.Equal(t, "", bearerToken("abc"))
	assert.Equal(t, "", bearerToken(""))
}
