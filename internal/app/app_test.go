package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	http_video "github.com/humanbelnik/moviefav/internal/delivery/http/video"
	infra_memory_favorite "github.com/humanbelnik/moviefav/internal/infra/memory/favorite"
	infra_omdb "github.com/humanbelnik/moviefav/internal/infra/omdb"
	"github.com/humanbelnik/moviefav/internal/model"
	service_jwt_auth "github.com/humanbelnik/moviefav/internal/service/auth/jwt"
	usecase_catalog "github.com/humanbelnik/moviefav/internal/usecase/catalog"
	usecase_favorite "github.com/humanbelnik/moviefav/internal/usecase/favorite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type harness struct {
	handler http.Handler
}

func newHarness(t *testing.T, omdbHandler http.HandlerFunc) *harness {
	t.Helper()
	gin.SetMode(gin.TestMode)

	omdb := httptest.NewServer(omdbHandler)
	t.Cleanup(omdb.Close)

	videoDir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(videoDir, "clip.mp4"), []byte("video-bytes"), 0o644))

	tokens, err := service_jwt_auth.New("test-secret")
	require.NoError(t, err)

	pool := NewControllerPool(Components{
		Tokens:    tokens,
		Favorites: usecase_favorite.New(infra_memory_favorite.New()),
		Catalog: usecase_catalog.New(
			infra_omdb.New("key", infra_omdb.WithBaseURL(omdb.URL)),
			usecase_catalog.WithDefaultTitles([]string{"Heat", "Up"}),
		),
		Videos: http_video.NewLocal(videoDir),
	})
	return &harness{handler: pool.Handler()}
}

func (h *harness) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	h.handler.ServeHTTP(w, req)
	return w
}

func (h *harness) login(t *testing.T, email string) string {
	t.Helper()
	w := h.do(t, http.MethodPost, "/jwt", "", map[string]string{"email": email})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func omdbFake(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	switch {
	case q.Get("s") == "batman":
		_, _ = w.Write([]byte(`{"Search":[{"Title":"Batman Begins","Year":"2005","imdbID":"tt0372784","Type":"movie","Poster":"a.jpg"}],"totalResults":"1","Response":"True"}`))
	case q.Get("s") == "boom":
		w.WriteHeader(http.StatusBadGateway)
	case q.Get("s") != "":
		_, _ = w.Write([]byte(`{"Response":"False","Error":"Movie not found!"}`))
	case q.Get("t") != "":
		_, _ = w.Write([]byte(`{"Title":"` + q.Get("t") + `","Response":"True"}`))
	}
}

func TestLiveness(t *testing.T) {
	h := newHarness(t, omdbFake)

	w := h.do(t, http.MethodGet, "/", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Server is running", w.Body.String())
}

func TestTokenIssue(t *testing.T) {
	h := newHarness(t, omdbFake)

	w := h.do(t, http.MethodPost, "/jwt", "", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error":"Email is required"}`, w.Body.String())

	h.login(t, "a@b.com")
}

func TestFavoritesFlow(t *testing.T) {
	h := newHarness(t, omdbFake)

	w := h.do(t, http.MethodGet, "/favorites", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = h.do(t, http.MethodGet, "/favorites", "forged", nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	token := h.login(t, "a@b.com")

	w = h.do(t, http.MethodGet, "/favorites", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = h.do(t, http.MethodPost, "/api/favorites", token, map[string]string{
		"imdbID": "tt1",
		"Title":  "X",
		"Poster": "p.jpg",
		"email":  "someone-else@b.com",
	})
	require.Equal(t, http.StatusOK, w.Code)
	var inserted struct {
		Acknowledged bool   `json:"acknowledged"`
		InsertedID   string `json:"insertedId"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &inserted))
	assert.True(t, inserted.Acknowledged)
	require.NotEmpty(t, inserted.InsertedID)

	w = h.do(t, http.MethodGet, "/favorites", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var ff []model.Favorite
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &ff))
	require.Len(t, ff, 1)
	assert.Equal(t, inserted.InsertedID, ff[0].ID)
	assert.Equal(t, "tt1", ff[0].ImdbID)
	assert.Equal(t, "a@b.com", ff[0].OwnerEmail)

	other := h.login(t, "c@d.com")

	w = h.do(t, http.MethodGet, "/favorites", other, nil)
	assert.JSONEq(t, `[]`, w.Body.String())

	w = h.do(t, http.MethodDelete, "/favorites/"+inserted.InsertedID, other, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":0}`, w.Body.String())

	w = h.do(t, http.MethodDelete, "/favorites/"+inserted.InsertedID, token, nil)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":1}`, w.Body.String())

	w = h.do(t, http.MethodDelete, "/favorites/"+inserted.InsertedID, token, nil)
	assert.JSONEq(t, `{"acknowledged":true,"deletedCount":0}`, w.Body.String())
}

func TestAddFavoriteValidation(t *testing.T) {
	h := newHarness(t, omdbFake)
	token := h.login(t, "a@b.com")

	for _, body := range []map[string]string{
		{"Title": "X", "Poster": "p.jpg"},
		{"imdbID": "tt1", "Poster": "p.jpg"},
		{"imdbID": "tt1", "Title": "X"},
	} {
		w := h.do(t, http.MethodPost, "/api/favorites", token, body)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	}

	w := h.do(t, http.MethodGet, "/favorites", token, nil)
	assert.JSONEq(t, `[]`, w.Body.String())
}

func TestSearch(t *testing.T) {
	h := newHarness(t, omdbFake)

	w := h.do(t, http.MethodGet, "/api/search", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = h.do(t, http.MethodGet, "/api/search?query=batman", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"Title":"Batman Begins","Year":"2005","imdbID":"tt0372784","Type":"movie","Poster":"a.jpg"}]`, w.Body.String())

	w = h.do(t, http.MethodGet, "/api/search?query=xyz-no-such-movie-zzz", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Movie not found!"}`, w.Body.String())

	w = h.do(t, http.MethodGet, "/api/search?query=boom", "", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestDefaultMovies(t *testing.T) {
	h := newHarness(t, omdbFake)

	w := h.do(t, http.MethodGet, "/api/default-movies", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var movies []model.Movie
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &movies))
	require.Len(t, movies, 2)
	assert.Equal(t, "Heat", movies[0].Title)
	assert.Equal(t, "Up", movies[1].Title)
}

func TestDefaultMoviesUpstreamDown(t *testing.T) {
	h := newHarness(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	w := h.do(t, http.MethodGet, "/api/default-movies", "", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestVideos(t *testing.T) {
	h := newHarness(t, omdbFake)

	w := h.do(t, http.MethodGet, "/videos/clip.mp4", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "video-bytes", w.Body.String())

	w = h.do(t, http.MethodGet, "/videos/missing.mp4", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestReadOnlyMode(t *testing.T) {
	gin.SetMode(gin.TestMode)
	tokens, err := service_jwt_auth.New("test-secret")
	require.NoError(t, err)

	h := &harness{handler: NewControllerPool(Components{
		Tokens:    tokens,
		Favorites: usecase_favorite.New(infra_memory_favorite.New()),
		Catalog:   usecase_catalog.New(infra_omdb.New("key")),
		Videos:    http_video.NewLocal(t.TempDir()),
		Mode:      "RO",
	}).Handler()}
	token := h.login(t, "a@b.com")

	w := h.do(t, http.MethodGet, "/favorites", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = h.do(t, http.MethodPost, "/api/favorites", token, map[string]string{
		"imdbID": "tt1",
		"Title":  "X",
		"Poster": "p.jpg",
	})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestSwaggerDocs(t *testing.T) {
	h := newHarness(t, omdbFake)

	w := h.do(t, http.MethodGet, "/swagger/doc.json", "", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"/api/favorites"`)
}
