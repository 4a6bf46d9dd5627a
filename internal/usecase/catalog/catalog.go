package usecase_catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	infra_omdb "github.com/humanbelnik/moviefav/internal/infra/omdb"
	"github.com/humanbelnik/moviefav/internal/model"
	"golang.org/x/sync/errgroup"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNotFound     = errors.New("not found")
	ErrUpstream     = errors.New("catalog upstream failure")
)

// NotFoundError carries the catalog's own explanation of an empty result.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s: %s", ErrNotFound, e.Message)
}

func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

//go:generate mockery --name=Catalog --output=../../../mocks/catalog --outpkg=mocks
type Catalog interface {
	Search(ctx context.Context, query string) (infra_omdb.SearchResult, error)
	Lookup(ctx context.Context, title string) (model.Movie, error)
}

//go:generate mockery --name=LookupCache --output=../../../mocks/cache --outpkg=mocks
type LookupCache interface {
	Get(title string) (model.Movie, bool, error)
	Set(title string, m model.Movie) error
}

type Usecase struct {
	catalog       Catalog
	cache         LookupCache
	defaultTitles []string
	concurrency   int
	logger        *slog.Logger
}

type Option func(*Usecase)

func WithCache(cache LookupCache) Option {
	return func(u *Usecase) {
		u.cache = cache
	}
}

// WithConcurrency caps in-flight lookups. Zero or less means unbounded.
func WithConcurrency(n int) Option {
	return func(u *Usecase) {
		u.concurrency = n
	}
}

func WithDefaultTitles(titles []string) Option {
	return func(u *Usecase) {
		u.defaultTitles = titles
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(catalog Catalog, opts ...Option) *Usecase {
	u := &Usecase{
		catalog:       catalog,
		defaultTitles: DefaultTitles,
		logger:        slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Search forwards query to the catalog as given. A blank or whitespace-only
// query is rejected before any upstream call.
func (u *Usecase) Search(ctx context.Context, query string) ([]model.SearchItem, error) {
	if strings.TrimSpace(query) == "" {
		return nil, fmt.Errorf("%w: query parameter is required", ErrInvalidInput)
	}

	res, err := u.catalog.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	if !res.Found() {
		return nil, &NotFoundError{Message: res.Error}
	}
	if res.Search == nil {
		return []model.SearchItem{}, nil
	}
	return res.Search, nil
}

// LookupMany resolves every title concurrently and returns the records in
// input order. The first transport failure cancels the rest and fails the
// whole call. Titles the catalog does not know come back with Response "False".
func (u *Usecase) LookupMany(ctx context.Context, titles []string) ([]model.Movie, error) {
	movies := make([]model.Movie, len(titles))

	g, gctx := errgroup.WithContext(ctx)
	if u.concurrency > 0 {
		g.SetLimit(u.concurrency)
	}

	for i, title := range titles {
		g.Go(func() error {
			m, err := u.lookup(gctx, title)
			if err != nil {
				return err
			}
			movies[i] = m
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return movies, nil
}

func (u *Usecase) DefaultMovies(ctx context.Context) ([]model.Movie, error) {
	return u.LookupMany(ctx, u.defaultTitles)
}

func (u *Usecase) lookup(ctx context.Context, title string) (model.Movie, error) {
	key := cacheKey(title)

	if u.cache != nil {
		m, ok, err := u.cache.Get(key)
		if err != nil {
			u.logger.Warn("lookup cache read failed", slog.String("title", title), slog.String("error", err.Error()))
		} else if ok {
			return m, nil
		}
	}

	m, err := u.catalog.Lookup(ctx, title)
	if err != nil {
		return model.Movie{}, err
	}

	if u.cache != nil && m.Found() {
		if err := u.cache.Set(key, m); err != nil {
			u.logger.Warn("lookup cache write failed", slog.String("title", title), slog.String("error", err.Error()))
		}
	}
	return m, nil
}

func cacheKey(title string) string {
	return strings.ToLower(strings.TrimSpace(title))
}
