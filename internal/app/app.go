package app

import (
	"context"
	"log"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/humanbelnik/moviefav/internal/config"
	http_auth "github.com/humanbelnik/moviefav/internal/delivery/http/auth"
	http_favorite "github.com/humanbelnik/moviefav/internal/delivery/http/favorite"
	http_health "github.com/humanbelnik/moviefav/internal/delivery/http/health"
	http_init "github.com/humanbelnik/moviefav/internal/delivery/http/init"
	http_access_middleware "github.com/humanbelnik/moviefav/internal/delivery/http/middleware/access"
	http_auth_middleware "github.com/humanbelnik/moviefav/internal/delivery/http/middleware/auth"
	http_movie "github.com/humanbelnik/moviefav/internal/delivery/http/movie"
	http_swagger "github.com/humanbelnik/moviefav/internal/delivery/http/swagger"
	http_video "github.com/humanbelnik/moviefav/internal/delivery/http/video"
	infra_memory_favorite "github.com/humanbelnik/moviefav/internal/infra/memory/favorite"
	infra_mongo_favorite "github.com/humanbelnik/moviefav/internal/infra/mongo/favorite"
	infra_mongo_init "github.com/humanbelnik/moviefav/internal/infra/mongo/init"
	infra_omdb "github.com/humanbelnik/moviefav/internal/infra/omdb"
	infra_pg_init "github.com/humanbelnik/moviefav/internal/infra/postgres/init"
	infra_postgres_favorite "github.com/humanbelnik/moviefav/internal/infra/postgres/favorite"
	infra_redis_init "github.com/humanbelnik/moviefav/internal/infra/redis/init"
	infra_lookup_cache "github.com/humanbelnik/moviefav/internal/infra/redis/lookup_cache"
	infra_s3 "github.com/humanbelnik/moviefav/internal/infra/s3"
	service_jwt_auth "github.com/humanbelnik/moviefav/internal/service/auth/jwt"
	usecase_catalog "github.com/humanbelnik/moviefav/internal/usecase/catalog"
	usecase_favorite "github.com/humanbelnik/moviefav/internal/usecase/favorite"
)

// Components is everything the HTTP layer needs, already constructed.
type Components struct {
	Tokens    *service_jwt_auth.Service
	Favorites *usecase_favorite.Usecase
	Catalog   *usecase_catalog.Usecase
	Videos    *http_video.Controller
	// Mode is RW or RO; empty means RW.
	Mode      string
}

func NewControllerPool(c Components) *http_init.ControllerPool {
	authMiddleware := http_auth_middleware.New(c.Tokens)

	controllerPool := http_init.NewControllerPool()
	controllerPool.Use(http_access_middleware.ReadOnly(c.Mode, "/jwt"))
	controllerPool.Add(http_health.New())
	controllerPool.Add(http_auth.New(c.Tokens))
	controllerPool.Add(http_favorite.New(c.Favorites, authMiddleware))
	controllerPool.Add(http_movie.New(c.Catalog))
	controllerPool.Add(c.Videos)
	controllerPool.Add(http_swagger.New(""))
	controllerPool.Register()

	return controllerPool
}

func Go(cfg *config.Config) {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	tokens, err := service_jwt_auth.New(cfg.Auth.Secret, service_jwt_auth.WithTTL(cfg.Auth.TTL))
	if err != nil {
		log.Fatal("JWT_SECRET must be set: ", err)
	}

	repository, closeStore := mustFavoritesRepository(cfg)
	defer closeStore()

	catalogOpts := []usecase_catalog.Option{
		usecase_catalog.WithConcurrency(cfg.OMDb.Concurrency),
	}
	if cfg.Redis.Enabled() {
		redisConn := infra_redis_init.MustEstablishConn(cfg.Redis)
		defer redisConn.Close()
		catalogOpts = append(catalogOpts, usecase_catalog.WithCache(
			infra_lookup_cache.New(redisConn, "omdb_lookup", cfg.Redis.TTL),
		))
	}
	if cfg.OMDb.APIKey == "" {
		slog.Warn("OMDB_API_KEY is empty, catalog requests will be rejected upstream")
	}
	omdb := infra_omdb.New(cfg.OMDb.APIKey,
		infra_omdb.WithBaseURL(cfg.OMDb.BaseURL),
		infra_omdb.WithTimeout(cfg.OMDb.Timeout),
	)

	var videos *http_video.Controller
	if cfg.Videos.S3Bucket != "" {
		s3conn := infra_s3.MustEstablishConn(cfg.Videos.S3Endpoint)
		videos = http_video.NewRemote(infra_s3.NewVideoStorage(s3conn, cfg.Videos.S3Bucket, cfg.Videos.S3Prefix, cfg.Videos.URLTTL))
	} else {
		videos = http_video.NewLocal(cfg.Videos.Dir)
	}

	controllerPool := NewControllerPool(Components{
		Tokens:    tokens,
		Favorites: usecase_favorite.New(repository),
		Catalog:   usecase_catalog.New(omdb, catalogOpts...),
		Videos:    videos,
		Mode:      cfg.HTTP.Mode,
	})

	slog.Info("server and store connected, ready to accept requests",
		slog.String("favorites_backend", cfg.FavoritesBackend),
		slog.String("mode", cfg.HTTP.Mode),
		slog.Bool("lookup_cache", cfg.Redis.Enabled()),
	)
	if err := controllerPool.RunAll(ctx, cfg.HTTP.Host, cfg.HTTP.Port, cfg.HTTP.ShutdownTimeout); err != nil {
		log.Fatalf("failed to run HTTP server: %v", err)
	}
}

func mustFavoritesRepository(cfg *config.Config) (usecase_favorite.Repository, func()) {
	switch cfg.FavoritesBackend {
	case config.BackendPostgres:
		pgConn := infra_pg_init.MustEstablishConn(cfg.Postgres)
		return infra_postgres_favorite.New(pgConn), func() { _ = pgConn.Close() }
	case config.BackendMemory:
		return infra_memory_favorite.New(), func() {}
	case config.BackendMongo:
		mongoConn := infra_mongo_init.MustEstablishConn(cfg.Mongo)
		coll := mongoConn.Database(cfg.Mongo.DBName).Collection(cfg.Mongo.Collection)
		return infra_mongo_favorite.New(coll), func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = mongoConn.Disconnect(ctx)
		}
	default:
		log.Fatalf("unknown FAVORITES_BACKEND %q", cfg.FavoritesBackend)
		return nil, nil
	}
}
