package infra_pg_init

import (
	"context"
	"log"
	"net/url"
	"time"

	"github.com/humanbelnik/moviefav/internal/config"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

const connectTimeout = 10 * time.Second

// MustEstablishConn opens the favorites database and verifies it answers
// within connectTimeout.
func MustEstablishConn(cfg config.Postgres) *sqlx.DB {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	db, err := sqlx.ConnectContext(ctx, "postgres", dsn(cfg))
	if err != nil {
		log.Fatalf("[postgres] connect to %s:%s/%s failed: %v", cfg.Host, cfg.Port, cfg.DBName, err)
	}
	applyPoolLimits(db, cfg)

	log.Printf("[postgres] connected to %s:%s/%s (max open %d, max idle %d)",
		cfg.Host, cfg.Port, cfg.DBName, cfg.MaxOpenConns, cfg.MaxIdleConns)
	return db
}

func dsn(cfg config.Postgres) string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(cfg.User, cfg.Password),
		Host:   cfg.Host + ":" + cfg.Port,
		Path:   "/" + cfg.DBName,
	}
	q := url.Values{}
	q.Set("sslmode", cfg.SSLMode)
	u.RawQuery = q.Encode()
	return u.String()
}

func applyPoolLimits(db *sqlx.DB, cfg config.Postgres) {
	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	}
}
