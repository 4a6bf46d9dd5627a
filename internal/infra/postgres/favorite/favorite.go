package infra_postgres_favorite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/moviefav/internal/model"
	"github.com/jmoiron/sqlx"
)

// Expects:
//
//	CREATE TABLE favorites (
//		id          UUID PRIMARY KEY,
//		imdb_id     TEXT NOT NULL,
//		title       TEXT NOT NULL,
//		poster_url  TEXT NOT NULL,
//		video_url   TEXT,
//		owner_email TEXT NOT NULL,
//		created_at  TIMESTAMPTZ NOT NULL
//	);
//	CREATE INDEX favorites_owner_email_idx ON favorites (owner_email, created_at);
type Repository struct {
	db  *sqlx.DB
	now func() time.Time
}

func New(db *sqlx.DB) *Repository {
	return &Repository{
		db:  db,
		now: time.Now,
	}
}

func (r *Repository) Store(ctx context.Context, f model.Favorite) (string, error) {
	row := FromDomain(f)
	row.ID = uuid.New()
	row.CreatedAt = r.now().UTC()

	query := `
		INSERT INTO favorites (id, imdb_id, title, poster_url, video_url, owner_email, created_at)
		VALUES (:id, :imdb_id, :title, :poster_url, :video_url, :owner_email, :created_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, row); err != nil {
		return "", fmt.Errorf("failed to store favorite: %w", err)
	}
	return row.ID.String(), nil
}

func (r *Repository) LoadByOwner(ctx context.Context, ownerEmail string) ([]model.Favorite, error) {
	query := `
		SELECT id, imdb_id, title, poster_url, video_url, owner_email, created_at
		FROM favorites
		WHERE owner_email = $1
		ORDER BY created_at, id
	`

	var rows []FavoriteDB
	if err := r.db.SelectContext(ctx, &rows, query, ownerEmail); err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}

	ff := make([]model.Favorite, len(rows))
	for i := range rows {
		ff[i] = rows[i].ToDomain()
	}
	return ff, nil
}

// DeleteByOwner treats an id that is not a UUID as matching nothing.
func (r *Repository) DeleteByOwner(ctx context.Context, ownerEmail string, ID string) (int64, error) {
	favoriteID, err := uuid.Parse(ID)
	if err != nil {
		return 0, nil
	}

	query := `DELETE FROM favorites WHERE id = $1 AND owner_email = $2`

	res, err := r.db.ExecContext(ctx, query, favoriteID, ownerEmail)
	if err != nil {
		return 0, fmt.Errorf("failed to delete favorite: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}
	return n, nil
}
