package infra_postgres_favorite

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/humanbelnik/moviefav/internal/model"
)

type FavoriteDB struct {
	ID         uuid.UUID      `db:"id"`
	ImdbID     string         `db:"imdb_id"`
	Title      string         `db:"title"`
	PosterURL  string         `db:"poster_url"`
	VideoURL   sql.NullString `db:"video_url"`
	OwnerEmail string         `db:"owner_email"`
	CreatedAt  time.Time      `db:"created_at"`
}

func (f *FavoriteDB) ToDomain() model.Favorite {
	return model.Favorite{
		ID:         f.ID.String(),
		ImdbID:     f.ImdbID,
		Title:      f.Title,
		PosterURL:  f.PosterURL,
		VideoURL:   f.VideoURL.String,
		OwnerEmail: f.OwnerEmail,
	}
}

func FromDomain(f model.Favorite) FavoriteDB {
	return FavoriteDB{
		ImdbID:     f.ImdbID,
		Title:      f.Title,
		PosterURL:  f.PosterURL,
		VideoURL:   sql.NullString{String: f.VideoURL, Valid: f.VideoURL != ""},
		OwnerEmail: f.OwnerEmail,
	}
}
