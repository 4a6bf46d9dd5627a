package infra_mongo_favorite

import (
	"github.com/humanbelnik/moviefav/internal/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// FavoriteDocument keeps the field names clients already rely on.
type FavoriteDocument struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	ImdbID   string             `bson:"imdbID"`
	Title    string             `bson:"Title"`
	Poster   string             `bson:"Poster"`
	VideoURL string             `bson:"videoUrl,omitempty"`
	Email    string             `bson:"email"`
}

func (d *FavoriteDocument) ToDomain() model.Favorite {
	f := model.Favorite{
		ImdbID:     d.ImdbID,
		Title:      d.Title,
		PosterURL:  d.Poster,
		VideoURL:   d.VideoURL,
		OwnerEmail: d.Email,
	}
	if !d.ID.IsZero() {
		f.ID = d.ID.Hex()
	}
	return f
}

func FromDomain(f model.Favorite) FavoriteDocument {
	d := FavoriteDocument{
		ImdbID:   f.ImdbID,
		Title:    f.Title,
		Poster:   f.PosterURL,
		VideoURL: f.VideoURL,
		Email:    f.OwnerEmail,
	}
	if oid, err := primitive.ObjectIDFromHex(f.ID); err == nil {
		d.ID = oid
	}
	return d
}
