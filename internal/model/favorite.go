package model

// Favorite is a movie saved by one user. OwnerEmail always comes from the
// verified session, never from the request body.
type Favorite struct {
	ID         string `json:"_id"`
	ImdbID     string `json:"imdbID"`
	Title      string `json:"Title"`
	PosterURL  string `json:"Poster"`
	VideoURL   string `json:"videoUrl,omitempty"`
	OwnerEmail string `json:"email"`
}

type FavoriteDraft struct {
	ImdbID    string
	Title     string
	PosterURL string
	VideoURL  string
}

func (d FavoriteDraft) Bind(ownerEmail string) Favorite {
	return Favorite{
		ImdbID:     d.ImdbID,
		Title:      d.Title,
		PosterURL:  d.PosterURL,
		VideoURL:   d.VideoURL,
		OwnerEmail: ownerEmail,
	}
}
