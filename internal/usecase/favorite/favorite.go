package usecase_favorite

import (
	"context"
	"errors"
	"fmt"

	"github.com/humanbelnik/moviefav/internal/model"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrStorage      = errors.New("favorites storage failure")
)

//go:generate mockery --name=Repository --output=../../../mocks/repository --outpkg=mocks --structname=FavoriteRepository
type Repository interface {
	// Store persists f and returns the id the store assigned to it.
	Store(ctx context.Context, f model.Favorite) (string, error)
	LoadByOwner(ctx context.Context, ownerEmail string) ([]model.Favorite, error)
	// DeleteByOwner removes the record with the given id only if it belongs
	// to ownerEmail and reports how many records were removed.
	DeleteByOwner(ctx context.Context, ownerEmail string, ID string) (int64, error)
}

type Usecase struct {
	repository Repository
}

func New(repository Repository) *Usecase {
	return &Usecase{
		repository: repository,
	}
}

func (u *Usecase) List(ctx context.Context, ownerEmail string) ([]model.Favorite, error) {
	if ownerEmail == "" {
		return nil, fmt.Errorf("%w: owner email is required", ErrInvalidInput)
	}

	ff, err := u.repository.LoadByOwner(ctx, ownerEmail)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	if ff == nil {
		ff = []model.Favorite{}
	}
	return ff, nil
}

func (u *Usecase) Add(ctx context.Context, ownerEmail string, d model.FavoriteDraft) (string, error) {
	if ownerEmail == "" {
		return "", fmt.Errorf("%w: owner email is required", ErrInvalidInput)
	}
	if d.ImdbID == "" || d.Title == "" || d.PosterURL == "" {
		return "", fmt.Errorf("%w: missing required movie data", ErrInvalidInput)
	}

	ID, err := u.repository.Store(ctx, d.Bind(ownerEmail))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return ID, nil
}

// Remove never fails on a missing or foreign record: the count is simply zero.
func (u *Usecase) Remove(ctx context.Context, ownerEmail string, ID string) (int64, error) {
	if ownerEmail == "" {
		return 0, fmt.Errorf("%w: owner email is required", ErrInvalidInput)
	}
	if ID == "" {
		return 0, nil
	}

	n, err := u.repository.DeleteByOwner(ctx, ownerEmail, ID)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrStorage, err)
	}
	return n, nil
}
