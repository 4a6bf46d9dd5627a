package infra_mongo_favorite

import (
	"context"
	"errors"
	"fmt"

	"github.com/humanbelnik/moviefav/internal/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var ErrUnexpectedID = errors.New("unexpected inserted id type")

type Repository struct {
	coll *mongo.Collection
}

func New(coll *mongo.Collection) *Repository {
	return &Repository{coll: coll}
}

func (r *Repository) Store(ctx context.Context, f model.Favorite) (string, error) {
	doc := FromDomain(f)
	doc.ID = primitive.NilObjectID

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert favorite: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("%w: %T", ErrUnexpectedID, res.InsertedID)
	}
	return oid.Hex(), nil
}

// LoadByOwner returns records in natural order, which for a plain
// collection is insertion order.
func (r *Repository) LoadByOwner(ctx context.Context, ownerEmail string) ([]model.Favorite, error) {
	cur, err := r.coll.Find(ctx, bson.M{"email": ownerEmail}, options.Find().SetSort(bson.D{{Key: "$natural", Value: 1}}))
	if err != nil {
		return nil, fmt.Errorf("failed to query favorites: %w", err)
	}

	var docs []FavoriteDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode favorites: %w", err)
	}

	ff := make([]model.Favorite, len(docs))
	for i := range docs {
		ff[i] = docs[i].ToDomain()
	}
	return ff, nil
}

// DeleteByOwner treats an id that is not a valid ObjectID as matching nothing.
func (r *Repository) DeleteByOwner(ctx context.Context, ownerEmail string, ID string) (int64, error) {
	oid, err := primitive.ObjectIDFromHex(ID)
	if err != nil {
		return 0, nil
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "email": ownerEmail})
	if err != nil {
		return 0, fmt.Errorf("failed to delete favorite: %w", err)
	}
	return res.DeletedCount, nil
}
