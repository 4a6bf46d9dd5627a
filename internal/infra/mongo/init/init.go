package infra_mongo_init

import (
	"context"
	"log"
	"time"

	"github.com/humanbelnik/moviefav/internal/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const connectTimeout = 10 * time.Second

func MustEstablishConn(cfg config.Mongo) *mongo.Client {
	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()

	client, err := mongo.Connect(ctx, clientOptions(cfg))
	if err != nil {
		log.Fatal(err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		log.Fatal("[mongo] ping failed: ", err)
	}

	log.Printf("[mongo] connected, database %s", cfg.DBName)
	return client
}

// clientOptions pins Stable API v1, strict, with deprecation errors.
func clientOptions(cfg config.Mongo) *options.ClientOptions {
	api := options.ServerAPI(options.ServerAPIVersion1).
		SetStrict(true).
		SetDeprecationErrors(true)

	return options.Client().
		ApplyURI(cfg.URI).
		SetServerAPIOptions(api)
}
