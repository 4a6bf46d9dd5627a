package infra_s3

import (
	"context"
	"fmt"
	"log"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// MustEstablishConn builds a client from the default AWS chain. A non-empty
// endpoint points it at an S3-compatible store with path-style addressing.
func MustEstablishConn(endpoint string) *s3.Client {
	cfg, err := config.LoadDefaultConfig(context.TODO())
	if err != nil {
		log.Fatal(err)
	}

	if endpoint == "" {
		log.Printf("[s3] using AWS S3 in region %q", cfg.Region)
		return s3.NewFromConfig(cfg)
	}

	log.Printf("[s3] using S3-compatible endpoint %s", endpoint)
	return s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(endpoint)
		o.UsePathStyle = true
	})
}

// VideoStorage hands out time-limited links to video objects kept under a
// key prefix in one bucket.
type VideoStorage struct {
	presigner  *s3.PresignClient
	bucketName string
	prefix     string
	ttl        time.Duration
}

func NewVideoStorage(client *s3.Client, bucketName, prefix string, ttl time.Duration) *VideoStorage {
	return &VideoStorage{
		presigner:  s3.NewPresignClient(client),
		bucketName: bucketName,
		prefix:     prefix,
		ttl:        ttl,
	}
}

func (s *VideoStorage) buildKey(name string) string {
	clean := path.Clean("/" + strings.ReplaceAll(name, "\\", "/"))
	return path.Join(s.prefix, strings.TrimPrefix(clean, "/"))
}

// PresignedURL signs a GET for the object at name. Names are cleaned so they
// cannot climb out of the prefix.
func (s *VideoStorage) PresignedURL(ctx context.Context, name string) (string, error) {
	req, err := s.presigner.PresignGetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucketName),
		Key:    aws.String(s.buildKey(name)),
	}, s3.WithPresignExpires(s.ttl))
	if err != nil {
		return "", fmt.Errorf("failed to presign video url: %w", err)
	}

	return req.URL, nil
}
