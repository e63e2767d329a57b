// Package storage holds the R2/S3 object store used for background-design
// assets and archived PDF exports. Like the Redis cache it is optional:
// with no endpoint configured the store is nil and callers skip archival.
package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"

	"invoice-backend/internal/config"
)

type ObjectStore struct {
	client *s3.Client
	bucket string
}

// New builds the object store from config. Returns nil (not an error) when
// no endpoint is configured so the server can run without object storage.
func New(cfg *config.Config) *ObjectStore {
	if cfg.Storage.Endpoint == "" || cfg.Storage.Bucket == "" {
		log.Println("[Storage] No object storage configured, PDF archival disabled")
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx,
		awsconfig.WithCredentialsProvider(credentials.NewStaticCredentialsProvider(
			cfg.Storage.AccessKey,
			cfg.Storage.SecretKey,
			"",
		)),
		awsconfig.WithRegion(cfg.Storage.Region),
	)
	if err != nil {
		log.Printf("[Storage] Failed to configure client: %v", err)
		return nil
	}

	client := s3.NewFromConfig(awsCfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(cfg.Storage.Endpoint)
	})

	return &ObjectStore{client: client, bucket: cfg.Storage.Bucket}
}

// PutPDF uploads a rendered invoice PDF under exports/<owner>/<number>.pdf
// and returns the object key.
func (s *ObjectStore) PutPDF(ctx context.Context, ownerID int64, invoiceNumber string, pdf []byte) (string, error) {
	key := fmt.Sprintf("exports/%d/%s.pdf", ownerID, invoiceNumber)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(pdf),
		ContentType: aws.String("application/pdf"),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload PDF: %w", err)
	}
	return key, nil
}

// PutDesign uploads a background-design asset and returns the object key.
func (s *ObjectStore) PutDesign(ctx context.Context, ownerID int64, name string, contentType string, body io.Reader) (string, error) {
	key := fmt.Sprintf("designs/%d/%s", ownerID, name)

	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("failed to upload design: %w", err)
	}
	return key, nil
}

// GetDesign fetches a background-design asset by key.
func (s *ObjectStore) GetDesign(ctx context.Context, key string) ([]byte, error) {
	result, err := s.client.GetObject(ctx, &s3.GetObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch design %s: %w", key, err)
	}
	defer result.Body.Close()
	return io.ReadAll(result.Body)
}
