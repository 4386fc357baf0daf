package storage

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"net/url"
	"os"
	"strings"

	"custodia_cheques/internal/infrastructure/database"
	"custodia_cheques/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// S3BlobStore stores check attachments, remessa manifests and signed receipts
// in a single S3 bucket.
//
// Supported env vars:
//   - BLOB_BUCKET (default: custodia-cheques-anexos)
//   - S3_ENDPOINT (optional; e.g. http://localstack:4566 for local runs)
type S3BlobStore struct {
	client *s3.Client
	bucket string
	region string
	// baseURL overrides the default virtual-hosted URL when a custom
	// endpoint is in use.
	baseURL string
}

var _ interfaces.IBlobStore = (*S3BlobStore)(nil)

func NewS3BlobStore() *S3BlobStore {
	cfg, err := database.NewAWSConfigFromEnv(context.Background())
	if err != nil {
		log.Fatalf("failed to create aws config: %v", err)
	}

	bucket := getenvDefault("BLOB_BUCKET", "custodia-cheques-anexos")
	endpoint := os.Getenv("S3_ENDPOINT")

	var client *s3.Client
	baseURL := ""
	if endpoint != "" {
		client = s3.NewFromConfig(cfg, func(o *s3.Options) {
			o.BaseEndpoint = aws.String(endpoint)
			o.UsePathStyle = true
		})
		baseURL = fmt.Sprintf("%s/%s", strings.TrimSuffix(endpoint, "/"), bucket)
	} else {
		client = s3.NewFromConfig(cfg)
	}

	return &S3BlobStore{
		client:  client,
		bucket:  bucket,
		region:  cfg.Region,
		baseURL: baseURL,
	}
}

func (s *S3BlobStore) Upload(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	_, err := s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(path),
		Body:        bytes.NewReader(data),
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", fmt.Errorf("upload de %s: %w", path, err)
	}
	return s.urlFor(path), nil
}

func (s *S3BlobStore) Delete(ctx context.Context, downloadURL string) error {
	key, err := s.keyFromURL(downloadURL)
	if err != nil {
		return err
	}

	_, err = s.client.DeleteObject(ctx, &s3.DeleteObjectInput{
		Bucket: aws.String(s.bucket),
		Key:    aws.String(key),
	})
	if err != nil {
		return fmt.Errorf("remoção de %s: %w", key, err)
	}
	return nil
}

func (s *S3BlobStore) urlFor(path string) string {
	escaped := escapeKey(path)
	if s.baseURL != "" {
		return fmt.Sprintf("%s/%s", s.baseURL, escaped)
	}
	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, escaped)
}

// keyFromURL recovers the object key from the URL handed out by Upload.
func (s *S3BlobStore) keyFromURL(downloadURL string) (string, error) {
	u, err := url.Parse(downloadURL)
	if err != nil {
		return "", fmt.Errorf("url de anexo inválida: %w", err)
	}

	path := strings.TrimPrefix(u.Path, "/")
	// Path-style URLs carry the bucket as the first segment.
	path = strings.TrimPrefix(path, s.bucket+"/")
	if path == "" {
		return "", fmt.Errorf("url de anexo inválida: %s", downloadURL)
	}
	return path, nil
}

func escapeKey(path string) string {
	parts := strings.Split(path, "/")
	for i, p := range parts {
		parts[i] = url.PathEscape(p)
	}
	return strings.Join(parts, "/")
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
