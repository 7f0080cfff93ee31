package storage

import (
	"context"
	"fmt"
	"io"
	"path"

	gcs "cloud.google.com/go/storage"
	"github.com/google/uuid"
)

// ImageStore writes plan images to object storage and returns a
// publicly servable URL.
type ImageStore interface {
	Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error)
	Close() error
}

type gcsImageStore struct {
	client *gcs.Client
	bucket string
}

func NewGCSImageStore(ctx context.Context, bucket string) (ImageStore, error) {
	client, err := gcs.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("init storage client: %w", err)
	}
	return &gcsImageStore{client: client, bucket: bucket}, nil
}

func (s *gcsImageStore) Upload(ctx context.Context, filename, contentType string, r io.Reader) (string, error) {
	// Random object name keeps uploads from overwriting each other.
	objectPath := fmt.Sprintf("house_plans/%s%s", uuid.NewString(), path.Ext(filename))
	obj := s.client.Bucket(s.bucket).Object(objectPath)

	w := obj.NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}

	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, objectPath), nil
}

func (s *gcsImageStore) Close() error {
	return s.client.Close()
}
