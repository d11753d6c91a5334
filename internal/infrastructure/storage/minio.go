package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	apperrors "github.com/Andre-Diamond/scripts-for-scraps/errors"
	"github.com/Andre-Diamond/scripts-for-scraps/internal/domain/repositories"
	"github.com/Andre-Diamond/scripts-for-scraps/pkg/config"
)

// MinIOClient stores comparison artifacts as JSON objects
type MinIOClient struct {
	client    *minio.Client
	bucket    string
	publicURL string // Public URL base when MinIO sits behind a reverse proxy
}

// NewMinIOClient creates a new MinIO client
func NewMinIOClient(cfg *config.StorageConfig) (*MinIOClient, error) {
	minioClient, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKeyID, cfg.SecretAccessKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	client := &MinIOClient{
		client:    minioClient,
		bucket:    cfg.BucketName,
		publicURL: cfg.PublicURL,
	}

	ctx := context.Background()
	if err := client.ensureBucket(ctx); err != nil {
		return nil, fmt.Errorf("failed to initialize bucket: %w", err)
	}

	return client, nil
}

var _ repositories.ArtifactStore = (*MinIOClient)(nil)

func (m *MinIOClient) ensureBucket(ctx context.Context) error {
	exists, err := m.client.BucketExists(ctx, m.bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := m.client.MakeBucket(ctx, m.bucket, minio.MakeBucketOptions{}); err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
	}
	return nil
}

// SaveJSON marshals the payload and stores it under the given object name,
// returning the object's location.
func (m *MinIOClient) SaveJSON(ctx context.Context, name string, payload any) (string, error) {
	raw, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", apperrors.ErrStorageFailed(name, err)
	}

	reader := bytes.NewReader(raw)
	_, err = m.client.PutObject(ctx, m.bucket, name, reader, int64(len(raw)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return "", apperrors.ErrStorageFailed(name, err)
	}

	if m.publicURL != "" {
		return fmt.Sprintf("%s/%s/%s", m.publicURL, m.bucket, name), nil
	}
	return fmt.Sprintf("%s/%s/%s", m.client.EndpointURL().String(), m.bucket, name), nil
}

// ListArtifacts lists stored artifact names under a prefix
func (m *MinIOClient) ListArtifacts(ctx context.Context, prefix string) ([]string, error) {
	var names []string

	objectCh := m.client.ListObjects(ctx, m.bucket, minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	})

	for object := range objectCh {
		if object.Err != nil {
			return nil, apperrors.ErrStorageFailed(prefix, object.Err)
		}
		names = append(names, object.Key)
	}

	return names, nil
}
