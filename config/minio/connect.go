package minio

import (
	"context"
	"fmt"

	"tweet-insights-srv/config"
	"tweet-insights-srv/pkg/minio"
)

// Connect creates a MinIO client and makes sure the configured bucket exists.
func Connect(ctx context.Context, cfg config.MinIOConfig) (minio.MinIO, error) {
	client, err := minio.NewMinIO(minio.MinIOConfig{
		Endpoint:  cfg.Endpoint,
		AccessKey: cfg.AccessKey,
		SecretKey: cfg.SecretKey,
		UseSSL:    cfg.UseSSL,
		Region:    cfg.Region,
		Bucket:    cfg.Bucket,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize MinIO client: %w", err)
	}

	if err := client.EnsureBucket(ctx, cfg.Bucket); err != nil {
		return nil, fmt.Errorf("failed to ensure MinIO bucket %s: %w", cfg.Bucket, err)
	}

	return client, nil
}
