package minio

import (
	"context"
	"io"
	"net/http"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// MinIO is the composite interface embedding all sub-interfaces.
type MinIO interface {
	Connection
	BucketManager
	FileUploader
	FileDownloader
}

// Connection defines interface for MinIO connection operations.
type Connection interface {
	HealthCheck(ctx context.Context) error
	// DefaultBucket is the bucket named in MinIOConfig.
	DefaultBucket() string
}

// BucketManager defines operations for managing buckets.
type BucketManager interface {
	BucketExists(ctx context.Context, bucketName string) (bool, error)
	// EnsureBucket creates the bucket when it does not exist.
	EnsureBucket(ctx context.Context, bucketName string) error
}

// FileUploader defines methods for uploading files.
type FileUploader interface {
	UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error)
}

// FileDownloader defines methods for downloading files.
type FileDownloader interface {
	// DownloadFile returns the object body. The caller must close it.
	DownloadFile(ctx context.Context, req *DownloadRequest) (io.ReadCloser, error)
}

// NewMinIO creates a new MinIO client. Returns the MinIO interface.
func NewMinIO(cfg MinIOConfig) (MinIO, error) {
	cfg, err := normalizeConfig(cfg)
	if err != nil {
		return nil, err
	}

	transport := &http.Transport{
		MaxIdleConns:        maxIdleConns,
		MaxIdleConnsPerHost: maxIdleConnsPerHost,
		IdleConnTimeout:     idleConnTimeout,
		DisableCompression:  disableCompression,
		DisableKeepAlives:   disableKeepAlives,
	}

	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:     credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure:    cfg.UseSSL,
		Region:    cfg.Region,
		Transport: transport,
	})
	if err != nil {
		return nil, err
	}

	return &implMinIO{minioClient: client, config: cfg}, nil
}
