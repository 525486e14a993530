package minio

import (
	"context"
	"io"
	"time"

	"github.com/minio/minio-go/v7"
)

func (m *implMinIO) HealthCheck(ctx context.Context) error {
	_, err := m.minioClient.BucketExists(ctx, m.config.Bucket)
	return handleMinIOError(err, "health_check")
}

func (m *implMinIO) DefaultBucket() string {
	return m.config.Bucket
}

func (m *implMinIO) BucketExists(ctx context.Context, bucketName string) (bool, error) {
	if err := validateBucketName(bucketName); err != nil {
		return false, err
	}
	exists, err := m.minioClient.BucketExists(ctx, bucketName)
	if err != nil {
		return false, handleMinIOError(err, "check_bucket_exists")
	}
	return exists, nil
}

func (m *implMinIO) EnsureBucket(ctx context.Context, bucketName string) error {
	exists, err := m.BucketExists(ctx, bucketName)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	err = m.minioClient.MakeBucket(ctx, bucketName, minio.MakeBucketOptions{Region: m.config.Region})
	return handleMinIOError(err, "create_bucket")
}

func (m *implMinIO) UploadFile(ctx context.Context, req *UploadRequest) (*FileInfo, error) {
	if err := validateUploadRequest(req); err != nil {
		return nil, err
	}
	opts := minio.PutObjectOptions{ContentType: req.ContentType, UserMetadata: req.Metadata}
	info, err := m.minioClient.PutObject(ctx, req.BucketName, req.ObjectName, req.Reader, req.Size, opts)
	if err != nil {
		return nil, handleMinIOError(err, "upload_file")
	}
	return &FileInfo{
		BucketName:   req.BucketName,
		ObjectName:   req.ObjectName,
		Size:         info.Size,
		ContentType:  req.ContentType,
		ETag:         info.ETag,
		LastModified: time.Now(),
		Metadata:     req.Metadata,
	}, nil
}

func (m *implMinIO) DownloadFile(ctx context.Context, req *DownloadRequest) (io.ReadCloser, error) {
	if err := validateDownloadRequest(req); err != nil {
		return nil, err
	}
	// GetObject is lazy; Stat surfaces a missing object before the caller starts reading.
	object, err := m.minioClient.GetObject(ctx, req.BucketName, req.ObjectName, minio.GetObjectOptions{})
	if err != nil {
		return nil, handleMinIOError(err, "download_file")
	}
	if _, err := object.Stat(); err != nil {
		_ = object.Close()
		return nil, handleMinIOError(err, "download_file")
	}
	return object, nil
}
