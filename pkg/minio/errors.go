package minio

import (
	"errors"
	"fmt"

	"github.com/minio/minio-go/v7"
)

// StorageError describes a failed MinIO operation.
type StorageError struct {
	Code      string
	Message   string
	Operation string
	Cause     error
}

func (e *StorageError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("minio %s: %s: %v", e.Operation, e.Message, e.Cause)
	}
	return fmt.Sprintf("minio %s: %s", e.Operation, e.Message)
}

func (e *StorageError) Unwrap() error { return e.Cause }

func NewInvalidInputError(msg string) *StorageError {
	return &StorageError{Code: ErrCodeInvalidInput, Message: msg, Operation: "validate"}
}

// IsNotFound reports whether err is a missing bucket or object.
func IsNotFound(err error) bool {
	var se *StorageError
	if !errors.As(err, &se) {
		return false
	}
	return se.Code == ErrCodeBucketNotFound || se.Code == ErrCodeObjectNotFound
}

func handleMinIOError(err error, operation string) error {
	if err == nil {
		return nil
	}
	resp := minio.ToErrorResponse(err)
	switch resp.Code {
	case "NoSuchBucket":
		return &StorageError{Code: ErrCodeBucketNotFound, Message: "bucket not found", Operation: operation, Cause: err}
	case "NoSuchKey":
		return &StorageError{Code: ErrCodeObjectNotFound, Message: "object not found", Operation: operation, Cause: err}
	case "AccessDenied":
		return &StorageError{Code: ErrCodePermission, Message: "access denied", Operation: operation, Cause: err}
	default:
		return &StorageError{Code: ErrCodeConnection, Message: "operation failed", Operation: operation, Cause: err}
	}
}
