package qdrant

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidConfig      = errors.New("invalid configuration")
	ErrCollectionNotFound = errors.New("collection not found")
	ErrInvalidVector      = errors.New("invalid vector")
	ErrInvalidPointID     = errors.New("invalid point ID")
	ErrEmptyCollection    = errors.New("collection name cannot be empty")
	ErrInvalidVectorSize  = errors.New("invalid vector size")
	ErrEmptyFacetKey      = errors.New("facet key cannot be empty")
)

// WrapError wraps an error with additional context
func WrapError(err error, msg string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", msg, err)
}
