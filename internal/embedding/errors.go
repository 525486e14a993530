package embedding

import "errors"

var (
	ErrEmptyText           = errors.New("embedding: empty text")
	ErrEmptyTexts          = errors.New("embedding: empty texts")
	ErrEmbedFailed         = errors.New("embedding: embed failed")
	ErrMismatchVectorCount = errors.New("embedding: mismatch vector count")
)
