package point

import "errors"

var (
	ErrUnknownCollection = errors.New("point: unknown collection")
	ErrEmptyVector       = errors.New("point: empty vector")
)
