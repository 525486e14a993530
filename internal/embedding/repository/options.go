package repository

import "time"

type GetOptions struct {
	Key string
}

// SaveOptions stores Vector under Key. Zero TTL falls back to the repository default.
type SaveOptions struct {
	Key    string
	Vector []float32
	TTL    time.Duration
}
