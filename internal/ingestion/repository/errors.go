package repository

import "errors"

var ErrRunNotFound = errors.New("repository: ingestion run not found")
