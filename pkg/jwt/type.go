package jwt

import "time"

// Config holds JWT manager configuration.
type Config struct {
	SecretKey string
	Issuer    string
	TTL       time.Duration
}

// managerImpl implements IManager.
type managerImpl struct {
	secretKey []byte
	issuer    string
	ttl       time.Duration
	now       func() time.Time
}
