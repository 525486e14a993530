package jwt

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"tweet-insights-srv/pkg/scope"
)

// Verify parses an HS256 token and returns its payload. Tokens from another issuer are rejected
// when an issuer is configured.
func (m *managerImpl) Verify(tokenString string) (scope.Payload, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
	}
	if m.issuer != "" {
		opts = append(opts, jwt.WithIssuer(m.issuer))
	}

	var payload scope.Payload
	token, err := jwt.ParseWithClaims(tokenString, &payload, func(*jwt.Token) (interface{}, error) {
		return m.secretKey, nil
	}, opts...)
	if err != nil {
		return scope.Payload{}, fmt.Errorf("failed to parse token: %w", err)
	}
	if !token.Valid {
		return scope.Payload{}, fmt.Errorf("invalid token")
	}
	return payload, nil
}

func (m *managerImpl) CreateToken(payload scope.Payload) (string, error) {
	now := m.now()
	if payload.IssuedAt == nil {
		payload.IssuedAt = jwt.NewNumericDate(now)
	}
	if payload.ExpiresAt == nil {
		payload.ExpiresAt = jwt.NewNumericDate(now.Add(m.ttl))
	}
	if payload.Issuer == "" {
		payload.Issuer = m.issuer
	}
	if payload.Subject == "" {
		payload.Subject = payload.UserID
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, payload).SignedString(m.secretKey)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}
