package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tweet-insights-srv/pkg/scope"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func TestNew_ShortSecret(t *testing.T) {
	_, err := New(Config{SecretKey: "short"})
	assert.Error(t, err)
}

func TestCreateVerify(t *testing.T) {
	m, err := New(Config{SecretKey: testSecret, Issuer: "tweet-insights"})
	require.NoError(t, err)

	token, err := m.CreateToken(scope.Payload{UserID: "u1", Username: "ops", Role: "admin"})
	require.NoError(t, err)

	p, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "u1", p.UserID)
	assert.Equal(t, "u1", p.Subject)
	assert.Equal(t, "admin", p.Role)
}

func TestVerify_Rejects(t *testing.T) {
	m, err := New(Config{SecretKey: testSecret, Issuer: "tweet-insights"})
	require.NoError(t, err)

	other, err := New(Config{SecretKey: testSecret + "x", Issuer: "tweet-insights"})
	require.NoError(t, err)
	forged, err := other.CreateToken(scope.Payload{UserID: "u1"})
	require.NoError(t, err)
	_, err = m.Verify(forged)
	assert.Error(t, err, "wrong key")

	wrongIssuer, err := New(Config{SecretKey: testSecret, Issuer: "someone-else"})
	require.NoError(t, err)
	tok, err := wrongIssuer.CreateToken(scope.Payload{UserID: "u1"})
	require.NoError(t, err)
	_, err = m.Verify(tok)
	assert.Error(t, err, "wrong issuer")

	impl := m.(*managerImpl)
	expired, err := m.CreateToken(scope.Payload{UserID: "u1"})
	require.NoError(t, err)
	impl.now = func() time.Time { return time.Now().Add(48 * time.Hour) }
	_, err = m.Verify(expired)
	assert.Error(t, err, "expired")
}
