package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wqtc-api/internal/domain"
)

func newTestManager(t *testing.T) *TokenManager {
	t.Helper()
	m, err := NewTokenManager("test-secret", "HS256", time.Hour)
	require.NoError(t, err)
	return m
}

func TestNewTokenManager(t *testing.T) {
	_, err := NewTokenManager("", "HS256", time.Hour)
	assert.Error(t, err)

	_, err = NewTokenManager("secret", "RS256", time.Hour)
	assert.Error(t, err)

	_, err = NewTokenManager("secret", "HS256", 0)
	assert.Error(t, err)

	m, err := NewTokenManager("secret", "HS512", 7*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, m.TTL())
}

func TestTokenManager_RoundTrip(t *testing.T) {
	m := newTestManager(t)
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	m.now = func() time.Time { return fixed }

	token, expiresAt, err := m.Issue(&domain.User{Email: "admin@wqtc.org", Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, fixed.Add(time.Hour), expiresAt)

	claims, err := m.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "admin@wqtc.org", claims.Subject)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestTokenManager_Verify_Rejects(t *testing.T) {
	m := newTestManager(t)
	token, _, err := m.Issue(&domain.User{Email: "user@wqtc.org", Role: domain.RoleUser})
	require.NoError(t, err)

	t.Run("expired", func(t *testing.T) {
		m.now = func() time.Time { return time.Now().Add(2 * time.Hour) }
		defer func() { m.now = time.Now }()

		_, err := m.Verify(token)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("wrong secret", func(t *testing.T) {
		other, err := NewTokenManager("another-secret", "HS256", time.Hour)
		require.NoError(t, err)

		_, err = other.Verify(token)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("tampered", func(t *testing.T) {
		parts := strings.Split(token, ".")
		require.Len(t, parts, 3)
		_, err := m.Verify(parts[0] + "." + parts[1] + ".AAAA")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := m.Verify("not-a-jwt")
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})

	t.Run("no subject", func(t *testing.T) {
		raw := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
			Role: domain.RoleAdmin,
			RegisteredClaims: jwt.RegisteredClaims{
				ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
			},
		})
		signed, err := raw.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		_, err = m.Verify(signed)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
	})
}

func TestPassword(t *testing.T) {
	hash, err := HashPassword("s3cret")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret", hash)

	ok, err := CheckPassword(hash, "s3cret")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = CheckPassword(hash, "wrong")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = CheckPassword("not-a-bcrypt-hash", "s3cret")
	assert.Error(t, err)
}
