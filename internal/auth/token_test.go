package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProcessor(t *testing.T, expires time.Duration) *TokenProcessor {
	t.Helper()

	processor, err := NewTokenProcessor(TokenOptions{
		Secret:    "test-secret",
		Expires:   expires,
		Algorithm: "HS256",
	})
	require.NoError(t, err)

	return processor
}

func TestNewTokenProcessor_AlgorithmSet(t *testing.T) {
	t.Parallel()

	tests := []struct {
		algorithm string
		wantErr   bool
	}{
		{"HS256", false},
		{"HS384", false},
		{"HS512", false},
		{"RS256", true},
		{"RS512", true},
		{"none", true},
		{"HS999", true},
		{"", true},
	}

	for _, tt := range tests {
		t.Run(tt.algorithm, func(t *testing.T) {
			_, err := NewTokenProcessor(TokenOptions{
				Secret:    "k",
				Expires:   time.Hour,
				Algorithm: tt.algorithm,
			})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGenerateAndValidate_RoundTrip(t *testing.T) {
	t.Parallel()

	processor := newTestProcessor(t, time.Hour)

	token, err := processor.GenerateToken(42)
	require.NoError(t, err)

	userID, err := processor.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, 42, userID)
}

func TestValidateToken_Failures(t *testing.T) {
	t.Parallel()

	processor := newTestProcessor(t, time.Hour)

	expired := newTestProcessor(t, -time.Second)
	expiredToken, err := expired.GenerateToken(1)
	require.NoError(t, err)

	other, err := NewTokenProcessor(TokenOptions{Secret: "other-secret", Expires: time.Hour, Algorithm: "HS256"})
	require.NoError(t, err)
	foreignToken, err := other.GenerateToken(1)
	require.NoError(t, err)

	badSubject, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "not-a-number",
		IssuedAt:  jwt.NewNumericDate(time.Now().UTC()),
		ExpiresAt: jwt.NewNumericDate(time.Now().UTC().Add(time.Hour)),
	}).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"expired", expiredToken},
		{"wrong secret", foreignToken},
		{"malformed", "not.a.jwt"},
		{"empty", ""},
		{"non-numeric subject", badSubject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := processor.ValidateToken(tt.token)
			require.Error(t, err)

			var unauthenticated UnauthenticatedError
			require.ErrorAs(t, err, &unauthenticated)
			assert.Equal(t, "Invalid credentials", unauthenticated.Message,
				"every validation failure must collapse to the same generic message")
		})
	}
}
