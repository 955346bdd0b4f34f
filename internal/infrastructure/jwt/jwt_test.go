package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate_Success(t *testing.T) {
	s := New("super-secret")

	tok, err := s.GenerateJWT("u-123", "admin", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := s.ValidateToken(tok)
	require.NoError(t, err)
	require.NotNil(t, claims)

	assert.Equal(t, "u-123", claims.UserID)
	assert.Equal(t, "admin", claims.Role)
	require.NotNil(t, claims.ExpiresAt)
	assert.True(t, claims.ExpiresAt.Time.After(time.Now()))
}

func TestValidateToken_RejectsNonHS256(t *testing.T) {
	claims := Claims{UserID: "user-42", Role: "member"}
	tok := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	signed, err := tok.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	got, err := New("k1").ValidateToken(signed)
	require.Error(t, err)
	assert.EqualError(t, err, "invalid token")
	assert.Nil(t, got)
}

func TestValidateToken_Table(t *testing.T) {
	makeToken := func(secret string, exp time.Duration) string {
		tok, err := New(secret).GenerateJWT("user-42", "member", exp)
		require.NoError(t, err)
		return tok
	}

	tests := []struct {
		name   string
		secret string
		token  string
		ok     bool
	}{
		{name: "valid token", secret: "k1", token: makeToken("k1", 5*time.Minute), ok: true},
		{name: "signature mismatch", secret: "k2", token: makeToken("k1", 5*time.Minute)},
		{name: "expired token", secret: "k1", token: makeToken("k1", -1*time.Minute)},
		{name: "malformed token string", secret: "k1", token: "not-a-jwt"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			claims, err := New(tt.secret).ValidateToken(tt.token)
			if tt.ok {
				require.NoError(t, err)
				require.NotNil(t, claims)
				assert.Equal(t, "user-42", claims.UserID)
				assert.Equal(t, "member", claims.Role)
				return
			}
			require.Error(t, err)
			assert.EqualError(t, err, "invalid token")
			assert.Nil(t, claims)
		})
	}
}
