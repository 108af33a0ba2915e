package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestPasswordHasher(t *testing.T) {
	hasher := NewPasswordHasher(bcrypt.MinCost)

	hash, err := hasher.Hash("admin123")
	require.NoError(t, err)
	assert.NotEqual(t, "admin123", hash)

	assert.True(t, hasher.Compare(hash, "admin123"))
	assert.False(t, hasher.Compare(hash, "admin124"))
	assert.False(t, hasher.Compare("not-a-hash", "admin123"))
}

func TestTokenManager_RoundTrip(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)
	userID := uuid.New()

	signed, err := tokens.Issue(userID, "admin@fooddelivery.com", true)
	require.NoError(t, err)

	session, err := tokens.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, userID, session.UserID)
	assert.Equal(t, "admin@fooddelivery.com", session.Email)
	assert.True(t, session.Admin)
}

func TestTokenManager_RejectsBadTokens(t *testing.T) {
	tokens := NewTokenManager("test-secret", time.Hour)

	tests := []struct {
		name  string
		token string
	}{
		{name: "Garbage", token: "not-a-token"},
		{name: "Empty", token: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tokens.Verify(tt.token)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}

	t.Run("Wrong secret", func(t *testing.T) {
		other := NewTokenManager("other-secret", time.Hour)
		signed, err := other.Issue(uuid.New(), "user@example.com", false)
		require.NoError(t, err)

		_, err = tokens.Verify(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("Expired", func(t *testing.T) {
		expired := NewTokenManager("test-secret", -time.Minute)
		signed, err := expired.Issue(uuid.New(), "user@example.com", false)
		require.NoError(t, err)

		_, err = tokens.Verify(signed)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestUserSession_AsAdmin(t *testing.T) {
	plain := UserSession{UserID: uuid.New()}
	_, ok := plain.AsAdmin()
	assert.False(t, ok)

	elevated := UserSession{UserID: uuid.New(), Admin: true}
	admin, ok := elevated.AsAdmin()
	require.True(t, ok)
	assert.Equal(t, elevated.UserID, admin.UserID)
}
