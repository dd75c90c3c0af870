package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"flightbooking/internal/model"
)

const testSecret = "test-secret-0123456789"

func TestAccessTokenRoundTrip(t *testing.T) {
	user := &model.User{UserID: 42, Email: "dave@gmail.com", Role: model.RoleUser}

	token, exp, err := NewAccessToken(testSecret, user, time.Hour)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := ParseAccessToken(testSecret, token)
	assert.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, model.RoleUser, claims.Role)
}

func TestParseAccessToken_Rejections(t *testing.T) {
	user := &model.User{UserID: 1, Role: model.RoleAdmin}

	t.Run("wrong secret", func(t *testing.T) {
		token, _, err := NewAccessToken(testSecret, user, time.Hour)
		assert.NoError(t, err)

		_, err = ParseAccessToken("other-secret", token)
		assert.Error(t, err)
	})

	t.Run("expired token", func(t *testing.T) {
		token, _, err := NewAccessToken(testSecret, user, -time.Minute)
		assert.NoError(t, err)

		_, err = ParseAccessToken(testSecret, token)
		assert.Error(t, err)
	})

	t.Run("garbage input", func(t *testing.T) {
		_, err := ParseAccessToken(testSecret, "not.a.token")
		assert.Error(t, err)
	})
}

func TestAccessToken_CarriesRole(t *testing.T) {
	admin := &model.User{UserID: 7, Role: model.RoleAdmin}

	token, _, err := NewAccessToken(testSecret, admin, time.Hour)
	assert.NoError(t, err)

	claims, err := ParseAccessToken(testSecret, token)
	assert.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, claims.Role)
}
