package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"flightbooking/internal/account"
	"flightbooking/internal/apperr"
	"flightbooking/internal/model"
	"flightbooking/internal/store"
	"flightbooking/pkg/logger"
)

type stubIDs struct {
	next int64
}

func (s *stubIDs) NextID() int64 {
	s.next++
	return s.next
}

func newTestService() *Service {
	records := store.NewMemory()
	accounts := account.NewService(records, &stubIDs{next: 1000})
	return NewService(records, accounts, testSecret, time.Hour, logger.NewZeroLog("test"))
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("creates a user and issues a token", func(t *testing.T) {
		svc := newTestService()

		resp, err := svc.Register(ctx, RegisterRequest{
			Email:    "dave@gmail.com",
			Password: "Dangerous2024",
		})

		assert.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "Bearer", resp.TokenType)
		assert.Equal(t, model.RoleUser, resp.User.Role)
		assert.NotZero(t, resp.User.UserID)
		// stored hash, not the plaintext
		assert.NotEqual(t, "Dangerous2024", resp.User.Password)

		claims, err := svc.Validate(resp.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, resp.User.UserID, claims.UserID)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		svc := newTestService()

		_, err := svc.Register(ctx, RegisterRequest{Email: "dave@gmail.com", Password: "Dangerous2024"})
		assert.NoError(t, err)

		_, err = svc.Register(ctx, RegisterRequest{Email: "Dave@Gmail.com", Password: "whatever123"})
		var appErr *apperr.AppError
		assert.ErrorAs(t, err, &appErr)
		assert.Equal(t, apperr.ErrorCodeValidation, appErr.Code)
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	svc := newTestService()

	_, err := svc.Register(ctx, RegisterRequest{Email: "dave@gmail.com", Password: "Dangerous2024"})
	assert.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		resp, err := svc.Login(ctx, LoginRequest{Email: "dave@gmail.com", Password: "Dangerous2024"})
		assert.NoError(t, err)
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("wrong password and unknown email fail identically", func(t *testing.T) {
		_, errWrongPass := svc.Login(ctx, LoginRequest{Email: "dave@gmail.com", Password: "nope"})
		_, errUnknown := svc.Login(ctx, LoginRequest{Email: "ghost@gmail.com", Password: "nope"})

		assert.Error(t, errWrongPass)
		assert.Error(t, errUnknown)
		assert.Equal(t, errWrongPass.Error(), errUnknown.Error())
	})
}
