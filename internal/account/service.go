package account

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"flightbooking/internal/apperr"
	"flightbooking/internal/model"
	"flightbooking/internal/store"
	"flightbooking/pkg/idgen"
)

// Service manages user profiles and feedback. Credentials and token issuance
// live in the auth package; this service never sees plaintext passwords.
type Service struct {
	store store.Store
	ids   idgen.Generator
}

func NewService(s store.Store, ids idgen.Generator) *Service {
	return &Service{store: s, ids: ids}
}

func (s *Service) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.store.ListUsers(ctx)
}

func (s *Service) GetUser(ctx context.Context, id int64) (*model.User, error) {
	user, err := s.store.GetUser(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.NotFound("no user with id %d found", id)
	}
	return user, err
}

// AddUser persists a user record with an already-hashed password. Email and
// phone must be unique across users.
func (s *Service) AddUser(ctx context.Context, user *model.User) error {
	if user == nil {
		return apperr.Validation("user cannot be nil")
	}
	if user.Email == "" {
		return apperr.Validation("user email is required")
	}
	if !user.Role.Valid() {
		return apperr.Validation("unknown role: %s", user.Role)
	}

	all, err := s.store.ListUsers(ctx)
	if err != nil {
		return fmt.Errorf("failed to list users: %w", err)
	}
	for _, existing := range all {
		if existing.UserID == user.UserID {
			return apperr.IllegalState("user with id %d already exists", user.UserID)
		}
		if strings.EqualFold(existing.Email, user.Email) {
			return apperr.Validation("email %s is already in use", user.Email)
		}
		if user.Phone != "" && existing.Phone == user.Phone {
			return apperr.Validation("phone %s is already in use", user.Phone)
		}
	}

	if user.UserID == 0 {
		user.UserID = s.ids.NextID()
	}
	if user.CreatedAt.IsZero() {
		user.CreatedAt = time.Now().UTC()
	}
	return s.store.SaveUser(ctx, user)
}

// RemoveUser deletes the user; the store cascades the delete to the user's
// bookings (and through them, their passengers).
func (s *Service) RemoveUser(ctx context.Context, id int64) error {
	err := s.store.DeleteUser(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound("no user with id %d found", id)
	}
	return err
}

func (s *Service) ListFeedback(ctx context.Context) ([]*model.Feedback, error) {
	return s.store.ListFeedback(ctx)
}

func (s *Service) GetFeedback(ctx context.Context, id int64) (*model.Feedback, error) {
	feedback, err := s.store.GetFeedback(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, apperr.NotFound("no feedback with id %d found", id)
	}
	return feedback, err
}

func (s *Service) AddFeedback(ctx context.Context, feedback *model.Feedback) error {
	if feedback == nil {
		return apperr.Validation("feedback cannot be nil")
	}
	if err := feedback.Validate(); err != nil {
		return apperr.Validation("invalid feedback: %s", err.Error())
	}

	if _, err := s.store.GetUser(ctx, feedback.UserID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return apperr.NotFound("no user with id %d found", feedback.UserID)
		}
		return fmt.Errorf("failed to load user %d: %w", feedback.UserID, err)
	}

	if feedback.FeedbackID == 0 {
		feedback.FeedbackID = s.ids.NextID()
	}
	if feedback.CreatedAt.IsZero() {
		feedback.CreatedAt = time.Now().UTC()
	}
	return s.store.SaveFeedback(ctx, feedback)
}

func (s *Service) RemoveFeedback(ctx context.Context, id int64) error {
	err := s.store.DeleteFeedback(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return apperr.NotFound("no feedback with id %d found", id)
	}
	return err
}
