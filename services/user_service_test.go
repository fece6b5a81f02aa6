package services

import (
	"context"
	"errors"
	"testing"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegister(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Register(context.Background(), "Alice", "  Alice@Example.COM ", "secret123", 0, nil)

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, 170.0, user.Height)
	assert.True(t, user.Notifications)
	assert.NotEqual(t, "secret123", user.Password)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "secret123", 175, nil)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), "Other Alice", "ALICE@example.com", "different", 160, nil)
	assert.True(t, errors.Is(err, models.ErrDuplicateEmail))

	var count int64
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestAuthenticate(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "secret123", 175, nil)
	require.NoError(t, err)

	user, token, err := svc.Authenticate(context.Background(), "ALICE@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.NotEmpty(t, token)

	_, _, err = svc.Authenticate(context.Background(), "alice@example.com", "wrong-password")
	assert.Error(t, err)

	_, _, err = svc.Authenticate(context.Background(), "nobody@example.com", "secret123")
	assert.Error(t, err)
}

func TestUpdateProfileAllowList(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	user, err := svc.Register(context.Background(), "Alice", "alice@example.com", "secret123", 175, nil)
	require.NoError(t, err)

	name := "Alice B"
	goals := models.Goals{DailyCalories: 2000, DailyProtein: 120}
	notifications := false

	updated, err := svc.UpdateProfile(context.Background(), user.ID, ProfileInput{
		Name:          &name,
		Goals:         &goals,
		Notifications: &notifications,
	})

	require.NoError(t, err)
	assert.Equal(t, "Alice B", updated.Name)
	assert.Equal(t, 2000.0, updated.Goals.DailyCalories)
	assert.False(t, updated.Notifications)
	// untouched fields survive
	assert.Equal(t, "alice@example.com", updated.Email)
	assert.Equal(t, 175.0, updated.Height)
}

func TestUpdateProfileEmailConflict(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "secret123", 175, nil)
	require.NoError(t, err)
	bob, err := svc.Register(context.Background(), "Bob", "bob@example.com", "secret123", 180, nil)
	require.NoError(t, err)

	taken := "alice@example.com"
	_, err = svc.UpdateProfile(context.Background(), bob.ID, ProfileInput{Email: &taken})
	assert.True(t, errors.Is(err, models.ErrDuplicateEmail))
}

func TestUpdateProfileUnknownUser(t *testing.T) {
	db := newTestDB(t)
	svc := NewUserService(db)

	_, err := svc.UpdateProfile(context.Background(), 42, ProfileInput{})
	assert.True(t, errors.Is(err, models.ErrNotFound))
}
