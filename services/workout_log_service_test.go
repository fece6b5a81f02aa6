package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkoutLogCreateDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkoutLogService(db)
	user := seedUser(t, db, "a@example.com", 175)

	entry, err := svc.Create(context.Background(), user.ID, &models.WorkoutLog{
		ExerciseName: "Push-up",
		Sets:         3,
		Reps:         15,
	})

	require.NoError(t, err)
	assert.Equal(t, user.ID, entry.UserID)
	assert.Equal(t, "body_only", entry.Equipment)
	assert.False(t, entry.Date.IsZero())
}

func TestWorkoutLogCreateInvalidDifficulty(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkoutLogService(db)
	user := seedUser(t, db, "a@example.com", 175)

	_, err := svc.Create(context.Background(), user.ID, &models.WorkoutLog{
		ExerciseName: "Push-up",
		Difficulty:   "impossible",
	})

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
}

func TestWorkoutLogWindowFilter(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkoutLogService(db)
	user := seedUser(t, db, "a@example.com", 175)

	now := time.Now().UTC()
	_, err := svc.Create(context.Background(), user.ID, &models.WorkoutLog{ExerciseName: "Squat", Date: now})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), user.ID, &models.WorkoutLog{ExerciseName: "Old Squat", Date: now.AddDate(0, 0, -10)})
	require.NoError(t, err)

	recent, err := svc.List(context.Background(), user.ID, LastNDays(7), 0)
	require.NoError(t, err)
	require.Len(t, recent, 1)
	assert.Equal(t, "Squat", recent[0].ExerciseName)
}

func TestWorkoutLogDeleteOwned(t *testing.T) {
	db := newTestDB(t)
	svc := NewWorkoutLogService(db)
	alice := seedUser(t, db, "alice@example.com", 175)
	bob := seedUser(t, db, "bob@example.com", 180)

	entry, err := svc.Create(context.Background(), alice.ID, &models.WorkoutLog{ExerciseName: "Squat"})
	require.NoError(t, err)

	err = svc.DeleteOwned(context.Background(), entry.ID, bob.ID)
	assert.True(t, errors.Is(err, models.ErrNotFound))

	require.NoError(t, svc.DeleteOwned(context.Background(), entry.ID, alice.ID))
}
