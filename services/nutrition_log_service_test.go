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

func TestNutritionLogCreateDefaults(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionLogService(db)
	user := seedUser(t, db, "a@example.com", 175)

	entry, err := svc.Create(context.Background(), user.ID, &models.NutritionLog{
		FoodName: "  Oatmeal  ",
		Calories: 150,
	})

	require.NoError(t, err)
	assert.Equal(t, user.ID, entry.UserID)
	assert.Equal(t, "Oatmeal", entry.FoodName)
	assert.Equal(t, "100g", entry.ServingSize)
	assert.Equal(t, models.MealSnack, entry.MealType)
	assert.False(t, entry.Date.IsZero())
}

func TestNutritionLogCreateInvalid(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionLogService(db)
	user := seedUser(t, db, "a@example.com", 175)

	_, err := svc.Create(context.Background(), user.ID, &models.NutritionLog{
		FoodName: "",
		Calories: -10,
	})

	var verr *models.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Violations, 2)
}

func TestNutritionLogOwnershipIsolation(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionLogService(db)
	alice := seedUser(t, db, "alice@example.com", 175)
	bob := seedUser(t, db, "bob@example.com", 180)

	entry, err := svc.Create(context.Background(), alice.ID, &models.NutritionLog{FoodName: "Salad", Calories: 120})
	require.NoError(t, err)

	_, err = svc.GetOwned(context.Background(), entry.ID, bob.ID)
	assert.True(t, errors.Is(err, models.ErrNotFound))

	err = svc.DeleteOwned(context.Background(), entry.ID, bob.ID)
	assert.True(t, errors.Is(err, models.ErrNotFound))

	// still there for the owner
	got, err := svc.GetOwned(context.Background(), entry.ID, alice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Salad", got.FoodName)

	require.NoError(t, svc.DeleteOwned(context.Background(), entry.ID, alice.ID))
	err = svc.DeleteOwned(context.Background(), entry.ID, alice.ID)
	assert.True(t, errors.Is(err, models.ErrNotFound))
}

func TestNutritionLogListFilterAndLimit(t *testing.T) {
	db := newTestDB(t)
	svc := NewNutritionLogService(db)
	user := seedUser(t, db, "a@example.com", 175)

	today := time.Now().UTC()
	yesterday := today.AddDate(0, 0, -1)

	for i, d := range []time.Time{today, today.Add(-time.Hour), yesterday} {
		_, err := svc.Create(context.Background(), user.ID, &models.NutritionLog{
			FoodName: "Meal",
			Calories: float64(100 * (i + 1)),
			Date:     d,
		})
		require.NoError(t, err)
	}

	todayLogs, err := svc.List(context.Background(), user.ID, ExactDay(today), 0)
	require.NoError(t, err)
	assert.Len(t, todayLogs, 2)

	all, err := svc.List(context.Background(), user.ID, DateFilter{}, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	// newest first
	assert.False(t, all[0].Date.Before(all[1].Date))

	capped, err := svc.List(context.Background(), user.ID, DateFilter{}, 2)
	require.NoError(t, err)
	assert.Len(t, capped, 2)
}
