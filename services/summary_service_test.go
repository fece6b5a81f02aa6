package services

import (
	"context"
	"testing"
	"time"

	"backend/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newSummaryFixture(t *testing.T) (*gorm.DB, *SummaryService, *models.User) {
	t.Helper()
	db := newTestDB(t)
	nutrition := NewNutritionLogService(db)
	workouts := NewWorkoutLogService(db)
	progress := NewProgressService(db)
	svc := NewSummaryService(nutrition, workouts, progress)
	user := seedUser(t, db, "a@example.com", 175)
	return db, svc, user
}

func TestTodayNutrition(t *testing.T) {
	db, svc, user := newSummaryFixture(t)
	logs := NewNutritionLogService(db)

	now := time.Now().UTC()
	_, err := logs.Create(context.Background(), user.ID, &models.NutritionLog{FoodName: "Eggs", Calories: 155, Protein: 13, Date: now})
	require.NoError(t, err)
	_, err = logs.Create(context.Background(), user.ID, &models.NutritionLog{FoodName: "Toast", Calories: 80, Carbs: 15, Date: now})
	require.NoError(t, err)
	// yesterday's entry must not count
	_, err = logs.Create(context.Background(), user.ID, &models.NutritionLog{FoodName: "Pasta", Calories: 400, Date: now.AddDate(0, 0, -1)})
	require.NoError(t, err)

	today, err := svc.TodayNutrition(context.Background(), user.ID)

	require.NoError(t, err)
	assert.Len(t, today.Entries, 2)
	assert.InDelta(t, 235, today.Totals.Calories, 1e-9)
	assert.InDelta(t, 13, today.Totals.Protein, 1e-9)
}

func TestNutritionSummaryWindow(t *testing.T) {
	db, svc, user := newSummaryFixture(t)
	logs := NewNutritionLogService(db)

	now := time.Now().UTC()
	_, err := logs.Create(context.Background(), user.ID, &models.NutritionLog{FoodName: "Recent", Calories: 300, Date: now})
	require.NoError(t, err)
	_, err = logs.Create(context.Background(), user.ID, &models.NutritionLog{FoodName: "Old", Calories: 900, Date: now.AddDate(0, 0, -10)})
	require.NoError(t, err)

	days, err := svc.NutritionSummary(context.Background(), user.ID, 7)

	require.NoError(t, err)
	require.Len(t, days, 1)
	assert.InDelta(t, 300, days[0].TotalCalories, 1e-9)
}

func TestProgressPeriodSummary(t *testing.T) {
	db, svc, user := newSummaryFixture(t)
	progress := NewProgressService(db)

	now := time.Now().UTC()
	for i, w := range []float64{80, 79, 78} {
		_, err := progress.Create(context.Background(), user.ID, &models.ProgressEntry{
			Weight: w,
			Date:   now.AddDate(0, 0, -4+i*2),
		})
		require.NoError(t, err)
	}
	// outside the weekly window, inside the monthly one
	_, err := progress.Create(context.Background(), user.ID, &models.ProgressEntry{Weight: 85, Date: now.AddDate(0, 0, -20)})
	require.NoError(t, err)

	weekly, err := svc.ProgressPeriodSummary(context.Background(), user.ID, "weekly")
	require.NoError(t, err)
	assert.Equal(t, "weekly", weekly.Period)
	assert.Equal(t, 3, weekly.Entries)
	assert.Equal(t, 80.0, *weekly.StartWeight)
	assert.Equal(t, 78.0, *weekly.EndWeight)
	assert.Equal(t, -2.0, weekly.WeightChange)

	monthly, err := svc.ProgressPeriodSummary(context.Background(), user.ID, "monthly")
	require.NoError(t, err)
	assert.Equal(t, "monthly", monthly.Period)
	assert.Equal(t, 4, monthly.Entries)
	assert.Equal(t, 85.0, *monthly.StartWeight)
	assert.Equal(t, -7.0, monthly.WeightChange)

	// anything unrecognized normalizes to weekly
	other, err := svc.ProgressPeriodSummary(context.Background(), user.ID, "yearly")
	require.NoError(t, err)
	assert.Equal(t, "weekly", other.Period)
}

func TestDashboard(t *testing.T) {
	db, svc, user := newSummaryFixture(t)
	logs := NewNutritionLogService(db)
	workouts := NewWorkoutLogService(db)

	now := time.Now().UTC()
	_, err := logs.Create(context.Background(), user.ID, &models.NutritionLog{FoodName: "Eggs", Calories: 155, Date: now})
	require.NoError(t, err)
	_, err = workouts.Create(context.Background(), user.ID, &models.WorkoutLog{ExerciseName: "Squat", Muscle: "quadriceps", Duration: 30, Date: now})
	require.NoError(t, err)

	overview := svc.Dashboard(context.Background(), user.ID)

	require.NotNil(t, overview.Today)
	assert.Len(t, overview.Today.Entries, 1)
	assert.Equal(t, "weekly", overview.WeekProgress.Period)
	require.Len(t, overview.WeekWorkouts, 1)
	assert.Equal(t, []string{"quadriceps"}, overview.WeekWorkouts[0].Muscles)
}
