package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNutritionLogValidateCollectsAllViolations(t *testing.T) {
	log := NutritionLog{
		FoodName: "   ",
		MealType: "brunch",
		Calories: -1,
		Protein:  -1,
	}

	err := log.Validate()

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Violations, 4)
	assert.Contains(t, err.Error(), "foodName is required")
	assert.Contains(t, err.Error(), "brunch")
}

func TestNutritionLogValidateDefaults(t *testing.T) {
	log := NutritionLog{FoodName: "Apple"}

	require.NoError(t, log.Validate())
	assert.Equal(t, "100g", log.ServingSize)
	assert.Equal(t, MealSnack, log.MealType)
}

func TestWorkoutLogValidate(t *testing.T) {
	log := WorkoutLog{ExerciseName: "Squat"}
	require.NoError(t, log.Validate())
	assert.Equal(t, "body_only", log.Equipment)

	bad := WorkoutLog{Difficulty: "impossible", Sets: -1}
	err := bad.Validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Violations, 3)
}

func TestProgressEntryValidate(t *testing.T) {
	require.NoError(t, (&ProgressEntry{Weight: 70}).Validate())

	err := (&ProgressEntry{Weight: 0, BodyFat: -1}).Validate()
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Len(t, verr.Violations, 2)
}
