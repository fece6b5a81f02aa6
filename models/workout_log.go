package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	DifficultyBeginner     = "beginner"
	DifficultyIntermediate = "intermediate"
	DifficultyExpert       = "expert"
)

// WorkoutLog is one logged exercise session.
type WorkoutLog struct {
	gorm.Model
	UserID         uint      `gorm:"index:idx_workout_user_date;not null" json:"userId"`
	ExerciseName   string    `gorm:"not null" json:"exerciseName"`
	Muscle         string    `json:"muscle"`
	Difficulty     string    `json:"difficulty"`
	Equipment      string    `json:"equipment"`
	Type           string    `json:"type"`
	Instructions   string    `json:"instructions"`
	Sets           int       `json:"sets"`
	Reps           int       `json:"reps"`
	Duration       float64   `json:"duration"` // minutes
	CaloriesBurned float64   `json:"caloriesBurned"`
	Date           time.Time `gorm:"index:idx_workout_user_date" json:"date"`
	Notes          string    `json:"notes"`
}

// Validate normalizes defaults and reports every violated field at once.
func (w *WorkoutLog) Validate() error {
	var violations []string

	w.ExerciseName = strings.TrimSpace(w.ExerciseName)
	if w.ExerciseName == "" {
		violations = append(violations, "exerciseName is required")
	}

	switch w.Difficulty {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyExpert, "":
	default:
		violations = append(violations, fmt.Sprintf("difficulty %q is not a valid difficulty", w.Difficulty))
	}

	if w.Equipment == "" {
		w.Equipment = "body_only"
	}

	if w.Sets < 0 {
		violations = append(violations, "sets must not be negative")
	}
	if w.Reps < 0 {
		violations = append(violations, "reps must not be negative")
	}
	if w.Duration < 0 {
		violations = append(violations, "duration must not be negative")
	}
	if w.CaloriesBurned < 0 {
		violations = append(violations, "caloriesBurned must not be negative")
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}
