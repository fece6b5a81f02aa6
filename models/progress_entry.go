package models

import (
	"time"

	"gorm.io/gorm"
)

// ProgressEntry is one body-measurement snapshot. BMI is computed from
// the user's height when the entry is created and never recomputed, so
// it stays a faithful record even if the height changes later.
type ProgressEntry struct {
	gorm.Model
	UserID  uint      `gorm:"index:idx_progress_user_date;not null" json:"userId"`
	Weight  float64   `gorm:"not null" json:"weight"` // kilograms
	BMI     float64   `json:"bmi"`
	BodyFat float64   `json:"bodyFat"`
	Waist   float64   `json:"waist"`
	Date    time.Time `gorm:"index:idx_progress_user_date" json:"date"`
	Notes   string    `json:"notes"`
}

func (p *ProgressEntry) Validate() error {
	var violations []string

	if p.Weight <= 0 {
		violations = append(violations, "weight is required")
	}
	if p.BodyFat < 0 {
		violations = append(violations, "bodyFat must not be negative")
	}
	if p.Waist < 0 {
		violations = append(violations, "waist must not be negative")
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}
