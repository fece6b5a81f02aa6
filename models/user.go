package models

import (
	"gorm.io/gorm"
)

// Goals holds the user's daily fitness targets. Stored flattened on the
// users row so a profile read is a single query.
type Goals struct {
	DailyCalories float64 `json:"dailyCalories"`
	DailyProtein  float64 `json:"dailyProtein"`
	TargetWeight  float64 `json:"targetWeight"`
	DailySteps    float64 `json:"dailySteps"`
}

type User struct {
	gorm.Model
	Name          string  `json:"name"`
	Email         string  `gorm:"uniqueIndex;not null" json:"email"`
	Password      string  `gorm:"not null" json:"-"`
	Height        float64 `gorm:"default:170" json:"height"` // centimeters
	Avatar        string  `json:"avatar"`
	Goals         Goals   `gorm:"embedded;embeddedPrefix:goal_" json:"goals"`
	Notifications bool    `gorm:"default:true" json:"notifications"`
}
