package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

const (
	MealBreakfast = "breakfast"
	MealLunch     = "lunch"
	MealDinner    = "dinner"
	MealSnack     = "snack"
)

// NutritionLog is one logged food consumption event. Entries are
// immutable after creation apart from deletion by their owner.
type NutritionLog struct {
	gorm.Model
	UserID      uint      `gorm:"index:idx_nutrition_user_date;not null" json:"userId"`
	FoodName    string    `gorm:"not null" json:"foodName"`
	Calories    float64   `json:"calories"`
	Protein     float64   `json:"protein"`
	Fat         float64   `json:"fat"`
	Carbs       float64   `json:"carbs"`
	Fiber       float64   `json:"fiber"`
	ServingSize string    `json:"servingSize"`
	MealType    string    `json:"mealType"`
	Date        time.Time `gorm:"index:idx_nutrition_user_date" json:"date"`
	Notes       string    `json:"notes"`
}

// Validate normalizes defaults and reports every violated field at once.
func (n *NutritionLog) Validate() error {
	var violations []string

	n.FoodName = strings.TrimSpace(n.FoodName)
	if n.FoodName == "" {
		violations = append(violations, "foodName is required")
	}

	if n.ServingSize == "" {
		n.ServingSize = "100g"
	}
	if n.MealType == "" {
		n.MealType = MealSnack
	}
	switch n.MealType {
	case MealBreakfast, MealLunch, MealDinner, MealSnack:
	default:
		violations = append(violations, fmt.Sprintf("mealType %q is not a valid meal type", n.MealType))
	}

	for _, f := range []struct {
		name  string
		value float64
	}{
		{"calories", n.Calories},
		{"protein", n.Protein},
		{"fat", n.Fat},
		{"carbs", n.Carbs},
		{"fiber", n.Fiber},
	} {
		if f.value < 0 {
			violations = append(violations, f.name+" must not be negative")
		}
	}

	if len(violations) > 0 {
		return &ValidationError{Violations: violations}
	}
	return nil
}
