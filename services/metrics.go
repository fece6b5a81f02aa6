package services

import (
	"sort"
	"time"

	"backend/models"
	"backend/utils"
)

// Pure aggregation over in-memory log entries. Nothing in this file
// touches the database; the stores fetch, these functions reduce.

// NutritionTotals is the field-wise sum over a set of nutrition logs.
type NutritionTotals struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Fat      float64 `json:"fat"`
	Carbs    float64 `json:"carbs"`
}

// DailyTotals sums each macro independently; entry order never matters.
func DailyTotals(entries []models.NutritionLog) NutritionTotals {
	var t NutritionTotals
	for _, e := range entries {
		t.Calories += e.Calories
		t.Protein += e.Protein
		t.Fat += e.Fat
		t.Carbs += e.Carbs
	}
	return t
}

// ProgressSummary aggregates progress entries over a rolling window.
// Start/end/latest are nil when there are no entries.
type ProgressSummary struct {
	Period       string   `json:"period"`
	Entries      int      `json:"entries"`
	StartWeight  *float64 `json:"startWeight"`
	EndWeight    *float64 `json:"endWeight"`
	WeightChange float64  `json:"weightChange"`
	AvgBMI       float64  `json:"avgBmi"`
	LatestBMI    *float64 `json:"latestBmi"`
}

// PeriodSummary computes start/end weight, weight change and BMI stats
// over the given entries. First and last are determined by entry date,
// not input order. The period label is carried through untouched.
func PeriodSummary(entries []models.ProgressEntry, period string) ProgressSummary {
	out := ProgressSummary{Period: period, Entries: len(entries)}
	if len(entries) == 0 {
		return out
	}

	sorted := make([]models.ProgressEntry, len(entries))
	copy(sorted, entries)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.Before(sorted[j].Date)
	})

	first := sorted[0]
	last := sorted[len(sorted)-1]
	startWeight := first.Weight
	endWeight := last.Weight
	latestBMI := last.BMI
	out.StartWeight = &startWeight
	out.EndWeight = &endWeight
	out.LatestBMI = &latestBMI
	out.WeightChange = utils.Round1(endWeight - startWeight)

	var bmiSum float64
	for _, e := range sorted {
		bmiSum += e.BMI
	}
	out.AvgBMI = utils.Round1(bmiSum / float64(len(sorted)))

	return out
}

// DayBucket is one UTC calendar day of aggregated entries.
type DayBucket struct {
	Day   string
	Count int
	Sums  map[string]float64
}

// BucketByDay groups entries by UTC calendar day and sums each named
// field within its bucket. Buckets come back sorted ascending by day.
func BucketByDay[T any](entries []T, date func(T) time.Time, fields map[string]func(T) float64) []DayBucket {
	byDay := make(map[string]*DayBucket)
	for _, e := range entries {
		key := dayKey(date(e))
		b := byDay[key]
		if b == nil {
			b = &DayBucket{Day: key, Sums: make(map[string]float64, len(fields))}
			byDay[key] = b
		}
		b.Count++
		for name, value := range fields {
			b.Sums[name] += value(e)
		}
	}

	out := make([]DayBucket, 0, len(byDay))
	for _, b := range byDay {
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

func dayKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}

// NutritionDaySummary is one day of the nutrition-by-day chart.
type NutritionDaySummary struct {
	Date          string  `json:"date"`
	TotalCalories float64 `json:"totalCalories"`
	TotalProtein  float64 `json:"totalProtein"`
	TotalFat      float64 `json:"totalFat"`
	TotalCarbs    float64 `json:"totalCarbs"`
	MealCount     int     `json:"mealCount"`
}

func NutritionByDay(entries []models.NutritionLog) []NutritionDaySummary {
	buckets := BucketByDay(entries,
		func(e models.NutritionLog) time.Time { return e.Date },
		map[string]func(models.NutritionLog) float64{
			"calories": func(e models.NutritionLog) float64 { return e.Calories },
			"protein":  func(e models.NutritionLog) float64 { return e.Protein },
			"fat":      func(e models.NutritionLog) float64 { return e.Fat },
			"carbs":    func(e models.NutritionLog) float64 { return e.Carbs },
		})

	out := make([]NutritionDaySummary, 0, len(buckets))
	for _, b := range buckets {
		out = append(out, NutritionDaySummary{
			Date:          b.Day,
			TotalCalories: b.Sums["calories"],
			TotalProtein:  b.Sums["protein"],
			TotalFat:      b.Sums["fat"],
			TotalCarbs:    b.Sums["carbs"],
			MealCount:     b.Count,
		})
	}
	return out
}

// WorkoutDaySummary is one day of the workout-by-day chart. Muscles is
// the deduplicated set of muscle groups trained that day, sorted.
type WorkoutDaySummary struct {
	Date                string   `json:"date"`
	TotalDuration       float64  `json:"totalDuration"`
	TotalCaloriesBurned float64  `json:"totalCaloriesBurned"`
	WorkoutCount        int      `json:"workoutCount"`
	Muscles             []string `json:"muscles"`
}

func WorkoutByDay(entries []models.WorkoutLog) []WorkoutDaySummary {
	buckets := BucketByDay(entries,
		func(e models.WorkoutLog) time.Time { return e.Date },
		map[string]func(models.WorkoutLog) float64{
			"duration":       func(e models.WorkoutLog) float64 { return e.Duration },
			"caloriesBurned": func(e models.WorkoutLog) float64 { return e.CaloriesBurned },
		})

	muscleSets := make(map[string]map[string]struct{})
	for _, e := range entries {
		if e.Muscle == "" {
			continue
		}
		key := dayKey(e.Date)
		if muscleSets[key] == nil {
			muscleSets[key] = make(map[string]struct{})
		}
		muscleSets[key][e.Muscle] = struct{}{}
	}

	out := make([]WorkoutDaySummary, 0, len(buckets))
	for _, b := range buckets {
		muscles := make([]string, 0, len(muscleSets[b.Day]))
		for m := range muscleSets[b.Day] {
			muscles = append(muscles, m)
		}
		sort.Strings(muscles)
		out = append(out, WorkoutDaySummary{
			Date:                b.Day,
			TotalDuration:       b.Sums["duration"],
			TotalCaloriesBurned: b.Sums["caloriesBurned"],
			WorkoutCount:        b.Count,
			Muscles:             muscles,
		})
	}
	return out
}
