package services

import (
	"context"
	"log"
	"time"

	"backend/models"
)

// SummaryService composes log-store reads with the pure aggregation in
// metrics.go. Every call re-queries and recomputes; there is no cache.
type SummaryService struct {
	nutrition *NutritionLogService
	workouts  *WorkoutLogService
	progress  *ProgressService
}

func NewSummaryService(n *NutritionLogService, w *WorkoutLogService, p *ProgressService) *SummaryService {
	return &SummaryService{nutrition: n, workouts: w, progress: p}
}

// TodayNutrition holds today's entries together with their macro totals.
type TodayNutrition struct {
	Totals  NutritionTotals       `json:"totals"`
	Entries []models.NutritionLog `json:"entries"`
}

func (s *SummaryService) TodayNutrition(ctx context.Context, userID uint) (*TodayNutrition, error) {
	entries, err := s.nutrition.List(ctx, userID, ExactDay(time.Now().UTC()), 0)
	if err != nil {
		return nil, err
	}
	return &TodayNutrition{Totals: DailyTotals(entries), Entries: entries}, nil
}

// NutritionSummary buckets the last `days` days of nutrition logs by
// calendar day. days defaults to 7.
func (s *SummaryService) NutritionSummary(ctx context.Context, userID uint, days int) ([]NutritionDaySummary, error) {
	if days <= 0 {
		days = 7
	}
	entries, err := s.nutrition.List(ctx, userID, LastNDays(days), 0)
	if err != nil {
		return nil, err
	}
	return NutritionByDay(entries), nil
}

func (s *SummaryService) WorkoutSummary(ctx context.Context, userID uint, days int) ([]WorkoutDaySummary, error) {
	if days <= 0 {
		days = 7
	}
	entries, err := s.workouts.List(ctx, userID, LastNDays(days), 0)
	if err != nil {
		return nil, err
	}
	return WorkoutByDay(entries), nil
}

// ProgressPeriodSummary computes the weekly (7-day) or monthly (30-day)
// progress summary; anything other than "monthly" means weekly.
func (s *SummaryService) ProgressPeriodSummary(ctx context.Context, userID uint, period string) (ProgressSummary, error) {
	days := 7
	if period == "monthly" {
		days = 30
	} else {
		period = "weekly"
	}

	entries, err := s.progress.List(ctx, userID, LastNDays(days), 0)
	if err != nil {
		return ProgressSummary{Period: period}, err
	}
	return PeriodSummary(entries, period), nil
}

// DashboardOverview combines today's nutrition, this week's progress and
// this week's workouts into one response.
type DashboardOverview struct {
	Today        *TodayNutrition     `json:"today"`
	WeekProgress ProgressSummary     `json:"weekProgress"`
	WeekWorkouts []WorkoutDaySummary `json:"weekWorkouts"`
}

// Dashboard never fails as a whole: the three sub-queries are
// informationally independent, so a failed one degrades to its empty
// value instead of taking down the rest.
func (s *SummaryService) Dashboard(ctx context.Context, userID uint) *DashboardOverview {
	out := &DashboardOverview{
		Today:        &TodayNutrition{Entries: []models.NutritionLog{}},
		WeekProgress: ProgressSummary{Period: "weekly"},
		WeekWorkouts: []WorkoutDaySummary{},
	}

	if today, err := s.TodayNutrition(ctx, userID); err == nil {
		out.Today = today
	} else {
		log.Printf("dashboard: today nutrition for user %d: %v", userID, err)
	}

	if ps, err := s.ProgressPeriodSummary(ctx, userID, "weekly"); err == nil {
		out.WeekProgress = ps
	} else {
		log.Printf("dashboard: progress summary for user %d: %v", userID, err)
	}

	if wb, err := s.WorkoutSummary(ctx, userID, 7); err == nil {
		out.WeekWorkouts = wb
	} else {
		log.Printf("dashboard: workout summary for user %d: %v", userID, err)
	}

	return out
}
