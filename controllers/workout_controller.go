package controllers

import (
	"net/http"
	"time"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type WorkoutController struct {
	Logs      *services.WorkoutLogService
	Summaries *services.SummaryService
	Search    *services.ExerciseSearchService
}

func NewWorkoutController(logs *services.WorkoutLogService, summaries *services.SummaryService, search *services.ExerciseSearchService) *WorkoutController {
	return &WorkoutController{Logs: logs, Summaries: summaries, Search: search}
}

// GET /workouts/search?muscle=chest&difficulty=beginner&type=strength
func (w *WorkoutController) SearchExercises(c *gin.Context) {
	results := w.Search.Search(services.ExerciseQuery{
		Muscle:     c.Query("muscle"),
		Difficulty: c.Query("difficulty"),
		Type:       c.Query("type"),
		Offset:     c.Query("offset"),
	})
	c.JSON(http.StatusOK, gin.H{"success": true, "data": results})
}

type WorkoutInput struct {
	ExerciseName   string     `json:"exerciseName"`
	Muscle         string     `json:"muscle"`
	Difficulty     string     `json:"difficulty"`
	Equipment      string     `json:"equipment"`
	Type           string     `json:"type"`
	Instructions   string     `json:"instructions"`
	Sets           int        `json:"sets"`
	Reps           int        `json:"reps"`
	Duration       float64    `json:"duration"`
	CaloriesBurned float64    `json:"caloriesBurned"`
	Date           *time.Time `json:"date"`
	Notes          string     `json:"notes"`
}

// POST /workouts/log
func (w *WorkoutController) Log(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var input WorkoutInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	entry := &models.WorkoutLog{
		ExerciseName:   input.ExerciseName,
		Muscle:         input.Muscle,
		Difficulty:     input.Difficulty,
		Equipment:      input.Equipment,
		Type:           input.Type,
		Instructions:   input.Instructions,
		Sets:           input.Sets,
		Reps:           input.Reps,
		Duration:       input.Duration,
		CaloriesBurned: input.CaloriesBurned,
		Notes:          input.Notes,
	}
	if input.Date != nil {
		entry.Date = *input.Date
	}

	entry, err := w.Logs.Create(c.Request.Context(), userID, entry)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": entry})
}

// GET /workouts/logs?date=|startDate=&endDate=|limit=
func (w *WorkoutController) ListLogs(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	filter, err := dateFilterFromQuery(c)
	if err != nil {
		respondBadRequest(c, err.Error())
		return
	}
	limit := intQuery(c, "limit", 50)

	logs, err := w.Logs.List(c.Request.Context(), userID, filter, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(logs), "data": logs})
}

// DELETE /workouts/log/:id
func (w *WorkoutController) DeleteLog(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		respondError(c, models.ErrNotFound)
		return
	}

	if err := w.Logs.DeleteOwned(c.Request.Context(), id, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Workout log deleted"})
}

// GET /workouts/summary?days=N
func (w *WorkoutController) Summary(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	days := intQuery(c, "days", 7)
	summary, err := w.Summaries.WorkoutSummary(c.Request.Context(), userID, days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": summary})
}
