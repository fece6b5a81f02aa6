package controllers

import (
	"fmt"
	"net/http"
	"time"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type NutritionController struct {
	Logs      *services.NutritionLogService
	Summaries *services.SummaryService
	Users     *services.UserService
	Search    *services.NutritionSearchService
}

func NewNutritionController(logs *services.NutritionLogService, summaries *services.SummaryService, users *services.UserService, search *services.NutritionSearchService) *NutritionController {
	return &NutritionController{Logs: logs, Summaries: summaries, Users: users, Search: search}
}

// GET /nutrition/search?query=chicken
func (n *NutritionController) SearchFoods(c *gin.Context) {
	query := c.Query("query")
	if query == "" {
		respondBadRequest(c, "Please provide a search query")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": n.Search.Search(query)})
}

// LogInput is the allow-list of fields a client may set on a new entry.
type LogInput struct {
	FoodName    string     `json:"foodName"`
	Calories    float64    `json:"calories"`
	Protein     float64    `json:"protein"`
	Fat         float64    `json:"fat"`
	Carbs       float64    `json:"carbs"`
	Fiber       float64    `json:"fiber"`
	ServingSize string     `json:"servingSize"`
	MealType    string     `json:"mealType"`
	Date        *time.Time `json:"date"`
	Notes       string     `json:"notes"`
}

// POST /nutrition/log
func (n *NutritionController) Log(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var input LogInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	entry := &models.NutritionLog{
		FoodName:    input.FoodName,
		Calories:    input.Calories,
		Protein:     input.Protein,
		Fat:         input.Fat,
		Carbs:       input.Carbs,
		Fiber:       input.Fiber,
		ServingSize: input.ServingSize,
		MealType:    input.MealType,
		Notes:       input.Notes,
	}
	if input.Date != nil {
		entry.Date = *input.Date
	}

	entry, err := n.Logs.Create(c.Request.Context(), userID, entry)
	if err != nil {
		respondError(c, err)
		return
	}

	n.checkCalorieGoal(c, userID)

	note := fmt.Sprintf("Added %s %s: %.0f kcal, %.0fg protein",
		entry.ServingSize, entry.FoodName, entry.Calories, entry.Protein)
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": entry, "note": note})
}

// checkCalorieGoal emits a realtime alert the moment today's intake
// crosses the user's daily calorie target.
func (n *NutritionController) checkCalorieGoal(c *gin.Context, userID uint) {
	user, err := n.Users.Get(c.Request.Context(), userID)
	if err != nil || user.Goals.DailyCalories <= 0 {
		return
	}
	today, err := n.Summaries.TodayNutrition(c.Request.Context(), userID)
	if err != nil {
		return
	}
	if today.Totals.Calories >= user.Goals.DailyCalories {
		services.EmitAlert(userID, "goal", fmt.Sprintf(
			"Daily calorie target reached: %.0f / %.0f kcal",
			today.Totals.Calories, user.Goals.DailyCalories))
	}
}

// GET /nutrition/logs?date=|startDate=&endDate=|limit=
func (n *NutritionController) ListLogs(c *gin.Context) {
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

	logs, err := n.Logs.List(c.Request.Context(), userID, filter, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"count":   len(logs),
		"totals":  services.DailyTotals(logs),
		"data":    logs,
	})
}

// GET /nutrition/today
func (n *NutritionController) Today(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	today, err := n.Summaries.TodayNutrition(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": today})
}

// DELETE /nutrition/log/:id
func (n *NutritionController) DeleteLog(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		respondError(c, models.ErrNotFound)
		return
	}

	if err := n.Logs.DeleteOwned(c.Request.Context(), id, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Log deleted"})
}

// GET /nutrition/summary?days=N
func (n *NutritionController) Summary(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	days := intQuery(c, "days", 7)
	summary, err := n.Summaries.NutritionSummary(c.Request.Context(), userID, days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": summary})
}
