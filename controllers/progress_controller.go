package controllers

import (
	"net/http"
	"time"

	"backend/models"
	"backend/services"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	Progress  *services.ProgressService
	Summaries *services.SummaryService
}

func NewProgressController(progress *services.ProgressService, summaries *services.SummaryService) *ProgressController {
	return &ProgressController{Progress: progress, Summaries: summaries}
}

type ProgressInput struct {
	Weight  float64    `json:"weight"`
	BodyFat float64    `json:"bodyFat"`
	Waist   float64    `json:"waist"`
	Date    *time.Time `json:"date"`
	Notes   string     `json:"notes"`
}

// POST /progress
func (p *ProgressController) Add(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	var input ProgressInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	entry := &models.ProgressEntry{
		Weight:  input.Weight,
		BodyFat: input.BodyFat,
		Waist:   input.Waist,
		Notes:   input.Notes,
	}
	if input.Date != nil {
		entry.Date = *input.Date
	}

	entry, err := p.Progress.Create(c.Request.Context(), userID, entry)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success":     true,
		"data":        entry,
		"bmiCategory": utils.BMICategory(entry.BMI),
	})
}

// GET /progress?limit=N
func (p *ProgressController) List(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	limit := intQuery(c, "limit", 90)
	entries, err := p.Progress.List(c.Request.Context(), userID, services.DateFilter{}, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(entries), "data": entries})
}

// GET /progress/summary?period=weekly|monthly
func (p *ProgressController) Summary(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}

	period := c.DefaultQuery("period", "weekly")
	summary, err := p.Summaries.ProgressPeriodSummary(c.Request.Context(), userID, period)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": summary})
}

// DELETE /progress/:id
func (p *ProgressController) Delete(c *gin.Context) {
	userID, ok := mustUserID(c)
	if !ok {
		return
	}
	id, ok := idParam(c)
	if !ok {
		respondError(c, models.ErrNotFound)
		return
	}

	if err := p.Progress.DeleteOwned(c.Request.Context(), id, userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Progress entry deleted"})
}
