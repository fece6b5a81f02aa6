package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"backend/models"
	"backend/services"

	"github.com/gin-gonic/gin"
)

// respondError maps an error to its HTTP status once; internals of
// unexpected failures never leak to the caller.
func respondError(c *gin.Context, err error) {
	var vErr *models.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": vErr.Error()})
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Resource not found"})
	case errors.Is(err, models.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Email already registered"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "Server Error"})
	}
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": message})
}

func userIDFromCtx(c *gin.Context) (uint, bool) {
	v, ok := c.Get("userID")
	if !ok {
		return 0, false
	}
	id, ok := v.(uint)
	return id, ok
}

// mustUserID aborts with 401 when the auth middleware did not run.
func mustUserID(c *gin.Context) (uint, bool) {
	id, ok := userIDFromCtx(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "message": "Unauthorized"})
	}
	return id, ok
}

// dateFilterFromQuery builds the date filter from ?date= or
// ?startDate=&endDate= (both YYYY-MM-DD). A zero filter means no date
// constraint.
func dateFilterFromQuery(c *gin.Context) (services.DateFilter, error) {
	if d := c.Query("date"); d != "" {
		day, err := time.Parse("2006-01-02", d)
		if err != nil {
			return services.DateFilter{}, errors.New("invalid date, expected YYYY-MM-DD")
		}
		return services.ExactDay(day), nil
	}

	startStr, endStr := c.Query("startDate"), c.Query("endDate")
	if startStr != "" && endStr != "" {
		start, err := time.Parse("2006-01-02", startStr)
		if err != nil {
			return services.DateFilter{}, errors.New("invalid startDate, expected YYYY-MM-DD")
		}
		end, err := time.Parse("2006-01-02", endStr)
		if err != nil {
			return services.DateFilter{}, errors.New("invalid endDate, expected YYYY-MM-DD")
		}
		if end.Before(start) {
			return services.DateFilter{}, errors.New("endDate must be on/after startDate")
		}
		return services.Between(start, end), nil
	}

	return services.DateFilter{}, nil
}

func intQuery(c *gin.Context, name string, fallback int) int {
	v := c.Query(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

func idParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
