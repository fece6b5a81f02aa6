package routes

import (
	"net/http"
	"time"

	"backend/controllers"
	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, hub *services.RealtimeHub) *gin.Engine {
	r := gin.Default()

	users := services.NewUserService(db)
	nutritionLogs := services.NewNutritionLogService(db)
	workoutLogs := services.NewWorkoutLogService(db)
	progress := services.NewProgressService(db)
	summaries := services.NewSummaryService(nutritionLogs, workoutLogs, progress)

	authC := controllers.NewAuthController(users)
	userC := controllers.NewUserController(users, summaries)
	nutritionC := controllers.NewNutritionController(nutritionLogs, summaries, users, services.NewNutritionSearchService())
	workoutC := controllers.NewWorkoutController(workoutLogs, summaries, services.NewExerciseSearchService())
	progressC := controllers.NewProgressController(progress, summaries)
	imageC := controllers.NewImageController(services.NewPhotoSearchService())
	realtimeC := controllers.NewRealtimeController(hub, db)

	v1 := r.Group("/api/v1")

	v1.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"success":   true,
			"message":   "FitLife API is running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Public routes
	v1.POST("/users/register", authC.Register)
	v1.POST("/users/login", authC.Login)
	v1.GET("/images/search", imageC.Search)
	v1.GET("/images/random", imageC.Random)

	auth := middlewares.AuthMiddleware()

	user := v1.Group("/users")
	user.Use(auth)
	{
		user.GET("/profile", userC.GetProfile)
		user.PUT("/profile", userC.UpdateProfile)
		user.GET("/dashboard", userC.Dashboard)
	}

	nutrition := v1.Group("/nutrition")
	nutrition.Use(auth)
	{
		nutrition.GET("/search", nutritionC.SearchFoods)
		nutrition.POST("/log", nutritionC.Log)
		nutrition.GET("/logs", nutritionC.ListLogs)
		nutrition.GET("/today", nutritionC.Today)
		nutrition.DELETE("/log/:id", nutritionC.DeleteLog)
		nutrition.GET("/summary", nutritionC.Summary)
	}

	workouts := v1.Group("/workouts")
	workouts.Use(auth)
	{
		workouts.GET("/search", workoutC.SearchExercises)
		workouts.POST("/log", workoutC.Log)
		workouts.GET("/logs", workoutC.ListLogs)
		workouts.DELETE("/log/:id", workoutC.DeleteLog)
		workouts.GET("/summary", workoutC.Summary)
	}

	prog := v1.Group("/progress")
	prog.Use(auth)
	{
		prog.POST("", progressC.Add)
		prog.GET("", progressC.List)
		prog.GET("/summary", progressC.Summary)
		prog.DELETE("/:id", progressC.Delete)
	}

	realtime := v1.Group("/realtime")
	realtime.Use(auth)
	{
		realtime.GET("/alerts", realtimeC.AlertsWS)
		realtime.GET("/alerts/recent", realtimeC.RecentAlerts)
	}

	return r
}
