package main

import (
	"os"

	"backend/config"
	"backend/routes"
	"backend/services"
	"backend/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	utils.InitSES()

	hub := services.NewRealtimeHub()
	services.InitAlertDeps(config.DB, hub)

	r := routes.SetupRouter(config.DB, hub)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
