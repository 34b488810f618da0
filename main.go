package main

import (
	"log"

	"github.com/coachdesk/triage-go/config"
	"github.com/coachdesk/triage-go/db"
	"github.com/coachdesk/triage-go/middleware"
	"github.com/coachdesk/triage-go/routes"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	db.Init()

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())

	if err := routes.RegisterRoutes(r); err != nil {
		log.Fatal("Failed to register routes:", err)
	}

	r.Run(":" + config.ServerPort)
}
