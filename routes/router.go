package routes

import (
	"net/http"
	"time"

	"github.com/coachdesk/triage-go/classifier"
	"github.com/coachdesk/triage-go/config"
	"github.com/coachdesk/triage-go/handlers"
	"github.com/coachdesk/triage-go/repositories"
	"github.com/coachdesk/triage-go/services"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires the production dependency chain: OpenAI transport →
// classification client → service → handlers. Returns an error when the
// classifier configuration is unusable.
func RegisterRoutes(r *gin.Engine) error {
	cfg := classifier.Config{
		Model:       config.FineTunedModelID,
		MaxRetries:  config.MaxRetries,
		Temperature: config.Temperature,
		MaxTokens:   config.MaxOutputTokens,
	}

	chat := classifier.NewOpenAIChat(
		config.OpenAIAPIKey,
		cfg,
		time.Duration(config.RequestTimeoutSec)*time.Second,
	)
	clf, err := classifier.New(chat, cfg)
	if err != nil {
		return err
	}

	repos_instance := repositories.New()
	services_instance := services.New(repos_instance, clf)
	Register(r, services_instance)
	return nil
}

// Register mounts the HTTP surface over an already constructed service
// container. Tests use this to swap in stub classifiers and stores.
func Register(r *gin.Engine, svc *services.Services) {
	handlers_instance := handlers.New(svc)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.POST("/classify", handlers_instance.Ticket.Classify)
	r.POST("/classify/batch", handlers_instance.Ticket.ClassifyBatch)

	tickets := r.Group("/tickets")
	{
		tickets.GET("", handlers_instance.Ticket.ListTickets)
		tickets.GET("/:id", handlers_instance.Ticket.GetTicket)
	}

	r.GET("/statistics", handlers_instance.Ticket.GetStatistics)
}
