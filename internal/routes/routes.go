package routes

import (
	"github.com/gin-gonic/gin"

	"clientapi/internal/handlers"
)

func SetupRoutes(
	r *gin.Engine,
	clientHandler *handlers.ClientHandler,
	reportHandler *handlers.ReportHandler,
	healthHandler *handlers.HealthHandler,
) *gin.Engine {
	r.GET("/healthz", healthHandler.Health)

	// CLIENTS
	clients := r.Group("/clients")
	{
		clients.GET("", clientHandler.List)
		clients.GET("/income", clientHandler.ListByIncome)
		clients.GET("/:id", clientHandler.GetByID)
		clients.POST("", clientHandler.Create)
		clients.PUT("/:id", clientHandler.Update)
		clients.DELETE("/:id", clientHandler.Delete)
	}

	// REPORTS
	reports := r.Group("/reports")
	{
		reports.GET("/clients", reportHandler.ClientsPDF)
	}

	return r
}
