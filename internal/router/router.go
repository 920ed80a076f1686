package router

import (
	"time"

	"github.com/crewdeck-dev/crewdeck/internal/auth"
	"github.com/crewdeck-dev/crewdeck/internal/handlers"
	"github.com/crewdeck-dev/crewdeck/internal/middleware"
	"github.com/crewdeck-dev/crewdeck/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func New(db *gorm.DB, tokens *auth.Manager) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	hub := handlers.NewHub()

	authHandler := handlers.NewAuthHandler(db, tokens)
	usersHandler := handlers.NewUsersHandler(db)
	operativesHandler := handlers.NewOperativesHandler(db, hub)
	jobsHandler := handlers.NewJobsHandler(db, hub)
	assessmentsHandler := handlers.NewRiskAssessmentsHandler(db)
	statementsHandler := handlers.NewMethodStatementsHandler(db)
	dashboardHandler := handlers.NewDashboardHandler(db, hub)

	authRequired := middleware.AuthMiddleware(db, tokens)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.GET("/me", authRequired, authHandler.Me)
		}

		protected := api.Group("", authRequired)
		{
			protected.GET("/users", usersHandler.List)
			protected.POST("/users", usersHandler.Create)

			protected.GET("/operatives", operativesHandler.List)
			protected.GET("/operatives/:id", operativesHandler.Get)
			protected.POST("/operatives", operativesHandler.Create)
			protected.PUT("/operatives/:id", operativesHandler.Update)
			protected.DELETE("/operatives/:id", operativesHandler.Delete)

			protected.GET("/jobs", jobsHandler.List)
			protected.GET("/jobs/:id", jobsHandler.Get)
			protected.POST("/jobs", jobsHandler.Create)
			protected.PUT("/jobs/:id", jobsHandler.Update)
			protected.DELETE("/jobs/:id", jobsHandler.Delete)
			protected.POST("/jobs/:id/updates", jobsHandler.AddUpdate)
			protected.GET("/jobs/:id/risk-assessments", assessmentsHandler.ListForJob)
			protected.GET("/jobs/:id/method-statements", statementsHandler.ListForJob)

			protected.GET("/risk-assessments", assessmentsHandler.List)
			protected.POST("/risk-assessments", assessmentsHandler.Create)
			protected.PUT("/risk-assessments/:id", assessmentsHandler.Update)
			protected.DELETE("/risk-assessments/:id", assessmentsHandler.Delete)

			protected.GET("/method-statements", statementsHandler.List)
			protected.POST("/method-statements", statementsHandler.Create)
			protected.PUT("/method-statements/:id", statementsHandler.Update)
			protected.DELETE("/method-statements/:id", statementsHandler.Delete)

			protected.GET("/dashboard/stats", dashboardHandler.Stats)
			protected.GET("/dashboard/ws", dashboardHandler.Socket)
		}
	}

	return r
}
