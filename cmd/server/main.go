package main

import (
	"github.com/charmbracelet/log"
	"github.com/gin-gonic/gin"

	"github.com/assignflow/assignment-api/internal/config"
	"github.com/assignflow/assignment-api/internal/database"
	"github.com/assignflow/assignment-api/internal/handlers"
	"github.com/assignflow/assignment-api/internal/middleware"
	"github.com/assignflow/assignment-api/internal/repository"
	"github.com/assignflow/assignment-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to the document store; the client lives for the whole
	// process and is closed on shutdown.
	client, err := database.Connect(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database", "err", err)
	}
	defer database.Disconnect(client)

	db := client.Database(cfg.MongoDB)
	jwtSecret := []byte(cfg.JWTSecret)

	// Initialize repositories and services
	userRepo := repository.NewUserRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	userService := services.NewUserService(userRepo, assignmentRepo, jwtSecret)
	adminService := services.NewAdminService(userRepo, assignmentRepo, jwtSecret)

	// Initialize handlers
	userHandler := handlers.NewUserHandler(userService)
	adminHandler := handlers.NewAdminHandler(adminService)

	// Initialize Gin router
	r := gin.Default()

	requireAuth := middleware.RequireAuth(jwtSecret, userRepo)
	requireActive := middleware.RequireActiveUser()

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Assignment API is running",
		})
	})

	// User routes
	user := r.Group("/user")
	{
		user.POST("/register", userHandler.Register)
		user.POST("/login", userHandler.Login)
		user.POST("/upload", requireAuth, requireActive, userHandler.UploadAssignment)
		user.GET("/admins", requireAuth, requireActive, userHandler.ListAdmins)
	}

	// Admin routes
	admin := r.Group("/admin")
	{
		admin.POST("/register", adminHandler.Register)
		admin.POST("/login", adminHandler.Login)
		admin.GET("/assignments", requireAuth, requireActive, adminHandler.ListAssignments)
		admin.POST("/assignments/:id/accept", requireAuth, requireActive, adminHandler.AcceptAssignment)
		admin.POST("/assignments/:id/reject", requireAuth, requireActive, adminHandler.RejectAssignment)
	}

	// Start server
	log.Info("Server starting", "port", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal("Failed to start server", "err", err)
	}
}
