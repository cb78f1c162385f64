package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/solveighty/Coffee-Blend/configs"
	"github.com/solveighty/Coffee-Blend/internal/handlers"
	"github.com/solveighty/Coffee-Blend/internal/middleware"
	"github.com/solveighty/Coffee-Blend/internal/models"
	"github.com/solveighty/Coffee-Blend/internal/repositories"
	"github.com/solveighty/Coffee-Blend/internal/services"
	"github.com/solveighty/Coffee-Blend/pkg/database"
	"github.com/solveighty/Coffee-Blend/pkg/messaging"
)

func main() {
	// Load configuration
	config := configs.LoadConfig()

	// Set Gin mode
	gin.SetMode(config.Server.Mode)

	// Initialize database connection
	db, err := database.NewDatabase(config.Database.PostgresURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close()

	// Auto-migrate PostgreSQL tables
	if err := autoMigratePostgres(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Kafka
	kafkaProducer := messaging.NewKafkaProducer(config.Kafka.Brokers)
	defer kafkaProducer.Close()

	// Initialize repositories
	reservationRepo := repositories.NewReservationRepository(db.Postgres)
	orderRepo := repositories.NewOrderRepository(db.Postgres)

	// Initialize services
	reservationService := services.NewReservationService(reservationRepo, kafkaProducer, config.Kafka.Brokers)
	orderService := services.NewOrderService(orderRepo, kafkaProducer, config.Kafka.Brokers)

	// Initialize handlers
	reservationHandler := handlers.NewReservationHandler(reservationService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// Initialize Gin router
	router := gin.New()

	// Global middleware
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.RequestIDMiddleware())

	// API routes
	api := router.Group("/api")

	// Health check endpoint
	api.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "Server is running",
		})
	})

	// Register routes
	reservationHandler.RegisterRoutes(api)
	orderHandler.RegisterRoutes(api)

	log.Printf("Server is running on port %s", config.Server.Port)
	log.Fatal(router.Run(":" + config.Server.Port))
}

func autoMigratePostgres(db *database.Database) error {
	return db.Postgres.AutoMigrate(
		&models.Reservation{},
		&models.Order{},
	)
}
