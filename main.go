package main

import (
	"log"
	"os"

	"github.com/LibriTrack/LibriTrack-Backend/src/db"
	"github.com/LibriTrack/LibriTrack-Backend/src/middleware"
	"github.com/LibriTrack/LibriTrack-Backend/src/models"
	"github.com/LibriTrack/LibriTrack-Backend/src/routes"
	"github.com/LibriTrack/LibriTrack-Backend/src/seed"
	"github.com/LibriTrack/LibriTrack-Backend/src/services"
	"github.com/gin-gonic/gin"
)

func main() {

	// Database connection
	db, err := db.Connect()
	if err != nil {
		log.Fatalf("Error connecting to database: %v\n", err)
	}

	// Auto-migrate models
	if err := db.AutoMigrate(
		&models.UserModel{},
		&models.FloorModel{},
		&models.ZoneModel{},
		&models.BookcaseModel{},
		&models.GenreModel{},
		&models.BookModel{},
		&models.LoanModel{},
		&models.ReservationModel{},
	); err != nil {
		log.Fatalf("Error during auto-migration: %v\n", err)
	}

	// JWT secret setup
	middleware.SetSecretKey(os.Getenv("JWT_SECRET"))

	// Optional seeding
	if os.Getenv("SEED") == "true" {
		seed.Seed(db)
	}

	// Port and host setup
	host := os.Getenv("SERVER_HOST")
	if host == "" {
		host = ":8080"
	}

	// Gin router setup
	router := gin.Default()
	router.Use(middleware.SetupCORS())

	// Services setup
	capacityService := services.NewCapacityService(db)
	floorService := services.NewFloorService(db, capacityService)
	zoneService := services.NewZoneService(db, capacityService)
	bookcaseService := services.NewBookcaseService(db, capacityService)
	bookService := services.NewBookService(db, capacityService)
	genreService := services.NewGenreService(db)
	loanService := services.NewLoanService(db, capacityService, bookService)
	reservationService := services.NewReservationService(db)
	timelineService := services.NewTimelineService(db)
	userService := services.NewUserService(db)

	// Routes setup
	routes.SetupUserRoutes(router, userService, timelineService)
	routes.SetupFloorRoutes(router, floorService)
	routes.SetupZoneRoutes(router, zoneService)
	routes.SetupBookcaseRoutes(router, bookcaseService)
	routes.SetupBookRoutes(router, bookService, timelineService)
	routes.SetupGenreRoutes(router, genreService)
	routes.SetupLoanRoutes(router, loanService)
	routes.SetupReservationRoutes(router, reservationService)

	router.GET("/", func(c *gin.Context) {
		c.String(200, "Hello from Gin!")
	})

	// Server run
	if err := router.Run(host); err != nil {
		log.Fatalf("Error starting server on %s: %v\n", host, err)
	}

	log.Printf("Server is running on %s\n", host)

}
