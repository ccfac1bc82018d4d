package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"imobiliare/internal/config"
	"imobiliare/internal/database"
	"imobiliare/internal/middleware"
	"imobiliare/internal/modules/apartment"
	"imobiliare/internal/modules/wishlist"
	"imobiliare/internal/report"
	"imobiliare/internal/repository"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatal(err)
	}

	apartmentRepo := repository.NewApartmentRepository(db)
	userRepo := repository.NewUserRepository(db)
	wishlistRepo := repository.NewWishlistRepository(db)

	wishlistService := wishlist.NewService(
		wishlistRepo,
		userRepo,
		apartmentRepo,
		report.NewGenerator(),
	)

	apartmentHandler := apartment.NewHandler(apartmentRepo)
	wishlistHandler := wishlist.NewHandler(wishlistRepo, apartmentRepo, wishlistService)

	r := gin.Default()
	r.Use(middleware.CORS(cfg.ExtraOrigins))
	r.Use(middleware.ErrorLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		apartmentHandler.RegisterRoutes(api)
		wishlistHandler.RegisterRoutes(api)
	}

	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
