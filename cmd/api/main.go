package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nordeim/Polaris-Family-Clinic/internal/config"
	dbpkg "github.com/nordeim/Polaris-Family-Clinic/internal/db"
	"github.com/nordeim/Polaris-Family-Clinic/internal/middleware"
	"github.com/nordeim/Polaris-Family-Clinic/internal/routes"
)

func main() {

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	db := dbpkg.NewDB(cfg)

	// Misconfigured clinic settings must never be papered over per request.
	settings, err := dbpkg.LoadClinicSettings(db)
	if err != nil {
		log.Fatalf("failed to load clinic settings: %v", err)
	}

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, settings)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
