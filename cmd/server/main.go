package main

import (
	"context"

	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/skillsphere-app/backend/internal/router"
	"github.com/skillsphere-app/backend/pkg/config"
	"github.com/skillsphere-app/backend/pkg/firebase"
	"github.com/skillsphere-app/backend/validators"
)

func main() {
	logger := logrus.New()

	// Load configuration
	cfg := config.Load()

	// Initialize database connections
	db, err := config.InitDB(cfg)
	if err != nil {
		logger.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB()

	// Initialize Firebase when credentials are configured; otherwise the
	// API falls back to locally issued JWTs.
	var authClient *auth.Client
	if cfg.FirebaseCredentialsPath != "" {
		firebaseApp, err := firebase.InitFirebase(context.Background(), cfg.FirebaseCredentialsPath)
		if err != nil {
			logger.Fatalf("Failed to initialize Firebase: %v", err)
		}
		authClient = firebaseApp.AuthClient
		logger.Info("Firebase auth client initialized")
	}

	// Create Echo instance
	e := echo.New()

	// Setup global middleware
	router.SetupMiddleware(e)

	// Validator
	e.Validator = validators.NewValidator()

	// Setup routes and dependencies
	if err := router.SetupRoutes(e, db.Postgres, db.Mongo, cfg.MongoDatabase, db.Redis, authClient, cfg.JWTSecret, logger); err != nil {
		logger.Fatalf("Failed to setup routes: %v", err)
	}

	// Start server
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
