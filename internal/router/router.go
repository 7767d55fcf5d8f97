package router

import (
	"firebase.google.com/go/v4/auth"
	"github.com/labstack/echo/v4"
	eMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/skillsphere-app/backend/internal/handlers"
	"github.com/skillsphere-app/backend/internal/middleware"
	"github.com/skillsphere-app/backend/internal/models"
	"github.com/skillsphere-app/backend/internal/repositories"
	"github.com/skillsphere-app/backend/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
	"gorm.io/gorm"
)

// SetupMiddleware configures global Echo middleware
func SetupMiddleware(e *echo.Echo) {
	e.Use(eMiddleware.Logger())
	e.Use(eMiddleware.Recover())
	e.Use(eMiddleware.CORS())
}

// SetupRoutes configures all application routes and injects dependencies.
// firebaseAuthClient selects the identity path: when non-nil requests are
// authenticated against Firebase ID tokens, otherwise against locally
// issued JWTs signed with jwtSecret. redisClient may be nil.
func SetupRoutes(
	e *echo.Echo,
	pgdb *gorm.DB,
	mgClient *mongo.Client,
	mongoDatabase string,
	redisClient *redis.Client,
	firebaseAuthClient *auth.Client,
	jwtSecret string,
	logger *logrus.Logger,
) error {
	// AutoMigrate PostgreSQL models
	if err := pgdb.AutoMigrate(
		&models.User{},
		&models.Like{},
		&models.Comment{},
		&models.Notification{},
	); err != nil {
		return err
	}
	logger.Info("PostgreSQL auto-migrations completed")

	// Health check - always accessible
	e.GET("/health", handlers.HealthCheck)

	// --- Initialize Repositories ---
	userRepo := repositories.NewPostgresUserRepository(pgdb)
	likeRepo := repositories.NewPostgresLikeRepository(pgdb)
	commentRepo := repositories.NewPostgresCommentRepository(pgdb)
	notificationRepo := repositories.NewPostgresNotificationRepository(pgdb)
	postRepo := repositories.NewMongoPostRepository(mgClient.Database(mongoDatabase))

	// --- Initialize Services ---
	engagementService := services.NewEngagementService(likeRepo, commentRepo, notificationRepo, postRepo, redisClient, logger)
	notificationService := services.NewNotificationService(notificationRepo)

	// --- Protected routes ---
	api := e.Group("/api/v1/engagement")
	if firebaseAuthClient != nil {
		api.Use(middleware.FirebaseAuthMiddleware(firebaseAuthClient, userRepo))
		logger.Info("Firebase authentication middleware applied")
	} else {
		api.Use(middleware.JWTAuthMiddleware(jwtSecret))
		logger.Info("JWT authentication middleware applied")
	}

	engagementHandler := handlers.NewEngagementHandler(engagementService)
	engagementHandler.RegisterEngagementRoutes(api)

	notificationHandler := handlers.NewNotificationHandler(notificationService)
	notificationHandler.RegisterNotificationRoutes(api)

	logger.Info("All routes configured")
	return nil
}
