package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/pukkaew/LearnHub-sub000/config"
	"github.com/pukkaew/LearnHub-sub000/database"
	_ "github.com/pukkaew/LearnHub-sub000/docs" // Swagger docs - auto-generated
	adminctrl "github.com/pukkaew/LearnHub-sub000/internal/controller/admin"
	userctrl "github.com/pukkaew/LearnHub-sub000/internal/controller/user"
	"github.com/pukkaew/LearnHub-sub000/internal/logger"
	"github.com/pukkaew/LearnHub-sub000/internal/model"
	"github.com/pukkaew/LearnHub-sub000/internal/repository"
	"github.com/pukkaew/LearnHub-sub000/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Position Test Assignment & Evaluation API
// @version 1.0
// @description Determines which tests a position requires, tracks per-person progress and evaluates overall pass/fail.
// @host localhost:8080
// @BasePath /api/v1
// @schemes http https
func main() {
	logger.Init()

	app := fx.New(
		// Core application components
		fx.Provide(
			config.NewConfig,
			database.NewDatabase, // Provides *gorm.DB
			NewGinEngine,
		),

		// Repositories layer
		fx.Provide(
			repository.NewPositionRepository,
			repository.NewPersonRepository,
			repository.NewTestRepository,
			repository.NewAssignmentRepository,
			repository.NewEvaluationConfigRepository,
			repository.NewProgressRepository,
			repository.NewAttemptRepository,
		),

		// Services layer
		fx.Provide(
			service.NewResolverService,
			service.NewProgressService,
			service.NewEvaluationService,
			service.NewAdminAssignmentService,
		),

		// API controllers layer
		fx.Provide(
			adminctrl.NewAdminAssignmentController,
			userctrl.NewEngineController,
		),

		fx.Invoke(RegisterRoutesAndStartServer),
		fx.Invoke(AutoMigrateDB),
	)

	if err := app.Start(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to start application")
	}

	<-app.Done()
	log.Info().Msg("Application shutting down gracefully...")
}

func NewGinEngine() *gin.Engine {
	r := gin.New()

	r.Use(gin.LoggerWithFormatter(func(param gin.LogFormatterParams) string {
		log.Info().
			Str("client_ip", param.ClientIP).
			Str("method", param.Method).
			Str("path", param.Path).
			Int("status_code", param.StatusCode).
			Dur("latency", param.Latency).
			Str("error_message", param.ErrorMessage).
			Msg("gin_request")
		return ""
	}))
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return r
}

// RegisterRoutesAndStartServer configures API routes and manages server lifecycle.
func RegisterRoutesAndStartServer(
	lc fx.Lifecycle,
	router *gin.Engine,
	cfg *config.Config,
	adminCtrl *adminctrl.AdminAssignmentController,
	engineCtrl *userctrl.EngineController,
) {
	adminAPIGroup := router.Group("/api/v1/admin")
	{
		adminAPIGroup.POST("/positions", adminCtrl.CreatePosition)
		adminAPIGroup.POST("/persons", adminCtrl.CreatePerson)
		adminAPIGroup.POST("/tests", adminCtrl.CreateTest)
		adminAPIGroup.POST("/position-test-links", adminCtrl.CreateLink)
		adminAPIGroup.POST("/legacy-test-sets", adminCtrl.CreateLegacySet)
		adminAPIGroup.PATCH("/position-test-links/:link_id/active", adminCtrl.SetLinkActive)
		adminAPIGroup.PATCH("/legacy-test-sets/:set_id/active", adminCtrl.SetLegacySetActive)
		adminAPIGroup.PUT("/positions/:position_id/evaluation-config", adminCtrl.UpsertEvaluationConfig)
		adminAPIGroup.POST("/assignments/ensure", adminCtrl.EnsureAssigned)
		adminAPIGroup.POST("/assignments/reset", adminCtrl.ResetProgress)
		adminAPIGroup.POST("/maintenance/expire-stale", adminCtrl.ExpireStale)
	}

	userAPIGroup := router.Group("/api/v1")
	{
		userAPIGroup.GET("/positions/:position_id/required-tests", engineCtrl.GetRequiredTests)
		userAPIGroup.GET("/persons/:person_id/positions/:position_id/progress", engineCtrl.GetProgress)
		userAPIGroup.GET("/persons/:person_id/positions/:position_id/evaluation", engineCtrl.GetEvaluation)
		userAPIGroup.POST("/persons/:person_id/tests/:test_id/attempts", engineCtrl.StartAttempt)
		userAPIGroup.GET("/attempts/:attempt_id", engineCtrl.GetAttempt)
		userAPIGroup.POST("/attempts/:attempt_id/complete", engineCtrl.CompleteAttempt)
	}

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Assignment engine API starting on port %s", cfg.Server.Port)
			go func() {
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					log.Fatal().Err(err).Msg("Server ListenAndServe failed")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Server shutting down...")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return server.Shutdown(shutdownCtx)
		},
	})
}

func AutoMigrateDB(db *gorm.DB) error {
	log.Info().Msg("Running database migrations...")
	err := db.AutoMigrate(
		&model.Position{},
		&model.Person{},
		&model.Test{},
		&model.PositionTestLink{},
		&model.LegacyPositionTestSet{},
		&model.PositionEvaluationConfig{},
		&model.PersonTestProgress{},
		&model.TestAttempt{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed successfully.")
	return nil
}
