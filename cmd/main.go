package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/ousidus/braintrain/config"
	"github.com/ousidus/braintrain/database"
	_ "github.com/ousidus/braintrain/docs" // Swagger docs - auto-generated
	"github.com/ousidus/braintrain/internal/controller"
	"github.com/ousidus/braintrain/internal/logger"
	"github.com/ousidus/braintrain/internal/model"
	"github.com/ousidus/braintrain/internal/repository"
	"github.com/ousidus/braintrain/internal/service"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

// @title Brain Training API
// @version 1.0
// @description Serves cognitive-training exercises (arithmetic, reading, Stroop, word memorization) and records per-session results.
// @host localhost:8000
// @BasePath /
// @schemes http
func main() {
	logger.Init()

	app := fx.New(
		fx.Provide(
			config.NewConfig,
			database.NewDatabase,
			NewGinEngine,
		),

		fx.Provide(
			repository.NewStroopColorRepository,
			repository.NewMathProblemRepository,
			repository.NewWordListRepository,
			repository.NewReadingPassageRepository,
			repository.NewExerciseTypeRepository,
			repository.NewSessionRepository,
			repository.NewResultRepository,
		),

		fx.Provide(
			service.NewArithmeticService,
			service.NewMemoryService,
			service.NewReadingService,
			service.NewStroopService,
			service.NewExerciseTypeService,
			service.NewSessionService,
		),

		fx.Provide(
			controller.NewExerciseController,
			controller.NewSessionController,
		),

		fx.Invoke(AutoMigrateDB),
		fx.Invoke(SeedReferenceData),
		fx.Invoke(RegisterRoutesAndStartServer),
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
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
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
	exerciseCtrl *controller.ExerciseController,
	sessionCtrl *controller.SessionController,
) {
	controller.RegisterRoutes(router, exerciseCtrl, sessionCtrl)

	server := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msgf("Brain Training API server starting on port %s", cfg.Server.Port)
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
		&model.StroopColor{},
		&model.MathProblem{},
		&model.WordList{},
		&model.ReadingPassage{},
		&model.ExerciseType{},
		&model.TrainingSession{},
		&model.ExerciseResult{},
	)
	if err != nil {
		log.Error().Err(err).Msg("Database migration failed")
		return err
	}
	log.Info().Msg("Database migration completed")
	return nil
}

// SeedReferenceData populates reference tables on first boot and verifies
// the sampling preconditions on every boot. A verification failure aborts
// startup: serving with a broken corpus would only fail later, per request.
func SeedReferenceData(db *gorm.DB) error {
	return database.Seed(db)
}
