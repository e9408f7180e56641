// @title         HirePilot API
// @version       1.0
// @description   Tailors a candidate's verified career facts to a job posting.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Authorization token: "Bearer <JWT>" or "<JWT>".
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	swagger "github.com/gofiber/swagger"
	"github.com/sirupsen/logrus"

	// internal imports
	httpapi "github.com/danirodriguezz/hirepilot/api/http"
	"github.com/danirodriguezz/hirepilot/api/http/handlers"
	_ "github.com/danirodriguezz/hirepilot/docs"
	"github.com/danirodriguezz/hirepilot/pkg/config"
	"github.com/danirodriguezz/hirepilot/pkg/health"
	healthpg "github.com/danirodriguezz/hirepilot/pkg/health/checkers"
	"github.com/danirodriguezz/hirepilot/pkg/llm"
	"github.com/danirodriguezz/hirepilot/pkg/llm/providers"
	"github.com/danirodriguezz/hirepilot/pkg/logging"
	pgrepo "github.com/danirodriguezz/hirepilot/pkg/repository/postgres"
	"github.com/danirodriguezz/hirepilot/pkg/security/jwt"
	"github.com/danirodriguezz/hirepilot/pkg/storage/postgres"
	"github.com/danirodriguezz/hirepilot/pkg/tailor"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatalf("config: %v", err)
	}
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("postgres connect: %v", err)
	}
	defer pool.Close()
	if err := postgres.Migrate(ctx, pool); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	facts := pgrepo.NewCandidateRepository(pool)
	generations := pgrepo.NewGenerationRepository(pool)

	// A missing credential is not fatal: every run uses the fallback generator.
	var (
		generator tailor.Generator
		provider  string
	)
	model, err := providers.New(cfg.LLM)
	switch {
	case err == nil:
		generator = tailor.NewGenerationClient(model,
			tailor.WithTimeout(cfg.LLM.Timeout),
			tailor.WithTemperature(cfg.LLM.Temperature),
			tailor.WithClientLogger(log),
		)
		provider = model.Name()
		log.WithFields(logrus.Fields{"provider": provider, "timeout": cfg.LLM.Timeout.String()}).Info("generation provider configured")
	case errors.Is(err, llm.ErrEmptyAPIKey):
		log.Warn("LLM_API_KEY not set; CVs will be produced by the fallback generator")
	default:
		log.Fatalf("llm provider: %v", err)
	}

	svc := tailor.NewService(tailor.NewAggregator(facts), generator, generations, log)

	readiness := health.NewService(log,
		healthpg.NewPostgresChecker(pool),
		healthpg.NewGenerationChecker(provider),
	)

	app := fiber.New(fiber.Config{BodyLimit: 6 << 20})
	app.Use(recover.New())
	app.Use(fiberlogger.New())

	authMW := jwt.NewAuthMiddleware(jwt.NewVerifier(cfg.JWTSecret, cfg.JWTIssuer))
	httpapi.Register(app,
		handlers.NewHealthHandler(readiness),
		handlers.NewTailorHandler(svc),
		authMW,
		httpapi.RateLimit{Max: cfg.RateLimit.Max, Window: cfg.RateLimit.Window},
	)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	go func() {
		<-ctx.Done()
		_ = app.Shutdown()
	}()

	log.Infof("HTTP server listening on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
