package routes

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/bankline/bankline/internal/account"
	"github.com/bankline/bankline/internal/auth"
	"github.com/bankline/bankline/internal/category"
	"github.com/bankline/bankline/internal/config"
	"github.com/bankline/bankline/internal/middleware"
	"github.com/bankline/bankline/internal/storage"
	"github.com/bankline/bankline/internal/user"
)

// Deps aggregates shared dependencies required to wire routes.
type Deps struct {
	Cfg    config.Config
	DB     *pgxpool.Pool
	Cache  *redis.Client
	Logger *slog.Logger
}

// Setup configures middlewares and all application routes.
func Setup(app *fiber.App, d Deps) error {
	// Enforce DB/Redis presence outside of dev, even though main also checks.
	if !d.Cfg.IsDev() {
		if d.DB == nil {
			return fmt.Errorf("database is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
		if d.Cache == nil {
			return fmt.Errorf("redis is required when APP_ENV=%s", d.Cfg.AppEnv)
		}
	}

	// Middlewares
	app.Use(recover.New())
	app.Use(middleware.RequestID())
	app.Use(logger.New(logger.Config{
		Format:     "[${time}] ${status} -  ${latency} ${method} ${path}\n",
		TimeFormat: "15:04:05",
		TimeZone:   "Local",
	}))

	// Health
	RegisterHealthRoutes(app, d)

	// Repositories: Postgres when available, in-memory otherwise.
	var (
		userRepo     user.Repository
		accountRepo  account.Repository
		categoryRepo category.Repository
		txRunner     storage.TxRunner
	)
	if d.DB != nil {
		userRepo = user.NewPostgresRepository(d.DB)
		accountRepo = account.NewPostgresRepository(d.DB)
		categoryRepo = category.NewPostgresRepository(d.DB)
		txRunner = storage.NewPgxRunner(d.DB)
	} else {
		users := user.NewMemoryRepository()
		accounts := account.NewMemoryRepository()
		categories := category.NewMemoryRepository()
		userRepo = users
		accountRepo = accounts
		categoryRepo = categories
		txRunner = storage.NewMemoryRunner(users, accounts, categories)
	}

	// Services and handlers with explicit collaborators.
	hasher := auth.NewBcryptHasher()
	issuer := auth.NewJWTIssuer(d.Cfg.JWTSecret, d.Cfg.AccessTokenTTL)
	userSvc := user.NewService(userRepo, accountRepo, categoryRepo, txRunner, hasher)
	authSvc := auth.NewService(userRepo, hasher, issuer)
	userHandler := user.NewHandler(userSvc)
	authHandler := auth.NewHandler(authSvc)

	// API routes
	api := app.Group("/api/v1")
	api.Get("/ping", func(c *fiber.Ctx) error {
		reqID, _ := c.Locals("X-Request-ID").(string)
		return c.Status(http.StatusOK).JSON(fiber.Map{
			"status":     "ok",
			"request_id": reqID,
			"timestamp":  time.Now().UTC().Format(time.RFC3339Nano),
		})
	})

	// Public routes
	RegisterUserRoutes(api, userHandler, d)
	rateLimiter := middleware.LoginRateLimit(d.Cache, 5)
	RegisterAuthRoutes(api, authHandler, rateLimiter)

	// Protected routes
	jwtmw := middleware.JWTAuth(issuer)
	protected := api.Group("", jwtmw)
	protected.Get("/users/:id", userHandler.FindByID)
	protected.Put("/users/password", userHandler.ChangePassword)

	return nil
}
