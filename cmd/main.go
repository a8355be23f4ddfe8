package main

import (
	"database/sql"
	"fmt"
	"os"
	"time"

	"github.com/go-redis/redis/v8"
	_ "github.com/go-sql-driver/mysql"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"shop-service/internal/api"
	"shop-service/internal/auth"
	"shop-service/internal/config"
	"shop-service/internal/repository"
	"shop-service/internal/service"
	"shop-service/migrations"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

func connectDB(cfg config.DatabaseConfig) (*sql.DB, error) {
	var db *sql.DB
	var err error
	for i := 0; i < 10; i++ {
		db, err = sql.Open("mysql", cfg.DSN())
		if err == nil {
			err = db.Ping()
			if err == nil {
				logger.Info().Msgf("Connected to DB %s", cfg.Name)
				return db, nil
			}
		}
		logger.Warn().Err(err).Msgf("Retry %d: failed to connect to DB %s (%s:%s)", i+1, cfg.Name, cfg.Host, cfg.Port)
		time.Sleep(3 * time.Second)
	}
	return nil, fmt.Errorf("failed to connect to DB %s at %s:%s after retries: %w", cfg.Name, cfg.Host, cfg.Port, err)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to load config")
	}

	db, err := connectDB(cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to connect to database")
	}

	// Destructive by design: every start wipes the previous schema, so
	// this service must not share a database with anything else.
	if err := migrations.Drop(db); err != nil {
		logger.Fatal().Err(err).Msg("Failed to drop schema")
	}
	logger.Info().Msg("Database cleared")

	if err := migrations.Create(db); err != nil {
		logger.Fatal().Err(err).Msg("Failed to create schema")
	}
	logger.Info().Msg("Database created")

	var rdb *redis.Client
	if cfg.Redis.Address != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr: cfg.Redis.Address,
		})
	}

	kafkaWriter := cfg.Kafka.NewWriter()
	issuer := auth.NewTokenIssuer(cfg.Auth.SecretKey)

	userRepo := repository.NewUserRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	userService := service.NewUserService(*userRepo, issuer, cfg.TokenTTL(), rdb)
	productService := service.NewProductService(*productRepo)
	orderService := service.NewOrderService(*orderRepo, kafkaWriter)

	userHandler := api.NewUserHandler(*userService)
	productHandler := api.NewProductHandler(*productService)
	orderHandler := api.NewOrderHandler(*orderService)

	e := echo.New()
	e.Validator = api.NewRequestValidator()

	limiterConfig := middleware.RateLimiterConfig{
		Skipper: middleware.DefaultSkipper,
		Store: middleware.NewRateLimiterMemoryStoreWithConfig(
			middleware.RateLimiterMemoryStoreConfig{
				Rate:      rate.Limit(10),
				Burst:     30,
				ExpiresIn: 3 * time.Minute,
			}),
		IdentifierExtractor: func(context echo.Context) (string, error) {
			return context.Request().RemoteAddr, nil
		},
		ErrorHandler: func(context echo.Context, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(context echo.Context, identifier string, err error) error {
			return context.JSON(429, map[string]string{"error": "rate limit exceeded"})
		},
	}

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.RateLimiterWithConfig(limiterConfig))

	e.POST("/token", userHandler.Login)
	e.POST("/users/", userHandler.CreateUser)
	e.GET("/users/", userHandler.ListUsers)
	e.POST("/products/", productHandler.CreateProduct)
	e.GET("/products/", productHandler.ListProducts)
	e.POST("/orders/", orderHandler.CreateOrder)
	e.GET("/orders/", orderHandler.ListOrders)

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]interface{}{
			"status":  "ok",
			"service": "shop-service",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	e.Logger.Fatal(e.Start(":" + cfg.Server.Port))
}
