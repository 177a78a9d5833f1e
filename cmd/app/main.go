package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kirim/cmd"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	// A missing .env is fine in containerized deployments; the environment
	// is already populated there.
	_ = godotenv.Load(".env")

	config, err := cmd.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger := newLogger(config)

	gormDB, err := gorm.Open(gorm_postgres.Open(config.DSN()), &gorm.Config{})
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to postgres")
	}

	redisClient := redis.NewClient(&redis.Options{
		Addr:     config.RedisAddr,
		Password: config.RedisPassword,
	})
	if err = redisClient.Ping(context.Background()).Err(); err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to redis")
	}

	root := cmd.NewCompositionRoot(config, gormDB, redisClient, logger)

	jobManager := root.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		logger.Fatal().Err(err).Msg("failed to start jobs")
	}
	defer jobManager.StopAll()

	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	server := root.CreateHTTPServer()
	server.RegisterRoutes(e)

	go func() {
		if startErr := e.Start("0.0.0.0:" + config.HTTPPort); startErr != nil {
			logger.Info().Err(startErr).Msg("http server stopped")
		}
	}()
	logger.Info().Str("port", config.HTTPPort).Msg("kirim started")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err = e.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("http shutdown failed")
	}
}

func newLogger(config cmd.Config) zerolog.Logger {
	if config.LogJSON {
		return zerolog.New(os.Stdout).With().Timestamp().Logger()
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
}
