package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/rpupo63/job-tracker-backend/api"
	"github.com/rpupo63/job-tracker-backend/auth"
	"github.com/rpupo63/job-tracker-backend/config"
	"github.com/rpupo63/job-tracker-backend/database"
	"github.com/rpupo63/job-tracker-backend/export"
	"github.com/rpupo63/job-tracker-backend/models"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("No .env file loaded")
	}

	c := config.New()
	if config.GetBool(c, "DEBUG", false) {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	log.Info().Msg("Initializing app...")
	ctx := context.Background()

	db, err := database.Open(c)
	if err != nil {
		log.Fatal().Err(err).Msg("Error connecting to database")
	}

	if config.GetBool(c, "AUTO_MIGRATE", true) {
		if err := models.Migrate(db); err != nil {
			log.Fatal().Err(err).Msg("Error migrating schema")
		}
	}

	// If generating models, run generation and exit
	if config.GetBool(c, "GENERATE_MODELS", false) {
		log.Info().Msg("Generating models and query helpers...")
		if err := models.GenerateModels(db, config.GetString(c, "GENERATE_MODELS_PATH", "./query")); err != nil {
			log.Fatal().Err(err).Msg("Error generating models")
		}
		return
	}

	currentDB := database.New(db)

	if config.GetBool(c, "SEED_DEFAULT_USERS", false) {
		if err := database.SeedDefaultUsers(ctx, currentDB.UserRepo()); err != nil {
			log.Fatal().Err(err).Msg("Error seeding default users")
		}
	}

	var getter config.ParameterGetter
	if config.GetString(c, "JWT_SECRET_SSM_PARAM", "") != "" {
		getter, err = config.NewParameterGetter(ctx, config.GetString(c, "AWS_REGION", ""))
		if err != nil {
			log.Fatal().Err(err).Msg("Error creating parameter store client")
		}
	}
	secret, err := config.ResolveSecret(ctx, c, "JWT_SECRET", getter)
	if err != nil {
		log.Fatal().Err(err).Msg("Error resolving JWT secret")
	}

	ttl := time.Duration(config.GetInt(c, "SESSION_TTL_HOURS", 168)) * time.Hour
	sessions, err := auth.NewSessions(secret, ttl)
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing sessions")
	}

	archiver, err := export.NewS3Archiver(ctx, config.GetString(c, "AWS_REGION", ""), config.GetString(c, "EXPORT_ARCHIVE_BUCKET", ""))
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing export archiver")
	}

	// Room for the signal and for Start's ErrServerClosed once shutdown runs;
	// nothing reads the second value.
	errChannel := make(chan error, 2)

	server, err := api.NewServer(c, currentDB, api.Dependencies{
		Sessions: sessions,
		Archiver: archiver,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("Error initializing server")
	}

	go server.Start(errChannel)

	// Listen for interrupt signals to gracefully shutdown the server
	go listenToInterrupt(errChannel)

	fatalErr := <-errChannel
	log.Info().Err(fatalErr).Msg("Closing server")

	server.ShutdownGracefully(30 * time.Second)
}

// listenToInterrupt waits for SIGINT or SIGTERM and then sends an error to the error channel.
func listenToInterrupt(errChannel chan<- error) {
	c := make(chan os.Signal, 1)
	signal.Notify(c, syscall.SIGINT, syscall.SIGTERM)
	errChannel <- fmt.Errorf("%s", <-c)
}
