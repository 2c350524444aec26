package main

import (
	"leaguedash/pkg/config"
	"leaguedash/pkg/logger"
	"leaguedash/scheduler/jobs"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/joho/godotenv"
)

func main() {
	// Load the environment variables if not running on Docker.
	if os.Getenv("ENVIRONMENT") != "docker" {
		if err := godotenv.Load(); err != nil {
			log.Fatal("Error loading .env file")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Couldn't initialize the configuration: %v", err)
	}

	jobLogger, err := logger.CreateLogger(cfg.Bucket)
	if err != nil {
		log.Fatalf("Couldn't create the job logger: %v", err)
	}

	log.Println("Starting scheduler.")

	// Create a new scheduler with options.
	s, err := gocron.NewScheduler(
		gocron.WithLocation(time.UTC),
	)
	if err != nil {
		log.Fatalf("Failed to create scheduler: %v", err)
	}

	// Register the roster warm job - follows the dashboard refresh window.
	_, err = s.NewJob(
		gocron.DurationJob(2*time.Minute),
		gocron.NewTask(
			jobs.RevalidateRoster,
			cfg,
			jobLogger,
		),
		gocron.WithName("roster-revalidation"),
		gocron.WithTags("roster"),
		gocron.JobOption(gocron.WithStartImmediately()),
	)
	if err != nil {
		log.Fatalf("Failed to create roster job: %v", err)
	}

	// Register the log shipping job - once per day at 4:00 AM.
	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(4, 0, 0),
			),
		),
		gocron.NewTask(
			jobs.ShipLogs,
			jobLogger,
		),
		gocron.WithName("log-shipping"),
		gocron.WithTags("logs"),
	)
	if err != nil {
		log.Fatalf("Failed to create log shipping job: %v", err)
	}

	// Start the scheduler.
	s.Start()

	defer func() {
		// Shutdown the scheduler when main() exits.
		if err := s.Shutdown(); err != nil {
			log.Printf("Error shutting down scheduler: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	// Wait for termination signal.
	<-sigChan
	log.Println("Shutting down scheduler...")
}
