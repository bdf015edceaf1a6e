package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/craftora/craftora/app/controllers"
	"github.com/craftora/craftora/app/repository"
	"github.com/craftora/craftora/internal/pkg/cache"
	"github.com/craftora/craftora/internal/pkg/database"
	"github.com/craftora/craftora/internal/pkg/env"
	"github.com/craftora/craftora/internal/pkg/metrics/counter"
	"github.com/craftora/craftora/internal/pkg/router"
	"github.com/craftora/craftora/internal/pkg/storagemeter"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

func main() {
	app := NewApplication()

	flusher := counter.NewFlusher(1 * time.Minute)
	flusher.Start()

	// Graceful shutdown: flush pending denial counters before exit.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		flusher.Stop()
		if err := app.Shutdown(); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()

	repository.InitializeFactory(database.GetDB())

	s3cfg, err := storagemeter.LoadS3Config()
	if err != nil {
		log.Fatalf("Invalid S3 configuration: %v", err)
	}
	lister, err := storagemeter.NewS3Client(s3cfg)
	if err != nil {
		log.Fatalf("Failed to create S3 client: %v", err)
	}

	controllers.SetupEngine(lister)

	app := fiber.New(fiber.Config{
		AppName: "craftora",
	})
	app.Use(recover.New(), logger.New())
	app.Get("/metrics", monitor.New())

	// ROUTER
	router.InstallRouter(app)

	return app
}
