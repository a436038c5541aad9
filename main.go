package main

import (
	"fmt"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/monitor"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/fitkart/FitKart/app/repository"
	"github.com/fitkart/FitKart/internal/pkg/cache"
	"github.com/fitkart/FitKart/internal/pkg/database"
	"github.com/fitkart/FitKart/internal/pkg/docstore"
	"github.com/fitkart/FitKart/internal/pkg/env"
	"github.com/fitkart/FitKart/internal/pkg/realtime"
	"github.com/fitkart/FitKart/internal/pkg/router"
)

func main() {
	app := NewApplication()
	err := app.Listen(fmt.Sprintf("%s:%s", env.GetEnv("APP_HOST", "localhost"), env.GetEnv("APP_PORT", "4000")))
	log.Fatal(err)
}

func NewApplication() *fiber.App {
	env.SetupEnvFile()
	database.SetupDatabase()
	cache.SetupCache()
	docstore.SetupDocStore()

	repository.InitGlobalFactory(database.GetDB())
	realtime.InitGlobal()

	app := fiber.New(fiber.Config{
		AppName: "FitKart",
	})
	app.Use(recover.New(), logger.New())
	app.Get("/metrics", monitor.New())

	// ROUTER
	router.InstallRouter(app)

	return app
}
