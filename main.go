package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"wings/config"
	"wings/routes"
	"wings/store"
)

func main() {
	cfg := config.Load()

	st := store.New(cfg.DataDir)
	if err := st.Init(); err != nil {
		log.Fatal(err)
	}

	app := fiber.New()

	app.Use(logger.New())
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowOrigins, // comma separated
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))

	app.Static("/static", cfg.StaticDir)

	routes.RegisterRoutes(app, st)

	log.Fatal(app.Listen(":" + cfg.Port))
}
