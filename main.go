package main

import (
	"log"
	"yogveda/config"
	"yogveda/database"
	accommodationRoutes "yogveda/routers/accommodationRoutes"
	authRoutes "yogveda/routers/authRoutes"
	enrollmentRoutes "yogveda/routers/enrollmentRoutes"
	userRoutes "yogveda/routers/userRoutes"
	workshopRoutes "yogveda/routers/workshopRoutes"
	"yogveda/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	authRoutes.SetupAuthRoutes(app)
	userRoutes.SetupUserRoutes(app)
	workshopRoutes.SetupWorkshopRoutes(app)
	workshopRoutes.SetupAdminWorkshopRoutes(app)
	enrollmentRoutes.SetupEnrollmentRoutes(app)
	accommodationRoutes.SetupAccommodationRoutes(app)

	utils.InitializeCertificateScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
