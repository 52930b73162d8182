package main

import (
	"clanboard/handlers"
	"clanboard/middleware"
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	validateEnvironment()

	// Wire the shared services
	handlers.InitHandlers()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: customErrorHandler,
		BodyLimit:    1 * 1024 * 1024, // 1MB, the biggest payload is a contact table
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second, // refresh waits on two upstream calls
	})

	// Global middleware
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${status} - ${method} ${path} (${latency})\n",
	}))

	corsOrigins := os.Getenv("CORS_ORIGINS")
	if corsOrigins == "" {
		corsOrigins = "http://localhost:3000"
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins:     corsOrigins,
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	}))

	app.Use(middleware.RateLimitMiddleware())

	// Serve the dashboard page
	app.Static("/static", "./static")
	app.Get("/", serveFile("./static/index.html"))

	// API routes
	api := app.Group("/api")
	api.Post("/session", handlers.StartSession)

	// Everything past the session opener needs the session token
	authed := api.Group("", middleware.SessionMiddleware)
	authed.Delete("/session", handlers.EndSession)
	authed.Post("/clan/refresh", handlers.RefreshClan)
	authed.Get("/clan/members", handlers.GetMembers)
	authed.Get("/clan/riverrace", handlers.GetRiverRace)
	authed.Get("/contacts", handlers.GetContacts)
	authed.Put("/contacts", handlers.SaveContacts)
	authed.Get("/pending", handlers.GetPendingReport)
	authed.Get("/pending/export", handlers.ExportPending)

	// Health check endpoint
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"timestamp": time.Now().Unix(),
			"version":   "1.0.0",
		})
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}

	log.Printf("🚀 Clan board starting on port %s", port)
	log.Printf("📊 Environment: %s", getEnv("APP_ENV", "development"))
	log.Printf("🔐 CLASH_API_TOKEN configured: %v", os.Getenv("CLASH_API_TOKEN") != "")
	log.Printf("📁 Clan data directory: %s", getEnv("CLAN_DATA_DIR", "clan_data"))

	if err := app.Listen(":" + port); err != nil {
		log.Fatal("Failed to start HTTP server:", err)
	}
}

// validateEnvironment checks the startup configuration
func validateEnvironment() {
	if os.Getenv("SESSION_SECRET") == "" {
		log.Println("WARNING: SESSION_SECRET not set, using the built-in development secret")
	}
	if os.Getenv("CLASH_API_TOKEN") == "" {
		log.Println("Note: CLASH_API_TOKEN not set, operators must enter a token in the dashboard")
	}

	if os.Getenv("APP_ENV") == "production" {
		corsOrigins := os.Getenv("CORS_ORIGINS")
		if corsOrigins == "" || corsOrigins == "http://localhost:3000" {
			log.Println("WARNING: CORS_ORIGINS not properly configured for production")
		}
	}
}

// Helper functions
func serveFile(filepath string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendFile(filepath)
	}
}

func customErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
		message = e.Message
	}

	// Don't expose internal errors in production
	if os.Getenv("APP_ENV") == "production" && code == 500 {
		message = "An error occurred. Please try again later."
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   message,
	})
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
