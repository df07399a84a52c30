package main

import (
	"log"

	"github.com/bounis0910/Att-School/app/config"
	"github.com/bounis0910/Att-School/app/database"
	"github.com/bounis0910/Att-School/app/routes/attendance"
	"github.com/bounis0910/Att-School/app/routes/classes"
	"github.com/bounis0910/Att-School/app/routes/reports"
	"github.com/bounis0910/Att-School/app/routes/schedule"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

// apiErrorHandler returns classified JSON errors for every route.
func apiErrorHandler(c *fiber.Ctx, err error) error {
	// Status code defaults to 500
	code := fiber.StatusInternalServerError

	// Retrieve the custom status code if it's a *fiber.Error
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}

	return c.Status(code).JSON(fiber.Map{
		"success": false,
		"error":   err.Error(),
		"code":    code,
	})
}

func main() {
	config.LoadEnv()

	// Initialize database
	config.InitDB()
	defer config.GetDB().Close()

	// Run database migrations
	if err := database.RunMigrations(config.GetDB()); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ErrorHandler: apiErrorHandler,
	})

	// Middleware
	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(cors.New())

	// Setup attendance routes
	attendance.SetupAttendanceRoutes(app)

	// Setup schedule routes
	schedule.SetupScheduleRoutes(app)

	// Setup reports routes
	reports.SetupReportsRoutes(app)

	// Setup classes routes
	classes.SetupClassesRoutes(app)

	// Catch-all route for 404 errors (must be last)
	app.Use("*", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusNotFound, "Not found")
	})

	// Start server
	log.Printf("Server starting on :%s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
