package schedule

import (
	"github.com/gofiber/fiber/v2"
)

func SetupScheduleRoutes(app *fiber.App) {
	api := app.Group("/api/schedule")

	api.Get("/", GetAllPeriodsAPI)
	api.Get("/today/:classId", GetTodayScheduleAPI)
	api.Get("/:id", GetPeriodAPI)
	api.Post("/", CreatePeriodAPI)
	api.Put("/:id", UpdatePeriodAPI)
	api.Delete("/:id", DeletePeriodAPI)
}
