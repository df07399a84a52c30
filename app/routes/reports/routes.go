package reports

import (
	"github.com/gofiber/fiber/v2"
)

func SetupReportsRoutes(app *fiber.App) {
	api := app.Group("/api/reports")

	api.Get("/:date", DownloadDailyReportAPI)
}
