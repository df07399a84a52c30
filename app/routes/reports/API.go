package reports

import (
	"fmt"
	"log"
	"time"

	"github.com/bounis0910/Att-School/app/config"
	"github.com/bounis0910/Att-School/app/services"
	"github.com/gofiber/fiber/v2"
)

// DownloadDailyReportAPI regenerates the daily artifact from current
// database state and serves it. The file on disk is never trusted as a
// cache; every fetch rebuilds so the download cannot diverge from the
// database.
func DownloadDailyReportAPI(c *fiber.Ctx) error {
	date, err := time.ParseInLocation("2006-01-02", c.Params("date"), config.SchoolLocation())
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	path, err := services.RebuildDailyReport(config.GetDB(), config.AppConfig.ReportsDir, date)
	if err != nil {
		log.Printf("RebuildDailyReport Error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to build report"})
	}

	filename := fmt.Sprintf("attendance_%s.xlsx", date.Format("2006-01-02"))
	return c.Download(path, filename)
}
