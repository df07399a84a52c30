package attendance

import (
	"github.com/gofiber/fiber/v2"
)

func SetupAttendanceRoutes(app *fiber.App) {
	api := app.Group("/api/attendance")

	api.Post("/", SubmitAttendanceAPI)
	api.Post("/remark", SetRemarkAPI)
	api.Get("/date/:date", GetAttendanceByDateAPI)
	api.Get("/class/:classId/date/:date", GetAttendanceByClassAndDateAPI)

	// Aggregate summaries for dashboards
	api.Get("/summary/date/:date", GetSchoolSummaryAPI)
	api.Get("/summary/:classId/date/:date", GetClassSummaryAPI)
}
