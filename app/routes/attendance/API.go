package attendance

import (
	"errors"
	"log"
	"time"

	"github.com/bounis0910/Att-School/app/config"
	"github.com/bounis0910/Att-School/app/database"
	"github.com/bounis0910/Att-School/app/models"
	"github.com/bounis0910/Att-School/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// parseDateParam parses a YYYY-MM-DD value into a date in the school zone.
func parseDateParam(dateStr string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", dateStr, config.SchoolLocation())
}

func SubmitAttendanceAPI(c *fiber.Ctx) error {
	type SubmitRequest struct {
		ClassID   string            `json:"class_id" validate:"required,uuid"`
		Date      string            `json:"date"`
		Period    *int              `json:"period" validate:"omitempty,min=1"`
		TeacherID string            `json:"teacher_id" validate:"required,uuid"`
		Statuses  map[string]string `json:"statuses" validate:"required,min=1"`
	}

	var req SubmitRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	// Date defaults to today in the school time zone
	date := config.SchoolToday()
	if req.Date != "" {
		parsed, err := parseDateParam(req.Date)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
		}
		date = parsed
	}

	statuses := make(map[string]models.AttendanceStatus, len(req.Statuses))
	for studentID, raw := range req.Statuses {
		status, err := models.ParseStatus(raw)
		if err != nil {
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		statuses[studentID] = status
	}

	db := config.GetDB()

	// Resolve the period from the schedule when the caller omits it
	period := 0
	if req.Period != nil {
		period = *req.Period
	} else {
		now := config.SchoolNow()
		at := time.Date(date.Year(), date.Month(), date.Day(), now.Hour(), now.Minute(), 0, 0, date.Location())
		resolved, ok, err := services.ResolveCurrentPeriodForClass(db, req.ClassID, at)
		if err != nil {
			return c.Status(500).JSON(fiber.Map{"error": "Failed to resolve current period"})
		}
		if !ok {
			return c.Status(400).JSON(fiber.Map{"error": "No schedule for this day. Specify a period explicitly"})
		}
		period = resolved
	}

	if _, err := database.GetClassByID(db, req.ClassID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load class"})
	}
	if _, err := database.GetUserByID(db, req.TeacherID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Teacher not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to load teacher"})
	}

	count, err := database.RecordClassAttendance(db, req.ClassID, date, period, req.TeacherID, statuses)
	if err != nil {
		switch {
		case errors.Is(err, database.ErrInvalidValue):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		case errors.Is(err, database.ErrNotFound):
			return c.Status(404).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("RecordClassAttendance Error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to save attendance"})
	}

	rebuildReportForDate(date)

	return c.JSON(fiber.Map{
		"message": "Attendance saved successfully",
		"count":   count,
		"period":  period,
		"date":    date.Format("2006-01-02"),
	})
}

func SetRemarkAPI(c *fiber.Ctx) error {
	type RemarkRequest struct {
		StudentID string `json:"student_id" validate:"required,uuid"`
		Date      string `json:"date" validate:"required"`
		Period    int    `json:"period" validate:"required,min=1"`
		Remark    string `json:"remark"`
	}

	var req RemarkRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	date, err := parseDateParam(req.Date)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	remark, err := models.ParseRemark(req.Remark)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.SetRemark(config.GetDB(), req.StudentID, date, req.Period, remark); err != nil {
		switch {
		case errors.Is(err, database.ErrNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Attendance record not found"})
		case errors.Is(err, database.ErrPreconditionFailed):
			return c.Status(412).JSON(fiber.Map{"error": "Remarks can only be set on absent records"})
		case errors.Is(err, database.ErrInvalidValue):
			return c.Status(400).JSON(fiber.Map{"error": err.Error()})
		}
		log.Printf("SetRemark Error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to set remark"})
	}

	rebuildReportForDate(date)

	return c.JSON(fiber.Map{
		"message": "Remark saved successfully",
		"remark":  remark,
	})
}

func GetAttendanceByDateAPI(c *fiber.Ctx) error {
	date, err := parseDateParam(c.Params("date"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	records, err := database.GetAttendanceByDate(config.GetDB(), date)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance records"})
	}

	return c.JSON(fiber.Map{
		"attendance": records,
		"count":      len(records),
		"date":       date.Format("2006-01-02"),
	})
}

func GetAttendanceByClassAndDateAPI(c *fiber.Ctx) error {
	classID := c.Params("classId")
	date, err := parseDateParam(c.Params("date"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	records, err := database.GetAttendanceByClassAndDate(config.GetDB(), classID, date)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch attendance records"})
	}

	return c.JSON(fiber.Map{
		"attendance": records,
		"count":      len(records),
		"date":       date.Format("2006-01-02"),
		"class_id":   classID,
	})
}

func GetClassSummaryAPI(c *fiber.Ctx) error {
	classID := c.Params("classId")
	date, err := parseDateParam(c.Params("date"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	summary, err := services.AggregateClassDay(config.GetDB(), classID, date)
	if err != nil {
		log.Printf("AggregateClassDay Error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute summary"})
	}

	return c.JSON(fiber.Map{
		"success": true,
		"summary": summary,
	})
}

func GetSchoolSummaryAPI(c *fiber.Ctx) error {
	date, err := parseDateParam(c.Params("date"))
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid date format. Use YYYY-MM-DD"})
	}

	summaries, err := services.AggregateSchoolDay(config.GetDB(), date)
	if err != nil {
		log.Printf("AggregateSchoolDay Error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to compute summary"})
	}

	return c.JSON(fiber.Map{
		"success":   true,
		"date":      date.Format("2006-01-02"),
		"summaries": summaries,
	})
}

// rebuildReportForDate regenerates the daily artifact after a write. A
// failed rebuild is logged but never fails the submission; the artifact
// is regenerated again on the next fetch.
func rebuildReportForDate(date time.Time) {
	if _, err := services.RebuildDailyReport(config.GetDB(), config.AppConfig.ReportsDir, date); err != nil {
		log.Printf("Report rebuild failed for %s: %v", date.Format("2006-01-02"), err)
	}
}
