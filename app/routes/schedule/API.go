package schedule

import (
	"errors"
	"fmt"
	"log"

	"github.com/bounis0910/Att-School/app/config"
	"github.com/bounis0910/Att-School/app/database"
	"github.com/bounis0910/Att-School/app/models"
	"github.com/bounis0910/Att-School/app/services"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type periodRequest struct {
	DayOfWeek    int     `json:"day_of_week" validate:"min=0,max=6"`
	PeriodNumber int     `json:"period_number" validate:"required,min=1"`
	StartTime    string  `json:"start_time"`
	EndTime      string  `json:"end_time"`
	ClassID      *string `json:"class_id" validate:"omitempty,uuid"`
}

func (r *periodRequest) toPeriod() (*models.Period, error) {
	period := &models.Period{
		DayOfWeek:    r.DayOfWeek,
		PeriodNumber: r.PeriodNumber,
		ClassID:      r.ClassID,
	}
	if r.ClassID != nil && *r.ClassID == "" {
		period.ClassID = nil
	}
	if r.StartTime != "" {
		t, err := models.ParseTimeOfDay(r.StartTime)
		if err != nil {
			return nil, err
		}
		period.StartTime = &t
	}
	if r.EndTime != "" {
		t, err := models.ParseTimeOfDay(r.EndTime)
		if err != nil {
			return nil, err
		}
		period.EndTime = &t
	}
	if period.HasTimeRange() && *period.EndTime < *period.StartTime {
		return nil, fmt.Errorf("end time %s is before start time %s", period.EndTime, period.StartTime)
	}
	return period, nil
}

func duplicateMessage(period *models.Period) string {
	return fmt.Sprintf("Period %d already exists for %s. Please choose a different period number or day.",
		period.PeriodNumber, models.DayNames[period.DayOfWeek])
}

func GetAllPeriodsAPI(c *fiber.Ctx) error {
	periods, err := database.GetAllPeriods(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch periods"})
	}

	return c.JSON(fiber.Map{
		"periods": periods,
		"count":   len(periods),
	})
}

// GetTodayScheduleAPI returns today's periods for a class together with
// the period resolved as current, for the recording panel.
func GetTodayScheduleAPI(c *fiber.Ctx) error {
	classID := c.Params("classId")
	if classID == "" {
		return c.Status(400).JSON(fiber.Map{"error": "Class ID is required"})
	}

	now := config.SchoolNow()
	periods, err := database.GetPeriodsForClassDay(config.GetDB(), models.DayOfWeekFor(now), classID)
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch periods"})
	}

	response := fiber.Map{
		"periods":  periods,
		"count":    len(periods),
		"day_name": models.DayNames[models.DayOfWeekFor(now)],
	}
	if current, ok := services.ResolveCurrentPeriod(periods, now); ok {
		response["current_period"] = current
	}
	return c.JSON(response)
}

func GetPeriodAPI(c *fiber.Ctx) error {
	period, err := database.GetPeriodByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Period not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch period"})
	}

	return c.JSON(fiber.Map{"period": period})
}

func CreatePeriodAPI(c *fiber.Ctx) error {
	var req periodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	period, err := req.toPeriod()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	if err := database.CreatePeriod(config.GetDB(), period); err != nil {
		if errors.Is(err, database.ErrDuplicatePeriod) {
			return c.Status(409).JSON(fiber.Map{"error": duplicateMessage(period)})
		}
		log.Printf("CreatePeriod Error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create period"})
	}

	return c.Status(201).JSON(fiber.Map{
		"message": "Period created successfully",
		"period":  period,
	})
}

func UpdatePeriodAPI(c *fiber.Ctx) error {
	periodID := c.Params("id")

	var req periodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if err := validate.Struct(&req); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}

	period, err := req.toPeriod()
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	period.ID = periodID

	if err := database.UpdatePeriod(config.GetDB(), period); err != nil {
		switch {
		case errors.Is(err, database.ErrDuplicatePeriod):
			return c.Status(409).JSON(fiber.Map{"error": duplicateMessage(period)})
		case errors.Is(err, database.ErrNotFound):
			return c.Status(404).JSON(fiber.Map{"error": "Period not found"})
		}
		log.Printf("UpdatePeriod Error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update period"})
	}

	return c.JSON(fiber.Map{
		"message": "Period updated successfully",
		"period":  period,
	})
}

func DeletePeriodAPI(c *fiber.Ctx) error {
	periodID := c.Params("id")

	if err := database.DeletePeriod(config.GetDB(), periodID); err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Period not found"})
		}
		log.Printf("DeletePeriod Error: %v", err)
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete period"})
	}

	return c.JSON(fiber.Map{"message": "Period deleted successfully"})
}
