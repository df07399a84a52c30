package classes

import (
	"errors"

	"github.com/bounis0910/Att-School/app/config"
	"github.com/bounis0910/Att-School/app/database"
	"github.com/gofiber/fiber/v2"
)

func GetAllClassesAPI(c *fiber.Ctx) error {
	classes, err := database.GetAllClasses(config.GetDB())
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch classes"})
	}

	return c.JSON(fiber.Map{
		"classes": classes,
		"count":   len(classes),
	})
}

func GetClassAPI(c *fiber.Ctx) error {
	class, err := database.GetClassByID(config.GetDB(), c.Params("id"))
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Class not found"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch class"})
	}

	return c.JSON(fiber.Map{"class": class})
}

func GetClassStudentsAPI(c *fiber.Ctx) error {
	students, err := database.GetStudentsByClass(config.GetDB(), c.Params("id"))
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch students"})
	}

	return c.JSON(fiber.Map{
		"students": students,
		"count":    len(students),
	})
}
