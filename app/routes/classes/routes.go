package classes

import (
	"github.com/gofiber/fiber/v2"
)

func SetupClassesRoutes(app *fiber.App) {
	api := app.Group("/api/classes")

	api.Get("/", GetAllClassesAPI)
	api.Get("/:id", GetClassAPI)
	api.Get("/:id/students", GetClassStudentsAPI)
}
