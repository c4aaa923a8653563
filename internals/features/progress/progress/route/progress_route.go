package routes

import (
	progressController "construction_backend/internals/features/progress/progress/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func ProgressRoutes(router fiber.Router, db *gorm.DB) {
	controller := progressController.NewProgressController(db)
	progressRoutes := router.Group("/progresses")

	progressRoutes.Get("/", controller.List)
	progressRoutes.Get("/:id", controller.Get)
	progressRoutes.Post("/", controller.Create)
	progressRoutes.Put("/:id", controller.Update)
	progressRoutes.Delete("/:id", controller.Delete)
}
