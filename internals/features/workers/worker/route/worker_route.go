package route

import (
	workerController "construction_backend/internals/features/workers/worker/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func WorkerRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := workerController.NewWorkerController(db)
	workers := router.Group("/workers")

	workers.Get("/", ctrl.List)
	workers.Get("/:id", ctrl.Get)
	workers.Post("/", ctrl.Create)
	workers.Put("/:id", ctrl.Update)
	workers.Delete("/:id", ctrl.Delete)
}
