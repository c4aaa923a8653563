package route

import (
	evidenceController "construction_backend/internals/features/evidences/evidence/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func EvidenceRoutes(router fiber.Router, db *gorm.DB, maxBytes int64, thumbnailSize int) {
	ctrl := evidenceController.NewEvidenceController(db, maxBytes, thumbnailSize)
	r := router.Group("/evidences")

	r.Get("/", ctrl.List)
	r.Post("/", ctrl.Upload)
	r.Get("/:id", ctrl.Get)
	r.Get("/:id/download", ctrl.Download)
	r.Get("/:id/thumbnail", ctrl.Thumbnail)
	r.Put("/:id", ctrl.Replace)
	r.Delete("/:id", ctrl.Delete)
}
