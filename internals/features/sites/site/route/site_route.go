package route

import (
	siteController "construction_backend/internals/features/sites/site/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func SiteRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := siteController.NewSiteController(db)
	sites := router.Group("/sites")

	sites.Get("/", ctrl.List)
	sites.Get("/:id", ctrl.Get)
	sites.Post("/", ctrl.Create)
	sites.Put("/:id", ctrl.Update)
	sites.Delete("/:id", ctrl.Delete)
}
