package route

import (
	attendanceController "construction_backend/internals/features/attendances/attendance/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func AttendanceRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := attendanceController.NewAttendanceController(db)
	r := router.Group("/attendances")

	r.Get("/site/:siteId/date/:date", ctrl.ListBySiteAndDate)
	r.Get("/site/:siteId/date/:date/export", ctrl.Export)
	r.Post("/bulk", ctrl.UpsertBulk)
}
