package controller

import (
	"strconv"

	"construction_backend/internals/features/attendances/attendance/dto"
	attendanceRepo "construction_backend/internals/features/attendances/attendance/repository"
	"construction_backend/internals/features/attendances/attendance/service"
	siteRepo "construction_backend/internals/features/sites/site/repository"
	workerRepo "construction_backend/internals/features/workers/worker/repository"
	helper "construction_backend/internals/helpers"
	"construction_backend/internals/helpers/apperr"
	"construction_backend/internals/helpers/dbtime"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type AttendanceController struct {
	DB      *gorm.DB
	Service *service.Service
}

func NewAttendanceController(db *gorm.DB) *AttendanceController {
	return &AttendanceController{
		DB: db,
		Service: service.New(
			siteRepo.New(db),
			workerRepo.New(db),
			attendanceRepo.New(db),
		),
	}
}

func parseSiteAndDate(c *fiber.Ctx) (uint, datatypes.Date, error) {
	siteID, err := strconv.ParseUint(c.Params("siteId"), 10, 64)
	if err != nil || siteID == 0 {
		return 0, datatypes.Date{}, apperr.BadRequest("Invalid site id")
	}
	date, err := dbtime.ParseDate(c.Params("date"))
	if err != nil {
		return 0, datatypes.Date{}, apperr.BadRequest("Invalid date, expected YYYY-MM-DD")
	}
	return uint(siteID), date, nil
}

// GET /api/attendances/site/:siteId/date/:date
func (ctrl *AttendanceController) ListBySiteAndDate(c *fiber.Ctx) error {
	siteID, date, err := parseSiteAndDate(c)
	if err != nil {
		return err
	}
	view, err := ctrl.Service.ListBySiteAndDate(c.UserContext(), siteID, date)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Attendance retrieved", view)
}

// POST /api/attendances/bulk
func (ctrl *AttendanceController) UpsertBulk(c *fiber.Ctx) error {
	var req dto.AttendanceBulkUpsertRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate(req); err != nil {
		return err
	}
	date, err := req.EffectiveDate()
	if err != nil {
		return apperr.BadRequest("Invalid date, expected YYYY-MM-DD")
	}

	out, err := ctrl.Service.UpsertBulk(c.UserContext(), req.SiteID, date, req.Marks())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Attendance saved", out)
}

// GET /api/attendances/site/:siteId/date/:date/export
func (ctrl *AttendanceController) Export(c *fiber.Ctx) error {
	siteID, date, err := parseSiteAndDate(c)
	if err != nil {
		return err
	}
	data, name, err := ctrl.Service.ExportDay(c.UserContext(), siteID, date)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+name+`"`)
	return c.Send(data)
}
