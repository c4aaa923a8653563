package controller

import (
	"strconv"

	"construction_backend/internals/features/progress/progress/dto"
	"construction_backend/internals/features/progress/progress/service"
	helper "construction_backend/internals/helpers"
	"construction_backend/internals/helpers/apperr"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProgressController struct {
	DB      *gorm.DB
	Service *service.Service
}

func NewProgressController(db *gorm.DB) *ProgressController {
	return &ProgressController{DB: db, Service: service.New(db)}
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.BadRequest("Invalid id")
	}
	return uint(id), nil
}

func parseBody(c *fiber.Ctx) (dto.ProgressRequest, error) {
	var req dto.ProgressRequest
	if err := c.BodyParser(&req); err != nil {
		return req, apperr.BadRequest("Invalid request body")
	}
	req.Normalize()
	return req, helper.Validate(req)
}

// GET /api/progresses
func (ctrl *ProgressController) List(c *fiber.Ctx) error {
	list, err := ctrl.Service.List(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Progresses fetched successfully", list)
}

// GET /api/progresses/:id
func (ctrl *ProgressController) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	p, err := ctrl.Service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Progress fetched successfully", p)
}

// POST /api/progresses
func (ctrl *ProgressController) Create(c *fiber.Ctx) error {
	req, err := parseBody(c)
	if err != nil {
		return err
	}
	p, err := ctrl.Service.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Progress created successfully", p)
}

// PUT /api/progresses/:id
func (ctrl *ProgressController) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	req, err := parseBody(c)
	if err != nil {
		return err
	}
	p, err := ctrl.Service.Update(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Progress updated successfully", p)
}

// DELETE /api/progresses/:id
func (ctrl *ProgressController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := ctrl.Service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return helper.JsonDeleted(c)
}
