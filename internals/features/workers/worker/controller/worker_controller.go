package controller

import (
	"strconv"

	"construction_backend/internals/features/workers/worker/dto"
	"construction_backend/internals/features/workers/worker/service"
	helper "construction_backend/internals/helpers"
	"construction_backend/internals/helpers/apperr"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type WorkerController struct {
	DB      *gorm.DB
	Service *service.Service
}

func NewWorkerController(db *gorm.DB) *WorkerController {
	return &WorkerController{DB: db, Service: service.New(db)}
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.BadRequest("Invalid id")
	}
	return uint(id), nil
}

// GET /api/workers
func (wc *WorkerController) List(c *fiber.Ctx) error {
	workers, err := wc.Service.List(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Workers fetched successfully", dto.FromModels(workers))
}

// GET /api/workers/:id
func (wc *WorkerController) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	w, err := wc.Service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Worker fetched successfully", dto.FromModel(w))
}

// POST /api/workers
func (wc *WorkerController) Create(c *fiber.Ctx) error {
	var req dto.CreateWorkerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate(req); err != nil {
		return err
	}
	w, err := wc.Service.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Worker created successfully", dto.FromModel(w))
}

// PUT /api/workers/:id
func (wc *WorkerController) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateWorkerRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate(req); err != nil {
		return err
	}
	w, err := wc.Service.Update(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Worker updated successfully", dto.FromModel(w))
}

// DELETE /api/workers/:id
func (wc *WorkerController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := wc.Service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return helper.JsonDeleted(c)
}
