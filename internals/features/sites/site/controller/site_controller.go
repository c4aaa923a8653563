package controller

import (
	"strconv"

	"construction_backend/internals/features/sites/site/dto"
	"construction_backend/internals/features/sites/site/service"
	helper "construction_backend/internals/helpers"
	"construction_backend/internals/helpers/apperr"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type SiteController struct {
	DB      *gorm.DB
	Service *service.Service
}

func NewSiteController(db *gorm.DB) *SiteController {
	return &SiteController{DB: db, Service: service.New(db)}
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.BadRequest("Invalid id")
	}
	return uint(id), nil
}

func parseBody(c *fiber.Ctx) (dto.SiteRequest, error) {
	var req dto.SiteRequest
	if err := c.BodyParser(&req); err != nil {
		return req, apperr.BadRequest("Invalid request body")
	}
	req.Normalize()
	return req, helper.Validate(req)
}

// GET /api/sites
func (sc *SiteController) List(c *fiber.Ctx) error {
	sites, err := sc.Service.List(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Sites fetched successfully", sites)
}

// GET /api/sites/:id
func (sc *SiteController) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	site, err := sc.Service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Site fetched successfully", site)
}

// POST /api/sites
func (sc *SiteController) Create(c *fiber.Ctx) error {
	req, err := parseBody(c)
	if err != nil {
		return err
	}
	site, err := sc.Service.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "Site created successfully", site)
}

// PUT /api/sites/:id
func (sc *SiteController) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	req, err := parseBody(c)
	if err != nil {
		return err
	}
	site, err := sc.Service.Update(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "Site updated successfully", site)
}

// DELETE /api/sites/:id
func (sc *SiteController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := sc.Service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return helper.JsonDeleted(c)
}
