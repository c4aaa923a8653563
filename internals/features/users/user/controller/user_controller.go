package controller

import (
	"log"
	"strconv"

	"construction_backend/internals/features/users/user/dto"
	"construction_backend/internals/features/users/user/repository"
	"construction_backend/internals/features/users/user/service"
	helper "construction_backend/internals/helpers"
	"construction_backend/internals/helpers/apperr"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type UserController struct {
	DB      *gorm.DB
	Service *service.Service
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db, Service: service.New(repository.New(db))}
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.BadRequest("Invalid id")
	}
	return uint(id), nil
}

// GET /api/users
func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	users, err := uc.Service.List(c.UserContext())
	if err != nil {
		log.Println("[ERROR] Failed to fetch users:", err)
		return err
	}
	return helper.JsonOK(c, "Users fetched successfully", dto.FromModels(users))
}

// GET /api/users/:id
func (uc *UserController) GetUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	u, err := uc.Service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "User fetched successfully", dto.FromModel(u))
}

// POST /api/users
func (uc *UserController) CreateUser(c *fiber.Ctx) error {
	var req dto.CreateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate(req); err != nil {
		return err
	}

	u, err := uc.Service.Create(c.UserContext(), req)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, "User created successfully", dto.FromModel(u))
}

// PUT /api/users/:id
func (uc *UserController) UpdateUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	var req dto.UpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return apperr.BadRequest("Invalid request body")
	}
	req.Normalize()
	if err := helper.Validate(req); err != nil {
		return err
	}

	u, err := uc.Service.Update(c.UserContext(), id, req)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, "User updated successfully", dto.FromModel(u))
}

// DELETE /api/users/:id
func (uc *UserController) DeleteUser(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := uc.Service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	log.Printf("[SUCCESS] User deleted: id=%d", id)
	return helper.JsonDeleted(c)
}
