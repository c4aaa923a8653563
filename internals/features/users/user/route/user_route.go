package routes

import (
	userController "construction_backend/internals/features/users/user/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func UserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)
	users := router.Group("/users")

	users.Get("/", ctrl.GetUsers)
	users.Get("/:id", ctrl.GetUser)
	users.Post("/", ctrl.CreateUser)
	users.Put("/:id", ctrl.UpdateUser)
	users.Delete("/:id", ctrl.DeleteUser)
}
