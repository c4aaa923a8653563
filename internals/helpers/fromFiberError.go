package helper

import (
	"errors"
	"log"

	"construction_backend/internals/helpers/apperr"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler dipasang di fiber.Config. Semua error dari controller
// (apperr.*, *fiber.Error, atau error lain) berakhir di sini.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var (
		nf *apperr.NotFoundError
		ae *apperr.AlreadyExistsError
		br *apperr.BadRequestError
		ve *apperr.ValidationError
		fe *fiber.Error
	)

	switch {
	case errors.As(err, &ve):
		return JsonValidationError(c, "validation failed", ve.Fields)
	case errors.As(err, &nf):
		return JsonError(c, fiber.StatusNotFound, nf.Error())
	case errors.As(err, &ae):
		return JsonError(c, fiber.StatusConflict, ae.Error())
	case errors.As(err, &br):
		return JsonError(c, fiber.StatusBadRequest, br.Error())
	case errors.Is(err, apperr.ErrDuplicateKey):
		return JsonError(c, fiber.StatusConflict, "resource already exists")
	case errors.As(err, &fe):
		return JsonError(c, fe.Code, fe.Message)
	}

	log.Printf("[ERROR] %s %s: %v", c.Method(), c.OriginalURL(), err)
	return JsonError(c, fiber.StatusInternalServerError, err.Error())
}
