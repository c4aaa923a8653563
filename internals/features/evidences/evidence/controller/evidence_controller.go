package controller

import (
	"io"
	"strconv"
	"strings"

	"construction_backend/internals/constants"
	"construction_backend/internals/features/evidences/evidence/dto"
	"construction_backend/internals/features/evidences/evidence/service"
	helper "construction_backend/internals/helpers"
	"construction_backend/internals/helpers/apperr"

	"github.com/dustin/go-humanize"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type EvidenceController struct {
	DB       *gorm.DB
	Service  *service.Service
	MaxBytes int64
}

func NewEvidenceController(db *gorm.DB, maxBytes int64, thumbnailSize int) *EvidenceController {
	return &EvidenceController{
		DB:       db,
		Service:  service.New(db, service.Options{ThumbnailSize: thumbnailSize}),
		MaxBytes: maxBytes,
	}
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, apperr.BadRequest("Invalid id")
	}
	return uint(id), nil
}

// readFile reads the "file" part and the optional "progress_id" field.
func (ctrl *EvidenceController) readFile(c *fiber.Ctx, progressRequired bool) (dto.FileInput, error) {
	var in dto.FileInput

	raw := strings.TrimSpace(c.FormValue("progress_id"))
	switch {
	case raw != "":
		id, err := strconv.ParseUint(raw, 10, 64)
		if err != nil || id == 0 {
			return in, &apperr.ValidationError{Fields: map[string]string{"progress_id": "progress_id must be a positive integer"}}
		}
		in.ProgressID = uint(id)
	case progressRequired:
		return in, &apperr.ValidationError{Fields: map[string]string{"progress_id": "progress_id is required"}}
	}

	fh, err := c.FormFile("file")
	if err != nil {
		return in, &apperr.ValidationError{Fields: map[string]string{"file": "file is required"}}
	}
	if ctrl.MaxBytes > 0 && fh.Size > ctrl.MaxBytes {
		return in, fiber.NewError(fiber.StatusRequestEntityTooLarge, constants.UploadTooLarge(humanize.Bytes(uint64(ctrl.MaxBytes))))
	}

	f, err := fh.Open()
	if err != nil {
		return in, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return in, err
	}

	in.FileName = fh.Filename
	in.Data = data
	in.ContentType = constants.DetectContentType(fh.Header.Get(fiber.HeaderContentType), fh.Filename, data)
	return in, nil
}

// POST /api/evidences (multipart: file, progress_id)
func (ctrl *EvidenceController) Upload(c *fiber.Ctx) error {
	in, err := ctrl.readFile(c, true)
	if err != nil {
		return err
	}
	e, err := ctrl.Service.Upload(c.UserContext(), in)
	if err != nil {
		return err
	}
	return helper.JsonCreated(c, constants.MsgImageUploaded, dto.UploadResponse{
		Message: constants.MsgImageUploaded,
		Image:   dto.FromModel(e),
	})
}

// PUT /api/evidences/:id (multipart: file, progress_id?)
func (ctrl *EvidenceController) Replace(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	in, err := ctrl.readFile(c, false)
	if err != nil {
		return err
	}
	e, err := ctrl.Service.Replace(c.UserContext(), id, in)
	if err != nil {
		return err
	}
	return helper.JsonUpdated(c, constants.MsgImageReplaced, dto.UploadResponse{
		Message: constants.MsgImageReplaced,
		Image:   dto.FromModel(e),
	})
}

// GET /api/evidences
func (ctrl *EvidenceController) List(c *fiber.Ctx) error {
	list, err := ctrl.Service.List(c.UserContext())
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Images fetched successfully", dto.FromModels(list))
}

// GET /api/evidences/:id
func (ctrl *EvidenceController) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	e, err := ctrl.Service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	return helper.JsonOK(c, "Image fetched successfully", dto.ToContentResponse(e))
}

// GET /api/evidences/:id/download
func (ctrl *EvidenceController) Download(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	e, err := ctrl.Service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, e.ContentType)
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+e.FileName+`"`)
	return c.Send(e.Content)
}

// GET /api/evidences/:id/thumbnail
func (ctrl *EvidenceController) Thumbnail(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	thumb, err := ctrl.Service.Thumbnail(c.UserContext(), id)
	if err != nil {
		return err
	}
	c.Set(fiber.HeaderContentType, "image/jpeg")
	c.Set(fiber.HeaderCacheControl, "public, max-age=3600")
	return c.Send(thumb)
}

// DELETE /api/evidences/:id
func (ctrl *EvidenceController) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}
	if err := ctrl.Service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return helper.JsonDeleted(c)
}
