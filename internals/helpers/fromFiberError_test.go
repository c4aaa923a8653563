package helper

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"construction_backend/internals/helpers/apperr"

	"github.com/gofiber/fiber/v2"
)

func TestErrorHandlerMapping(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})

	cases := []struct {
		path   string
		err    error
		status int
		code   string
		msg    string
	}{
		{"/nf", apperr.NotFound("Site", 7), 404, "NOT_FOUND", "Site with ID 7 not found."},
		{"/ae", apperr.AlreadyExists("Worker with CI %s already exists.", "X1"), 409, "CONFLICT", "Worker with CI X1 already exists."},
		{"/br", apperr.BadRequest("bad %s", "date"), 400, "BAD_REQUEST", "bad date"},
		{"/dup", fmt.Errorf("insert: %w", apperr.ErrDuplicateKey), 409, "CONFLICT", "resource already exists"},
		{"/fiber", fiber.NewError(fiber.StatusRequestEntityTooLarge, "too big"), 413, "PAYLOAD_TOO_LARGE", "too big"},
		{"/boom", errors.New("boom"), 500, "INTERNAL_ERROR", "boom"},
	}
	for _, tc := range cases {
		err := tc.err
		app.Get(tc.path, func(c *fiber.Ctx) error { return err })
	}

	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tc.path, nil))
			if err != nil {
				t.Fatal(err)
			}
			defer resp.Body.Close()
			if resp.StatusCode != tc.status {
				t.Fatalf("status = %d, want %d", resp.StatusCode, tc.status)
			}
			var body ErrorResponse
			if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
				t.Fatal(err)
			}
			if body.Success || body.ErrorCode != tc.code || body.Error != tc.msg {
				t.Fatalf("unexpected body: %+v", body)
			}
		})
	}
}

func TestValidateReportsJSONFieldNames(t *testing.T) {
	type item struct {
		WorkerID uint   `json:"worker_id" validate:"required"`
		Status   string `json:"status" validate:"required,oneof=PRESENT ABSENT"`
	}
	type req struct {
		SiteID uint   `json:"site_id" validate:"required"`
		Items  []item `json:"items" validate:"dive"`
	}

	err := Validate(req{Items: []item{{WorkerID: 1, Status: "MAYBE"}}})
	var ve *apperr.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("want ValidationError, got %v", err)
	}
	if _, ok := ve.Fields["site_id"]; !ok {
		t.Fatalf("site_id missing from %v", ve.Fields)
	}
	if _, ok := ve.Fields["items[0].status"]; !ok {
		t.Fatalf("items[0].status missing from %v", ve.Fields)
	}

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/", func(c *fiber.Ctx) error { return err })
	resp, _ := app.Test(httptest.NewRequest("GET", "/", nil))
	var body ErrorResponse
	_ = json.NewDecoder(resp.Body).Decode(&body)
	if resp.StatusCode != 400 || body.ErrorCode != "VALIDATION_ERROR" || len(body.Errors) != 2 {
		t.Fatalf("unexpected response %d %+v", resp.StatusCode, body)
	}
}
