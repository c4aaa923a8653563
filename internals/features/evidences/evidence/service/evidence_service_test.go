package service

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"construction_backend/internals/features/evidences/evidence/dto"
	"construction_backend/internals/helpers/apperr"
	"construction_backend/internals/testutil"

	"gorm.io/gorm"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 120, 80))
	for x := 0; x < 120; x++ {
		img.Set(x, x%80, color.RGBA{R: 200, A: 255})
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func setup(t *testing.T) (*Service, *gorm.DB, uint) {
	t.Helper()
	db := testutil.SetupTestDB(t)
	u := testutil.CreateTestUser(t, db, "Ana", "ana@example.com")
	site := testutil.CreateTestSite(t, db, u.ID, "Torre Norte", "Av. 1")
	w := testutil.CreateTestWorker(t, db, site.ID, "Luis", "Mason", "CI-1")
	p := testutil.CreateTestProgress(t, db, site.ID, w.ID, "Walls")
	return New(db, Options{ThumbnailSize: 40}), db, p.ID
}

func TestUploadStoresImageAndThumbnail(t *testing.T) {
	svc, _, progressID := setup(t)
	ctx := context.Background()

	e, err := svc.Upload(ctx, dto.FileInput{FileName: "wall east.png", ContentType: "image/png", Data: pngBytes(t), ProgressID: progressID})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if e.FileName != "wall_east.png" || e.OriginalFileName != "wall east.png" {
		t.Fatalf("names = %q / %q", e.FileName, e.OriginalFileName)
	}

	thumb, err := svc.Thumbnail(ctx, e.ID)
	if err != nil {
		t.Fatalf("thumbnail: %v", err)
	}
	cfg, format, err := image.DecodeConfig(bytes.NewReader(thumb))
	if err != nil || format != "jpeg" || cfg.Width > 40 || cfg.Height > 40 {
		t.Fatalf("thumbnail %s %dx%d err=%v", format, cfg.Width, cfg.Height, err)
	}

	list, err := svc.List(ctx)
	if err != nil {
		t.Fatal(err)
	}
	resp := dto.FromModels(list)
	if resp.Total != 1 || resp.Images[0].FileSizeHuman == "" {
		t.Fatalf("unexpected list: %+v", resp)
	}
}

func TestUploadRejections(t *testing.T) {
	svc, _, progressID := setup(t)
	ctx := context.Background()
	img := pngBytes(t)

	if _, err := svc.Upload(ctx, dto.FileInput{FileName: "photo.png", ContentType: "image/png", Data: img, ProgressID: progressID}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		in    dto.FileInput
		check func(error) bool
		msg   string
	}{
		{"empty", dto.FileInput{FileName: "a.png", ContentType: "image/png", ProgressID: progressID}, isBadRequest, "The uploaded file is empty."},
		{"not an image", dto.FileInput{FileName: "a.txt", ContentType: "text/plain", Data: []byte("hi"), ProgressID: progressID}, isBadRequest, "Only image files are allowed."},
		{"name taken", dto.FileInput{FileName: "photo.png", ContentType: "image/png", Data: img, ProgressID: progressID}, apperr.IsAlreadyExists, ""},
		{"unknown progress", dto.FileInput{FileName: "b.png", ContentType: "image/png", Data: img, ProgressID: 999}, apperr.IsNotFound, "Progress with ID 999 not found."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Upload(ctx, tt.in)
			if !tt.check(err) {
				t.Fatalf("unexpected error type: %v", err)
			}
			if tt.msg != "" && err.Error() != tt.msg {
				t.Fatalf("message = %q, want %q", err.Error(), tt.msg)
			}
		})
	}
}

func TestUploadUndecodableImageHasNoThumbnail(t *testing.T) {
	svc, _, progressID := setup(t)
	ctx := context.Background()

	e, err := svc.Upload(ctx, dto.FileInput{FileName: "raw.heic", ContentType: "image/heic", Data: []byte("not really heic"), ProgressID: progressID})
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	if _, err := svc.Thumbnail(ctx, e.ID); !apperr.IsNotFound(err) {
		t.Fatalf("want NotFound thumbnail, got %v", err)
	}
}

func TestReplaceKeepsOwnName(t *testing.T) {
	svc, _, progressID := setup(t)
	ctx := context.Background()
	img := pngBytes(t)

	e, _ := svc.Upload(ctx, dto.FileInput{FileName: "photo.png", ContentType: "image/png", Data: img, ProgressID: progressID})
	other, _ := svc.Upload(ctx, dto.FileInput{FileName: "other.png", ContentType: "image/png", Data: img, ProgressID: progressID})

	got, err := svc.Replace(ctx, e.ID, dto.FileInput{FileName: "photo.png", ContentType: "image/png", Data: img[:len(img)-1]})
	if err != nil {
		t.Fatalf("replace with own name: %v", err)
	}
	if got.FileSize != int64(len(img)-1) || got.ProgressID != progressID {
		t.Fatalf("unexpected replace result: %+v", got)
	}

	if _, err := svc.Replace(ctx, e.ID, dto.FileInput{FileName: "other.png", ContentType: "image/png", Data: img}); !apperr.IsAlreadyExists(err) {
		t.Fatalf("want AlreadyExists, got %v", err)
	}

	if err := svc.Delete(ctx, other.ID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Get(ctx, other.ID); !apperr.IsNotFound(err) {
		t.Fatalf("get after delete: %v", err)
	}
}

func isBadRequest(err error) bool {
	var br *apperr.BadRequestError
	return errors.As(err, &br)
}
