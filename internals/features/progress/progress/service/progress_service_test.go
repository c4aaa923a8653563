package service

import (
	"context"
	"testing"
	"time"

	evidenceModel "construction_backend/internals/features/evidences/evidence/model"
	"construction_backend/internals/features/progress/progress/dto"
	"construction_backend/internals/helpers/apperr"
	"construction_backend/internals/testutil"
)

func TestProgressLifecycle(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := New(db)
	stamp := time.Date(2025, 8, 10, 9, 30, 0, 0, time.UTC)
	svc.Now = func() time.Time { return stamp }
	ctx := context.Background()

	u := testutil.CreateTestUser(t, db, "Ana", "ana@example.com")
	site := testutil.CreateTestSite(t, db, u.ID, "Torre Norte", "Av. 1")
	w := testutil.CreateTestWorker(t, db, site.ID, "Luis", "Mason", "CI-1")

	created, err := svc.Create(ctx, dto.ProgressRequest{Description: "Foundations", SiteID: site.ID, WorkerID: w.ID})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if !created.Date.Equal(stamp) || created.Site.Name != "Torre Norte" || created.Worker.Role != "Mason" {
		t.Fatalf("unexpected progress: %+v", created)
	}

	ev := evidenceModel.EvidenceModel{
		FileName: "f.jpg", OriginalFileName: "f.jpg", ContentType: "image/jpeg",
		FileSize: 1, Content: []byte{1}, ProgressID: created.ID, UploadDate: stamp,
	}
	if err := db.Create(&ev).Error; err != nil {
		t.Fatal(err)
	}

	got, err := svc.Update(ctx, created.ID, dto.ProgressRequest{Description: "Foundations done", SiteID: site.ID, WorkerID: w.ID})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if got.Description != "Foundations done" || len(got.Evidences) != 1 || got.Evidences[0].FileName != "f.jpg" {
		t.Fatalf("unexpected update result: %+v", got)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	var evidences int64
	db.Model(&evidenceModel.EvidenceModel{}).Count(&evidences)
	if evidences != 0 {
		t.Fatalf("evidences left: %d", evidences)
	}
	if _, err := svc.Get(ctx, created.ID); !apperr.IsNotFound(err) || err.Error() != "Progress with ID 1 not found." {
		t.Fatalf("get after delete: %v", err)
	}
}

func TestCreateProgressUnknownRefs(t *testing.T) {
	db := testutil.SetupTestDB(t)
	svc := New(db)
	ctx := context.Background()

	u := testutil.CreateTestUser(t, db, "Ana", "ana@example.com")
	site := testutil.CreateTestSite(t, db, u.ID, "Torre Norte", "Av. 1")

	_, err := svc.Create(ctx, dto.ProgressRequest{Description: "x", SiteID: 50, WorkerID: 1})
	if !apperr.IsNotFound(err) || err.Error() != "Site with ID 50 not found." {
		t.Fatalf("want NotFound(Site), got %v", err)
	}
	_, err = svc.Create(ctx, dto.ProgressRequest{Description: "x", SiteID: site.ID, WorkerID: 60})
	if !apperr.IsNotFound(err) || err.Error() != "Worker with ID 60 not found." {
		t.Fatalf("want NotFound(Worker), got %v", err)
	}
}
