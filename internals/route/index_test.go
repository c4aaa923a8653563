package routes

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"testing"

	"construction_backend/internals/testutil"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type fixture struct {
	app    *fiber.App
	db     *gorm.DB
	siteID uint
	luis   uint
	carlos uint
}

func setup(t *testing.T) fixture {
	t.Helper()
	cfg := testutil.GetTestConfig(t)
	db := testutil.SetupTestDBWithConfig(t, cfg)

	user := testutil.CreateTestUser(t, db, "Ana", "ana@example.com")
	site := testutil.CreateTestSite(t, db, user.ID, "Torre Norte", "Av. Arce 2450")
	luis := testutil.CreateTestWorker(t, db, site.ID, "Luis", "Mason", "CI-101")
	carlos := testutil.CreateTestWorker(t, db, site.ID, "Carlos", "Welder", "CI-102")

	return fixture{app: NewApp(db, cfg), db: db, siteID: site.ID, luis: luis.ID, carlos: carlos.ID}
}

func (f fixture) do(t *testing.T, req *http.Request) *http.Response {
	t.Helper()
	resp, err := f.app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", req.Method, req.URL.Path, err)
	}
	return resp
}

type summary struct {
	ID         uint   `json:"id"`
	WorkerID   uint   `json:"worker_id"`
	WorkerName string `json:"worker_name"`
	SiteID     uint   `json:"site_id"`
	SiteName   string `json:"site_name"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

type dayView struct {
	SiteID   uint      `json:"site_id"`
	SiteName string    `json:"site_name"`
	Date     string    `json:"date"`
	Items    []summary `json:"items"`
}

func TestAttendanceBulkThenList(t *testing.T) {
	f := setup(t)

	body := map[string]any{
		"site_id": f.siteID,
		"date":    "2025-08-10",
		"items": []map[string]any{
			{"worker_id": f.luis, "status": "PRESENT"},
			{"worker_id": f.carlos, "status": "LATE"},
		},
	}
	resp := f.do(t, testutil.MakeRequest(http.MethodPost, "/api/attendances/bulk", body))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("bulk status = %d", resp.StatusCode)
	}
	var created []summary
	testutil.DecodeEnvelope(t, resp, &created)
	if len(created) != 2 || created[0].WorkerName != "Luis" || created[1].Status != "LATE" {
		t.Fatalf("unexpected bulk result: %+v", created)
	}

	body["items"] = []map[string]any{{"worker_id": f.luis, "status": "ABSENT"}}
	resp = f.do(t, testutil.MakeRequest(http.MethodPost, "/api/attendances/bulk", body))
	var updated []summary
	testutil.DecodeEnvelope(t, resp, &updated)
	if len(updated) != 1 || updated[0].ID != created[0].ID {
		t.Fatalf("update did not keep identity: %+v vs %+v", updated, created[0])
	}

	resp = f.do(t, testutil.MakeRequest(http.MethodGet, fmt.Sprintf("/api/attendances/site/%d/date/2025-08-10", f.siteID), nil))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("list status = %d", resp.StatusCode)
	}
	var view dayView
	testutil.DecodeEnvelope(t, resp, &view)
	if view.SiteName != "Torre Norte" || view.Date != "2025-08-10" || len(view.Items) != 2 {
		t.Fatalf("unexpected view: %+v", view)
	}
	got := map[uint]string{}
	for _, it := range view.Items {
		got[it.WorkerID] = it.Status
	}
	if got[f.luis] != "ABSENT" || got[f.carlos] != "LATE" {
		t.Fatalf("statuses = %v", got)
	}
}

func TestAttendanceBulkUnknownSite(t *testing.T) {
	f := setup(t)
	body := map[string]any{
		"site_id": 9999,
		"items":   []map[string]any{{"worker_id": f.luis, "status": "PRESENT"}},
	}
	resp := f.do(t, testutil.MakeRequest(http.MethodPost, "/api/attendances/bulk", body))
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	env := testutil.DecodeEnvelope(t, resp, nil)
	if env.Error != "Site with ID 9999 not found." || env.ErrorCode != "NOT_FOUND" {
		t.Fatalf("unexpected error body: %+v", env)
	}
}

func TestAttendanceBulkUnknownWorkerIsPartial(t *testing.T) {
	f := setup(t)
	body := map[string]any{
		"site_id": f.siteID,
		"date":    "2025-08-10",
		"items": []map[string]any{
			{"worker_id": f.luis, "status": "PRESENT"},
			{"worker_id": 4242, "status": "PRESENT"},
		},
	}
	resp := f.do(t, testutil.MakeRequest(http.MethodPost, "/api/attendances/bulk", body))
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}

	resp = f.do(t, testutil.MakeRequest(http.MethodGet, fmt.Sprintf("/api/attendances/site/%d/date/2025-08-10", f.siteID), nil))
	var view dayView
	testutil.DecodeEnvelope(t, resp, &view)
	if len(view.Items) != 1 || view.Items[0].WorkerID != f.luis {
		t.Fatalf("first item should be persisted: %+v", view.Items)
	}
}

func TestAttendanceBulkValidation(t *testing.T) {
	f := setup(t)
	tests := []struct {
		name  string
		body  map[string]any
		field string
	}{
		{"missing site", map[string]any{"items": []any{}}, "site_id"},
		{"bad status", map[string]any{"site_id": f.siteID, "items": []map[string]any{{"worker_id": f.luis, "status": "HOLIDAY"}}}, "items[0].status"},
		{"missing worker", map[string]any{"site_id": f.siteID, "items": []map[string]any{{"status": "LATE"}}}, "items[0].worker_id"},
		{"bad date", map[string]any{"site_id": f.siteID, "date": "10/08/2025", "items": []any{}}, "date"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := f.do(t, testutil.MakeRequest(http.MethodPost, "/api/attendances/bulk", tt.body))
			if resp.StatusCode != http.StatusBadRequest {
				t.Fatalf("status = %d, want 400", resp.StatusCode)
			}
			env := testutil.DecodeEnvelope(t, resp, nil)
			if env.ErrorCode != "VALIDATION_ERROR" || env.Errors[tt.field] == "" {
				t.Fatalf("want error on %q, got %+v", tt.field, env.Errors)
			}
		})
	}
}

func TestAttendanceListBadParams(t *testing.T) {
	f := setup(t)
	for _, path := range []string{
		"/api/attendances/site/abc/date/2025-08-10",
		fmt.Sprintf("/api/attendances/site/%d/date/2025-13-45", f.siteID),
	} {
		resp := f.do(t, testutil.MakeRequest(http.MethodGet, path, nil))
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: status = %d, want 400", path, resp.StatusCode)
		}
	}
}

func TestAttendanceExport(t *testing.T) {
	f := setup(t)
	body := map[string]any{
		"site_id": f.siteID,
		"date":    "2025-08-10",
		"items":   []map[string]any{{"worker_id": f.luis, "status": "PRESENT"}},
	}
	f.do(t, testutil.MakeRequest(http.MethodPost, "/api/attendances/bulk", body)).Body.Close()

	resp := f.do(t, testutil.MakeRequest(http.MethodGet, fmt.Sprintf("/api/attendances/site/%d/date/2025-08-10/export", f.siteID), nil))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("export status = %d", resp.StatusCode)
	}
	raw, _ := io.ReadAll(resp.Body)
	resp.Body.Close()

	wb, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer wb.Close()
	rows, err := wb.GetRows(wb.GetSheetName(wb.GetActiveSheetIndex()))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 2 {
		t.Fatalf("rows = %d, want header + 1", len(rows))
	}
	if rows[1][2] != "Luis" || rows[1][4] != "2025-08-10" || rows[1][5] != "PRESENT" {
		t.Fatalf("unexpected row: %v", rows[1])
	}
}

func TestHealth(t *testing.T) {
	f := setup(t)
	resp := f.do(t, testutil.MakeRequest(http.MethodGet, "/health", nil))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("health = %d", resp.StatusCode)
	}
	if resp.Header.Get("X-Request-ID") == "" {
		t.Fatal("missing X-Request-ID header")
	}
}

func TestSiteDeleteCascades(t *testing.T) {
	f := setup(t)
	body := map[string]any{
		"site_id": f.siteID,
		"date":    "2025-08-10",
		"items":   []map[string]any{{"worker_id": f.luis, "status": "PRESENT"}},
	}
	f.do(t, testutil.MakeRequest(http.MethodPost, "/api/attendances/bulk", body)).Body.Close()
	testutil.CreateTestProgress(t, f.db, f.siteID, f.carlos, "Columns poured")

	resp := f.do(t, testutil.MakeRequest(http.MethodDelete, fmt.Sprintf("/api/sites/%d", f.siteID), nil))
	if resp.StatusCode != http.StatusNoContent {
		t.Fatalf("delete status = %d", resp.StatusCode)
	}
	for _, table := range []string{"workers", "progresses", "attendances", "sites"} {
		var n int64
		f.db.Table(table).Count(&n)
		if n != 0 {
			t.Fatalf("%s still has %d rows", table, n)
		}
	}

	resp = f.do(t, testutil.MakeRequest(http.MethodGet, fmt.Sprintf("/api/sites/%d", f.siteID), nil))
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("get after delete = %d", resp.StatusCode)
	}
}

func TestWorkerDuplicateCI(t *testing.T) {
	f := setup(t)
	body := map[string]any{"name": "Otro", "role": "Helper", "ci": "CI-101", "site_id": 9999}
	resp := f.do(t, testutil.MakeRequest(http.MethodPost, "/api/workers", body))
	// ci is checked before the site
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("status = %d, want 409", resp.StatusCode)
	}
}
