// Package testutil opens throwaway SQLite databases and inserts fixtures
// for package tests.
package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"construction_backend/internals/configs"
	database "construction_backend/internals/databases"
	progressModel "construction_backend/internals/features/progress/progress/model"
	siteModel "construction_backend/internals/features/sites/site/model"
	userModel "construction_backend/internals/features/users/user/model"
	workerModel "construction_backend/internals/features/workers/worker/model"

	"gorm.io/gorm"
)

// GetTestConfig returns a config pointing at a fresh SQLite file.
func GetTestConfig(t *testing.T) configs.Config {
	t.Helper()
	return configs.Config{
		Port:                  "0",
		DBDriver:              "sqlite",
		SQLitePath:            filepath.Join(t.TempDir(), "test.db"),
		DBLogLevel:            "silent",
		Timezone:              "UTC",
		CorsAllowOrigins:      []string{"*"},
		RateLimitMax:          1000,
		RequestTimeout:        5 * time.Second,
		EvidenceMaxBytes:      5 << 20,
		EvidenceThumbnailSize: 64,
	}
}

// SetupTestDB creates a migrated database that is closed when the test ends.
func SetupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	return SetupTestDBWithConfig(t, GetTestConfig(t))
}

func SetupTestDBWithConfig(t *testing.T, cfg configs.Config) *gorm.DB {
	t.Helper()
	db, err := database.Connect(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	database.TunePool(db, cfg.DBDriver)
	t.Cleanup(func() { database.Close(db) })

	if err := database.Migrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}
	return db
}

func CreateTestUser(t *testing.T, db *gorm.DB, name, email string) *userModel.UserModel {
	t.Helper()
	u := &userModel.UserModel{Name: name, Email: email, Password: "not-a-real-hash"}
	if err := db.Create(u).Error; err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return u
}

func CreateTestSite(t *testing.T, db *gorm.DB, userID uint, name, address string) *siteModel.SiteModel {
	t.Helper()
	s := &siteModel.SiteModel{Name: name, Address: address, UserID: userID}
	if err := db.Omit("User").Create(s).Error; err != nil {
		t.Fatalf("Failed to create test site: %v", err)
	}
	return s
}

func CreateTestWorker(t *testing.T, db *gorm.DB, siteID uint, name, role, ci string) *workerModel.WorkerModel {
	t.Helper()
	w := &workerModel.WorkerModel{Name: name, Role: role, CI: ci, SiteID: siteID}
	if err := db.Omit("Site").Create(w).Error; err != nil {
		t.Fatalf("Failed to create test worker: %v", err)
	}
	return w
}

func CreateTestProgress(t *testing.T, db *gorm.DB, siteID, workerID uint, description string) *progressModel.ProgressModel {
	t.Helper()
	p := &progressModel.ProgressModel{
		Description: description,
		Date:        time.Now(),
		SiteID:      siteID,
		WorkerID:    workerID,
	}
	if err := db.Omit("Site", "Worker").Create(p).Error; err != nil {
		t.Fatalf("Failed to create test progress: %v", err)
	}
	return p
}

// MakeRequest builds a JSON request for app.Test.
func MakeRequest(method, path string, body interface{}) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return req
}

// Envelope is the success body shape of every JSON endpoint.
type Envelope struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Data      json.RawMessage   `json:"data"`
	Error     string            `json:"error"`
	ErrorCode string            `json:"error_code"`
	Errors    map[string]string `json:"errors"`
}

// DecodeEnvelope reads the response body and, when out is non-nil,
// unmarshals Data into it.
func DecodeEnvelope(t *testing.T, resp *http.Response, out any) Envelope {
	t.Helper()
	defer resp.Body.Close()
	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			t.Fatalf("Failed to decode data: %v", err)
		}
	}
	return env
}
