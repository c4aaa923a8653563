package seeds

import (
	"os"
	"path/filepath"
	"testing"

	siteModel "construction_backend/internals/features/sites/site/model"
	userModel "construction_backend/internals/features/users/user/model"
	workerModel "construction_backend/internals/features/workers/worker/model"
	"construction_backend/internals/testutil"
)

func TestRunAllSeedsIsRepeatable(t *testing.T) {
	db := testutil.SetupTestDB(t)

	for i := 0; i < 2; i++ {
		if err := RunAllSeeds(db, "data_construction.json"); err != nil {
			t.Fatalf("run %d: %v", i+1, err)
		}
	}

	var users, sites, workers int64
	db.Model(&userModel.UserModel{}).Count(&users)
	db.Model(&siteModel.SiteModel{}).Count(&sites)
	db.Model(&workerModel.WorkerModel{}).Count(&workers)
	if users != 2 || sites != 2 || workers != 3 {
		t.Fatalf("users=%d sites=%d workers=%d, want 2/2/3", users, sites, workers)
	}

	var luis workerModel.WorkerModel
	if err := db.Preload("Site").Where("ci = ?", "4829301").First(&luis).Error; err != nil {
		t.Fatal(err)
	}
	if luis.Site == nil || luis.Site.Name != "Torre Norte" {
		t.Fatalf("worker attached to wrong site: %+v", luis.Site)
	}
}

func TestRunAllSeedsUnknownOwner(t *testing.T) {
	db := testutil.SetupTestDB(t)
	path := filepath.Join(t.TempDir(), "seed.json")
	body := `{"sites":[{"name":"X","address":"Y","user_email":"nobody@example.com"}]}`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := RunAllSeeds(db, path); err == nil {
		t.Fatal("expected error for unknown owner")
	}
	var sites int64
	db.Model(&siteModel.SiteModel{}).Count(&sites)
	if sites != 0 {
		t.Fatalf("sites = %d, want 0 after rollback", sites)
	}
}
