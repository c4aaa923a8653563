package database

import (
	"log"

	attendanceModel "construction_backend/internals/features/attendances/attendance/model"
	evidenceModel "construction_backend/internals/features/evidences/evidence/model"
	progressModel "construction_backend/internals/features/progress/progress/model"
	siteModel "construction_backend/internals/features/sites/site/model"
	userModel "construction_backend/internals/features/users/user/model"
	workerModel "construction_backend/internals/features/workers/worker/model"

	"gorm.io/gorm"
)

// Migrate creates or updates every table, parents first.
func Migrate(db *gorm.DB) error {
	models := []any{
		&userModel.UserModel{},
		&siteModel.SiteModel{},
		&workerModel.WorkerModel{},
		&progressModel.ProgressModel{},
		&evidenceModel.EvidenceModel{},
		&attendanceModel.AttendanceModel{},
	}
	for _, m := range models {
		if err := db.AutoMigrate(m); err != nil {
			log.Printf("[ERROR] AutoMigrate %T: %v", m, err)
			return err
		}
	}
	log.Println("[SUCCESS] Database migrated")
	return nil
}
