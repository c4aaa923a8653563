package repository

import (
	"context"
	"errors"

	database "construction_backend/internals/databases"
	attendanceModel "construction_backend/internals/features/attendances/attendance/model"
	evidenceModel "construction_backend/internals/features/evidences/evidence/model"
	progressModel "construction_backend/internals/features/progress/progress/model"
	"construction_backend/internals/features/sites/site/model"
	workerModel "construction_backend/internals/features/workers/worker/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type SiteRepository struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *SiteRepository {
	return &SiteRepository{DB: db}
}

// FindByID returns nil, nil when no site has that id.
func (r *SiteRepository) FindByID(ctx context.Context, id uint) (*model.SiteModel, error) {
	var site model.SiteModel
	err := r.DB.WithContext(ctx).Preload("User").First(&site, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &site, nil
}

func (r *SiteRepository) FindAll(ctx context.Context) ([]model.SiteModel, error) {
	var sites []model.SiteModel
	if err := r.DB.WithContext(ctx).Preload("User").Find(&sites).Error; err != nil {
		return nil, err
	}
	return sites, nil
}

func (r *SiteRepository) ExistsByNameAndAddress(ctx context.Context, name, address string) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.SiteModel{}).
		Where("name = ? AND address = ?", name, address).
		Count(&n).Error
	return n > 0, err
}

func (r *SiteRepository) Save(ctx context.Context, site *model.SiteModel) error {
	db := r.DB.WithContext(ctx).Omit(clause.Associations)
	if site.ID == 0 {
		return database.WrapWriteError(db.Create(site).Error)
	}
	return database.WrapWriteError(db.Save(site).Error)
}

// Delete removes the site together with everything hanging off it:
// its workers, the progresses of the site or of those workers, their
// evidences, and attendance rows pointing at the site or at a removed
// worker. All in one transaction.
func (r *SiteRepository) Delete(ctx context.Context, site *model.SiteModel) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		workerIDs := tx.Model(&workerModel.WorkerModel{}).Select("id").Where("site_id = ?", site.ID)
		progressIDs := tx.Model(&progressModel.ProgressModel{}).Select("id").
			Where("site_id = ? OR worker_id IN (?)", site.ID, workerIDs)

		if err := tx.Where("progress_id IN (?)", progressIDs).
			Delete(&evidenceModel.EvidenceModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("site_id = ? OR worker_id IN (?)", site.ID, workerIDs).
			Delete(&progressModel.ProgressModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("site_id = ? OR worker_id IN (?)", site.ID, workerIDs).
			Delete(&attendanceModel.AttendanceModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("site_id = ?", site.ID).
			Delete(&workerModel.WorkerModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.SiteModel{}, site.ID).Error
	})
}
