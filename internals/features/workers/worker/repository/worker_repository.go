package repository

import (
	"context"
	"errors"

	database "construction_backend/internals/databases"
	attendanceModel "construction_backend/internals/features/attendances/attendance/model"
	evidenceModel "construction_backend/internals/features/evidences/evidence/model"
	progressModel "construction_backend/internals/features/progress/progress/model"
	"construction_backend/internals/features/workers/worker/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WorkerRepository struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *WorkerRepository {
	return &WorkerRepository{DB: db}
}

// FindByID returns nil, nil when no worker has that id.
func (r *WorkerRepository) FindByID(ctx context.Context, id uint) (*model.WorkerModel, error) {
	var w model.WorkerModel
	err := r.DB.WithContext(ctx).Preload("Site").First(&w, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &w, nil
}

func (r *WorkerRepository) FindAll(ctx context.Context) ([]model.WorkerModel, error) {
	var workers []model.WorkerModel
	if err := r.DB.WithContext(ctx).Preload("Site").Find(&workers).Error; err != nil {
		return nil, err
	}
	return workers, nil
}

func (r *WorkerRepository) FindBySiteID(ctx context.Context, siteID uint) ([]model.WorkerModel, error) {
	var workers []model.WorkerModel
	if err := r.DB.WithContext(ctx).Where("site_id = ?", siteID).Find(&workers).Error; err != nil {
		return nil, err
	}
	return workers, nil
}

func (r *WorkerRepository) ExistsByCi(ctx context.Context, ci string) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.WorkerModel{}).Where("ci = ?", ci).Count(&n).Error
	return n > 0, err
}

func (r *WorkerRepository) Save(ctx context.Context, w *model.WorkerModel) error {
	db := r.DB.WithContext(ctx).Omit(clause.Associations)
	if w.ID == 0 {
		return database.WrapWriteError(db.Create(w).Error)
	}
	return database.WrapWriteError(db.Save(w).Error)
}

// Delete removes the worker, its progresses (with their evidences) and
// its attendance rows in one transaction.
func (r *WorkerRepository) Delete(ctx context.Context, w *model.WorkerModel) error {
	return r.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		progressIDs := tx.Model(&progressModel.ProgressModel{}).Select("id").Where("worker_id = ?", w.ID)
		if err := tx.Where("progress_id IN (?)", progressIDs).
			Delete(&evidenceModel.EvidenceModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("worker_id = ?", w.ID).Delete(&progressModel.ProgressModel{}).Error; err != nil {
			return err
		}
		if err := tx.Where("worker_id = ?", w.ID).Delete(&attendanceModel.AttendanceModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.WorkerModel{}, w.ID).Error
	})
}
