package repository

import (
	"context"
	"errors"

	database "construction_backend/internals/databases"
	"construction_backend/internals/features/attendances/attendance/model"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AttendanceRepository struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{DB: db}
}

// FindBySiteIDAndDate matches on the site stored on the attendance row,
// not on the worker's current site. No ORDER BY.
func (r *AttendanceRepository) FindBySiteIDAndDate(ctx context.Context, siteID uint, date datatypes.Date) ([]model.AttendanceModel, error) {
	var rows []model.AttendanceModel
	err := r.DB.WithContext(ctx).
		Preload("Worker").
		Preload("Site").
		Where("site_id = ? AND attendance_date = ?", siteID, date).
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// FindByWorkerIDAndDate returns nil, nil when the worker has no mark that day.
func (r *AttendanceRepository) FindByWorkerIDAndDate(ctx context.Context, workerID uint, date datatypes.Date) (*model.AttendanceModel, error) {
	var a model.AttendanceModel
	err := r.DB.WithContext(ctx).
		Where("worker_id = ? AND attendance_date = ?", workerID, date).
		Take(&a).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &a, nil
}

// Save inserts when ID is zero, otherwise updates in place. A clash on
// uq_attendances_worker_date comes back as apperr.ErrDuplicateKey.
func (r *AttendanceRepository) Save(ctx context.Context, a *model.AttendanceModel) error {
	db := r.DB.WithContext(ctx).Omit(clause.Associations)
	if a.ID == 0 {
		return database.WrapWriteError(db.Create(a).Error)
	}
	return database.WrapWriteError(db.Save(a).Error)
}
