package model

import (
	"time"

	siteModel "construction_backend/internals/features/sites/site/model"
	workerModel "construction_backend/internals/features/workers/worker/model"

	"gorm.io/datatypes"
)

type AttendanceStatus string

const (
	StatusPresent AttendanceStatus = "PRESENT"
	StatusAbsent  AttendanceStatus = "ABSENT"
	StatusLate    AttendanceStatus = "LATE"
	StatusNA      AttendanceStatus = "NA" // belum dicatat
)

func (s AttendanceStatus) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusLate, StatusNA:
		return true
	}
	return false
}

// AttendanceModel is one worker's mark for one calendar day.
//
// At most one row exists per (worker_id, attendance_date); the reconciler
// looks up before inserting and uq_attendances_worker_date backs it up.
// SiteID is the site of the most recent mark, not part of the key.
type AttendanceModel struct {
	ID uint `gorm:"column:id;primaryKey" json:"id"`

	WorkerID uint                     `gorm:"column:worker_id;not null;uniqueIndex:uq_attendances_worker_date,priority:1" json:"worker_id"`
	Worker   *workerModel.WorkerModel `gorm:"foreignKey:WorkerID;references:ID" json:"worker,omitempty"`

	SiteID uint                 `gorm:"column:site_id;not null;index:idx_attendances_site_date,priority:1" json:"site_id"`
	Site   *siteModel.SiteModel `gorm:"foreignKey:SiteID;references:ID" json:"site,omitempty"`

	Date   datatypes.Date   `gorm:"column:attendance_date;not null;uniqueIndex:uq_attendances_worker_date,priority:2;index:idx_attendances_site_date,priority:2" json:"date"`
	Status AttendanceStatus `gorm:"column:status;type:varchar(10);not null;default:'NA'" json:"status"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AttendanceModel) TableName() string { return "attendances" }
