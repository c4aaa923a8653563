package model

import (
	"time"

	siteModel "construction_backend/internals/features/sites/site/model"
	workerModel "construction_backend/internals/features/workers/worker/model"
)

type ProgressModel struct {
	ID          uint      `gorm:"column:id;primaryKey" json:"id"`
	Description string    `gorm:"column:description;type:text;not null" json:"description"`
	Date        time.Time `gorm:"column:date;not null" json:"date"`

	SiteID uint                 `gorm:"column:site_id;not null;index" json:"site_id"`
	Site   *siteModel.SiteModel `gorm:"foreignKey:SiteID;references:ID" json:"site,omitempty"`

	WorkerID uint                     `gorm:"column:worker_id;not null;index" json:"worker_id"`
	Worker   *workerModel.WorkerModel `gorm:"foreignKey:WorkerID;references:ID" json:"worker,omitempty"`

	LastUpdated time.Time `gorm:"column:last_updated;autoUpdateTime" json:"last_updated"`
}

func (ProgressModel) TableName() string {
	return "progresses"
}
