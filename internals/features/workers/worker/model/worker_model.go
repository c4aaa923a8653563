package model

import (
	"time"

	siteModel "construction_backend/internals/features/sites/site/model"
)

type WorkerModel struct {
	ID   uint   `gorm:"column:id;primaryKey" json:"id"`
	Name string `gorm:"column:name;size:150;not null" json:"name"`
	Role string `gorm:"column:role;size:100;not null" json:"role"`
	// CI = national identity number, unique across all sites
	CI string `gorm:"column:ci;size:50;not null;uniqueIndex:uq_workers_ci" json:"ci"`

	SiteID uint                 `gorm:"column:site_id;not null;index" json:"site_id"`
	Site   *siteModel.SiteModel `gorm:"foreignKey:SiteID;references:ID" json:"site,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (WorkerModel) TableName() string { return "workers" }
