package model

import (
	"time"

	userModel "construction_backend/internals/features/users/user/model"
)

// SiteModel is a construction site. Workers and progresses point at it
// through their own site_id; the site keeps no in-memory collections.
type SiteModel struct {
	ID      uint   `gorm:"column:id;primaryKey" json:"id"`
	Name    string `gorm:"column:name;size:150;not null;index:idx_sites_name_address,priority:1" json:"name"`
	Address string `gorm:"column:address;size:255;not null;index:idx_sites_name_address,priority:2" json:"address"`

	UserID uint                 `gorm:"column:user_id;not null;index" json:"user_id"`
	User   *userModel.UserModel `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (SiteModel) TableName() string { return "sites" }
