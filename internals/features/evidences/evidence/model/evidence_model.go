package model

import (
	"time"

	progressModel "construction_backend/internals/features/progress/progress/model"
)

// EvidenceModel is a photo attached to a progress entry. Content and
// Thumbnail are stored inline (bytea on postgres, blob on sqlite).
type EvidenceModel struct {
	ID               uint   `gorm:"column:id;primaryKey" json:"id"`
	FileName         string `gorm:"column:file_name;size:255;not null;uniqueIndex:uq_evidences_file_name" json:"file_name"`
	OriginalFileName string `gorm:"column:original_file_name;size:255;not null" json:"original_file_name"`
	ContentType      string `gorm:"column:content_type;size:100;not null" json:"content_type"`
	FileSize         int64  `gorm:"column:file_size;not null" json:"file_size"`
	Content          []byte `gorm:"column:content;not null" json:"-"`
	Thumbnail        []byte `gorm:"column:thumbnail" json:"-"`

	ProgressID uint                         `gorm:"column:progress_id;not null;index" json:"progress_id"`
	Progress   *progressModel.ProgressModel `gorm:"foreignKey:ProgressID;references:ID" json:"progress,omitempty"`

	UploadDate time.Time `gorm:"column:upload_date;not null" json:"upload_date"`
}

func (EvidenceModel) TableName() string { return "evidences" }
