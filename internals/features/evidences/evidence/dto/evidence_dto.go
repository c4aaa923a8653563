package dto

import (
	"encoding/base64"
	"time"

	"construction_backend/internals/features/evidences/evidence/model"

	"github.com/dustin/go-humanize"
)

// FileInput is an uploaded multipart file already read into memory.
type FileInput struct {
	FileName    string
	ContentType string
	Data        []byte
	// ProgressID 0 means "keep the current progress" on replace.
	ProgressID uint
}

type EvidenceResponse struct {
	ID               uint      `json:"id"`
	FileName         string    `json:"file_name"`
	OriginalFileName string    `json:"original_file_name"`
	ContentType      string    `json:"content_type"`
	FileSize         int64     `json:"file_size"`
	FileSizeHuman    string    `json:"file_size_human"`
	UploadDate       time.Time `json:"upload_date"`
	ProgressID       uint      `json:"progress_id"`
}

func FromModel(e *model.EvidenceModel) EvidenceResponse {
	return EvidenceResponse{
		ID:               e.ID,
		FileName:         e.FileName,
		OriginalFileName: e.OriginalFileName,
		ContentType:      e.ContentType,
		FileSize:         e.FileSize,
		FileSizeHuman:    humanize.Bytes(uint64(e.FileSize)),
		UploadDate:       e.UploadDate,
		ProgressID:       e.ProgressID,
	}
}

type UploadResponse struct {
	Message string           `json:"message"`
	Image   EvidenceResponse `json:"image"`
}

type ListResponse struct {
	Images []EvidenceResponse `json:"images"`
	Total  int                `json:"total"`
}

func FromModels(list []model.EvidenceModel) ListResponse {
	out := ListResponse{Images: make([]EvidenceResponse, 0, len(list)), Total: len(list)}
	for i := range list {
		out.Images = append(out.Images, FromModel(&list[i]))
	}
	return out
}

// ContentResponse carries the image inline for GET /api/evidences/:id.
type ContentResponse struct {
	ID            uint   `json:"id"`
	FileName      string `json:"file_name"`
	ProgressID    uint   `json:"progress_id"`
	ContentType   string `json:"content_type"`
	ContentBase64 string `json:"content_base64"`
}

func ToContentResponse(e *model.EvidenceModel) ContentResponse {
	return ContentResponse{
		ID:            e.ID,
		FileName:      e.FileName,
		ProgressID:    e.ProgressID,
		ContentType:   e.ContentType,
		ContentBase64: base64.StdEncoding.EncodeToString(e.Content),
	}
}
