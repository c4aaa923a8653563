package dto

import (
	"strings"
	"time"

	evidenceModel "construction_backend/internals/features/evidences/evidence/model"
	"construction_backend/internals/features/progress/progress/model"
)

type ProgressRequest struct {
	Description string `json:"description" validate:"required"`
	SiteID      uint   `json:"site_id" validate:"required"`
	WorkerID    uint   `json:"worker_id" validate:"required"`
}

func (r *ProgressRequest) Normalize() {
	r.Description = strings.TrimSpace(r.Description)
}

type ProgressSite struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type ProgressWorker struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type ProgressEvidence struct {
	ID       uint   `json:"id"`
	FileName string `json:"file_name"`
}

type ProgressResponse struct {
	ID          uint               `json:"id"`
	Description string             `json:"description"`
	Date        time.Time          `json:"date"`
	Site        *ProgressSite      `json:"site"`
	Worker      *ProgressWorker    `json:"worker"`
	Evidences   []ProgressEvidence `json:"evidences"`
}

func FromModel(p *model.ProgressModel, evidences []evidenceModel.EvidenceModel) ProgressResponse {
	resp := ProgressResponse{
		ID:          p.ID,
		Description: p.Description,
		Date:        p.Date,
		Evidences:   make([]ProgressEvidence, 0, len(evidences)),
	}
	if p.Site != nil {
		resp.Site = &ProgressSite{ID: p.Site.ID, Name: p.Site.Name}
	}
	if p.Worker != nil {
		resp.Worker = &ProgressWorker{ID: p.Worker.ID, Name: p.Worker.Name, Role: p.Worker.Role}
	}
	for _, e := range evidences {
		resp.Evidences = append(resp.Evidences, ProgressEvidence{ID: e.ID, FileName: e.FileName})
	}
	return resp
}
