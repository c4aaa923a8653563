package dto

import (
	"strings"
	"time"

	progressModel "construction_backend/internals/features/progress/progress/model"
	"construction_backend/internals/features/sites/site/model"
	workerModel "construction_backend/internals/features/workers/worker/model"
)

/* ===================== REQUEST ===================== */

type SiteRequest struct {
	Name    string `json:"name" validate:"required,max=150"`
	Address string `json:"address" validate:"required,max=255"`
	UserID  uint   `json:"user_id" validate:"required"`
}

func (r *SiteRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Address = strings.TrimSpace(r.Address)
}

/* ===================== RESPONSE ===================== */

type SiteWorker struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type SiteProgress struct {
	ID          uint      `json:"id"`
	Description string    `json:"description"`
	Date        time.Time `json:"date"`
}

type SiteUser struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type SiteResponse struct {
	ID         uint           `json:"id"`
	Name       string         `json:"name"`
	Address    string         `json:"address"`
	Workers    []SiteWorker   `json:"workers"`
	Progresses []SiteProgress `json:"progresses"`
	User       *SiteUser      `json:"user"`
}

func FromModel(s *model.SiteModel, workers []workerModel.WorkerModel, progresses []progressModel.ProgressModel) SiteResponse {
	resp := SiteResponse{
		ID:         s.ID,
		Name:       s.Name,
		Address:    s.Address,
		Workers:    make([]SiteWorker, 0, len(workers)),
		Progresses: make([]SiteProgress, 0, len(progresses)),
	}
	for _, w := range workers {
		resp.Workers = append(resp.Workers, SiteWorker{ID: w.ID, Name: w.Name, Role: w.Role})
	}
	for _, p := range progresses {
		resp.Progresses = append(resp.Progresses, SiteProgress{ID: p.ID, Description: p.Description, Date: p.Date})
	}
	if s.User != nil {
		resp.User = &SiteUser{ID: s.User.ID, Name: s.User.Name, Email: s.User.Email}
	}
	return resp
}
