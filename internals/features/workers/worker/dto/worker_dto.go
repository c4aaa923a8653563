package dto

import (
	"strings"

	"construction_backend/internals/features/workers/worker/model"
)

type CreateWorkerRequest struct {
	Name   string `json:"name" validate:"required,max=150"`
	Role   string `json:"role" validate:"required,max=100"`
	CI     string `json:"ci" validate:"required,max=50"`
	SiteID uint   `json:"site_id" validate:"required"`
}

func (r *CreateWorkerRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Role = strings.TrimSpace(r.Role)
	r.CI = strings.TrimSpace(r.CI)
}

// UpdateWorkerRequest: ci tidak bisa diubah setelah dibuat
type UpdateWorkerRequest struct {
	Name   string `json:"name" validate:"required,max=150"`
	Role   string `json:"role" validate:"required,max=100"`
	SiteID uint   `json:"site_id" validate:"required"`
}

func (r *UpdateWorkerRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Role = strings.TrimSpace(r.Role)
}

type WorkerSite struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type WorkerResponse struct {
	ID   uint        `json:"id"`
	Name string      `json:"name"`
	Role string      `json:"role"`
	CI   string      `json:"ci"`
	Site *WorkerSite `json:"site"`
}

func FromModel(w *model.WorkerModel) WorkerResponse {
	resp := WorkerResponse{ID: w.ID, Name: w.Name, Role: w.Role, CI: w.CI}
	if w.Site != nil {
		resp.Site = &WorkerSite{ID: w.Site.ID, Name: w.Site.Name}
	}
	return resp
}

func FromModels(list []model.WorkerModel) []WorkerResponse {
	out := make([]WorkerResponse, 0, len(list))
	for i := range list {
		out = append(out, FromModel(&list[i]))
	}
	return out
}
