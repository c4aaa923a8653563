package dto

import (
	"strings"

	"construction_backend/internals/features/attendances/attendance/model"
	"construction_backend/internals/helpers/dbtime"

	"gorm.io/datatypes"
)

/* ===================== REQUEST ===================== */

type AttendanceItemRequest struct {
	WorkerID uint   `json:"worker_id" validate:"required"`
	Status   string `json:"status" validate:"required,oneof=PRESENT ABSENT LATE NA"`
}

// POST /api/attendances/bulk
type AttendanceBulkUpsertRequest struct {
	SiteID uint                    `json:"site_id" validate:"required"`
	Date   *string                 `json:"date" validate:"omitempty,datetime=2006-01-02"`
	Items  []AttendanceItemRequest `json:"items" validate:"dive"`
}

// Normalize trims the optional date and drops it when blank.
func (r *AttendanceBulkUpsertRequest) Normalize() {
	if r.Date != nil {
		d := strings.TrimSpace(*r.Date)
		if d == "" {
			r.Date = nil
		} else {
			r.Date = &d
		}
	}
	for i := range r.Items {
		r.Items[i].Status = strings.ToUpper(strings.TrimSpace(r.Items[i].Status))
	}
}

// EffectiveDate returns the parsed date, or nil when the request left it out.
func (r AttendanceBulkUpsertRequest) EffectiveDate() (*datatypes.Date, error) {
	if r.Date == nil {
		return nil, nil
	}
	d, err := dbtime.ParseDate(*r.Date)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r AttendanceBulkUpsertRequest) Marks() []AttendanceMark {
	out := make([]AttendanceMark, 0, len(r.Items))
	for _, it := range r.Items {
		out = append(out, AttendanceMark{
			WorkerID: it.WorkerID,
			Status:   model.AttendanceStatus(it.Status),
		})
	}
	return out
}

// AttendanceMark is one (worker, status) pair of a bulk call.
type AttendanceMark struct {
	WorkerID uint
	Status   model.AttendanceStatus
}

/* ===================== RESPONSE ===================== */

type AttendanceSummary struct {
	ID         uint   `json:"id"`
	WorkerID   uint   `json:"worker_id"`
	WorkerName string `json:"worker_name"`
	SiteID     uint   `json:"site_id"`
	SiteName   string `json:"site_name"`
	Date       string `json:"date"`
	Status     string `json:"status"`
}

// FromModel expects Worker and Site to be loaded; missing ones leave the
// names blank.
func FromModel(a model.AttendanceModel) AttendanceSummary {
	s := AttendanceSummary{
		ID:       a.ID,
		WorkerID: a.WorkerID,
		SiteID:   a.SiteID,
		Date:     dbtime.FormatDate(a.Date),
		Status:   string(a.Status),
	}
	if a.Worker != nil {
		s.WorkerName = a.Worker.Name
	}
	if a.Site != nil {
		s.SiteName = a.Site.Name
	}
	return s
}

type AttendanceDayView struct {
	SiteID   uint                `json:"site_id"`
	SiteName string              `json:"site_name"`
	Date     string              `json:"date"`
	Items    []AttendanceSummary `json:"items"`
}
