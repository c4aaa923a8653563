package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"construction_backend/internals/features/attendances/attendance/dto"
	"construction_backend/internals/features/attendances/attendance/model"
	siteModel "construction_backend/internals/features/sites/site/model"
	workerModel "construction_backend/internals/features/workers/worker/model"
	"construction_backend/internals/helpers/apperr"
	"construction_backend/internals/helpers/dbtime"

	"gorm.io/datatypes"
)

type SiteFinder interface {
	FindByID(ctx context.Context, id uint) (*siteModel.SiteModel, error)
}

type WorkerFinder interface {
	FindByID(ctx context.Context, id uint) (*workerModel.WorkerModel, error)
}

// AttendanceStore finders return nil, nil when nothing matches.
type AttendanceStore interface {
	FindBySiteIDAndDate(ctx context.Context, siteID uint, date datatypes.Date) ([]model.AttendanceModel, error)
	FindByWorkerIDAndDate(ctx context.Context, workerID uint, date datatypes.Date) (*model.AttendanceModel, error)
	Save(ctx context.Context, a *model.AttendanceModel) error
}

// Service reconciles attendance marks against stored day records.
// It keeps nothing between calls.
type Service struct {
	Sites       SiteFinder
	Workers     WorkerFinder
	Attendances AttendanceStore

	// Now is read once per UpsertBulk call that omits the date.
	Now func() time.Time
}

func New(sites SiteFinder, workers WorkerFinder, attendances AttendanceStore) *Service {
	return &Service{
		Sites:       sites,
		Workers:     workers,
		Attendances: attendances,
		Now:         time.Now,
	}
}

func (s *Service) findSite(ctx context.Context, id uint) (*siteModel.SiteModel, error) {
	site, err := s.Sites.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if site == nil {
		return nil, apperr.NotFound("Site", id)
	}
	return site, nil
}

// ListBySiteAndDate returns the rows whose stored site is siteID on date,
// in storage order.
func (s *Service) ListBySiteAndDate(ctx context.Context, siteID uint, date datatypes.Date) (dto.AttendanceDayView, error) {
	site, err := s.findSite(ctx, siteID)
	if err != nil {
		return dto.AttendanceDayView{}, err
	}
	date = dbtime.DateOf(time.Time(date))

	rows, err := s.Attendances.FindBySiteIDAndDate(ctx, site.ID, date)
	if err != nil {
		return dto.AttendanceDayView{}, err
	}

	items := make([]dto.AttendanceSummary, 0, len(rows))
	for _, a := range rows {
		if a.Site == nil {
			a.Site = site
		}
		items = append(items, dto.FromModel(a))
	}
	return dto.AttendanceDayView{
		SiteID:   site.ID,
		SiteName: site.Name,
		Date:     dbtime.FormatDate(date),
		Items:    items,
	}, nil
}

// UpsertBulk applies marks in order for one site and day. A nil date means
// today, resolved once for the whole call.
//
// The site is checked before any mark is touched. An unknown worker stops
// the loop; marks before it stay persisted.
func (s *Service) UpsertBulk(ctx context.Context, siteID uint, date *datatypes.Date, marks []dto.AttendanceMark) ([]dto.AttendanceSummary, error) {
	site, err := s.findSite(ctx, siteID)
	if err != nil {
		return nil, err
	}

	var day datatypes.Date
	if date != nil {
		day = dbtime.DateOf(time.Time(*date))
	} else {
		day = dbtime.Today(s.now())
	}

	out := make([]dto.AttendanceSummary, 0, len(marks))
	for i, m := range marks {
		if !m.Status.Valid() {
			return out, apperr.BadRequest("items[%d].status: unknown status %q", i, m.Status)
		}
		worker, err := s.Workers.FindByID(ctx, m.WorkerID)
		if err != nil {
			return out, err
		}
		if worker == nil {
			return out, apperr.NotFound("Worker", m.WorkerID)
		}

		rec, err := s.apply(ctx, site, worker, day, m.Status)
		if err != nil {
			return out, err
		}
		out = append(out, dto.FromModel(*rec))
	}

	log.Printf("[INFO] attendance: site=%d date=%s marks=%d", site.ID, dbtime.FormatDate(day), len(out))
	return out, nil
}

// apply creates or updates the (worker, day) row. If the insert loses a
// race against another request, the winner's row is updated instead.
func (s *Service) apply(ctx context.Context, site *siteModel.SiteModel, worker *workerModel.WorkerModel, day datatypes.Date, status model.AttendanceStatus) (*model.AttendanceModel, error) {
	rec, err := s.Attendances.FindByWorkerIDAndDate(ctx, worker.ID, day)
	if err != nil {
		return nil, err
	}

	if rec == nil {
		rec = &model.AttendanceModel{
			WorkerID: worker.ID,
			SiteID:   site.ID,
			Date:     day,
			Status:   status,
		}
		err = s.Attendances.Save(ctx, rec)
		if err == nil {
			rec.Worker, rec.Site = worker, site
			return rec, nil
		}
		if !errors.Is(err, apperr.ErrDuplicateKey) {
			return nil, err
		}

		log.Printf("[WARN] attendance: concurrent insert for worker=%d date=%s, updating instead", worker.ID, dbtime.FormatDate(day))
		rec, err = s.Attendances.FindByWorkerIDAndDate(ctx, worker.ID, day)
		if err != nil {
			return nil, err
		}
		if rec == nil {
			return nil, fmt.Errorf("attendance for worker %d on %s: %w", worker.ID, dbtime.FormatDate(day), apperr.ErrDuplicateKey)
		}
	}

	rec.SiteID = site.ID
	rec.Status = status
	if err := s.Attendances.Save(ctx, rec); err != nil {
		return nil, err
	}
	rec.Worker, rec.Site = worker, site
	return rec, nil
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}
