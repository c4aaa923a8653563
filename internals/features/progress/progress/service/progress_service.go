package service

import (
	"context"
	"errors"
	"log"
	"time"

	evidenceModel "construction_backend/internals/features/evidences/evidence/model"
	"construction_backend/internals/features/progress/progress/dto"
	"construction_backend/internals/features/progress/progress/model"
	siteModel "construction_backend/internals/features/sites/site/model"
	workerModel "construction_backend/internals/features/workers/worker/model"
	"construction_backend/internals/helpers/apperr"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Service works on gorm directly; progresses have no separate store.
type Service struct {
	DB  *gorm.DB
	Now func() time.Time
}

func New(db *gorm.DB) *Service {
	return &Service{DB: db, Now: time.Now}
}

func (s *Service) find(ctx context.Context, id uint) (*model.ProgressModel, error) {
	var p model.ProgressModel
	err := s.DB.WithContext(ctx).Preload("Site").Preload("Worker").First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Progress", id)
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// resolve loads the site and worker a request points at.
func (s *Service) resolve(ctx context.Context, req dto.ProgressRequest) (*siteModel.SiteModel, *workerModel.WorkerModel, error) {
	var site siteModel.SiteModel
	if err := s.DB.WithContext(ctx).First(&site, req.SiteID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.NotFound("Site", req.SiteID)
		}
		return nil, nil, err
	}
	var worker workerModel.WorkerModel
	if err := s.DB.WithContext(ctx).First(&worker, req.WorkerID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, apperr.NotFound("Worker", req.WorkerID)
		}
		return nil, nil, err
	}
	return &site, &worker, nil
}

func (s *Service) response(ctx context.Context, p *model.ProgressModel) (dto.ProgressResponse, error) {
	var evidences []evidenceModel.EvidenceModel
	err := s.DB.WithContext(ctx).
		Select("id", "file_name", "progress_id").
		Where("progress_id = ?", p.ID).
		Find(&evidences).Error
	if err != nil {
		return dto.ProgressResponse{}, err
	}
	return dto.FromModel(p, evidences), nil
}

func (s *Service) Get(ctx context.Context, id uint) (dto.ProgressResponse, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return dto.ProgressResponse{}, err
	}
	return s.response(ctx, p)
}

func (s *Service) List(ctx context.Context) ([]dto.ProgressResponse, error) {
	var list []model.ProgressModel
	if err := s.DB.WithContext(ctx).Preload("Site").Preload("Worker").Find(&list).Error; err != nil {
		return nil, err
	}
	out := make([]dto.ProgressResponse, 0, len(list))
	for i := range list {
		resp, err := s.response(ctx, &list[i])
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// Create stamps the entry with the current time.
func (s *Service) Create(ctx context.Context, req dto.ProgressRequest) (dto.ProgressResponse, error) {
	site, worker, err := s.resolve(ctx, req)
	if err != nil {
		return dto.ProgressResponse{}, err
	}
	p := &model.ProgressModel{
		Description: req.Description,
		Date:        s.Now(),
		SiteID:      site.ID,
		WorkerID:    worker.ID,
	}
	if err := s.DB.WithContext(ctx).Omit(clause.Associations).Create(p).Error; err != nil {
		log.Println("[ERROR] Gagal membuat progress:", err)
		return dto.ProgressResponse{}, err
	}
	p.Site, p.Worker = site, worker
	log.Printf("[SUCCESS] Progress created: id=%d", p.ID)
	return dto.FromModel(p, nil), nil
}

func (s *Service) Update(ctx context.Context, id uint, req dto.ProgressRequest) (dto.ProgressResponse, error) {
	p, err := s.find(ctx, id)
	if err != nil {
		return dto.ProgressResponse{}, err
	}
	site, worker, err := s.resolve(ctx, req)
	if err != nil {
		return dto.ProgressResponse{}, err
	}

	p.Description = req.Description
	p.SiteID, p.Site = site.ID, site
	p.WorkerID, p.Worker = worker.ID, worker
	if err := s.DB.WithContext(ctx).Omit(clause.Associations).Save(p).Error; err != nil {
		return dto.ProgressResponse{}, err
	}
	return s.response(ctx, p)
}

// Delete removes the progress and its evidences.
func (s *Service) Delete(ctx context.Context, id uint) error {
	p, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("progress_id = ?", p.ID).Delete(&evidenceModel.EvidenceModel{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.ProgressModel{}, p.ID).Error
	})
}
