package service

import (
	"context"
	"log"

	siteRepo "construction_backend/internals/features/sites/site/repository"
	"construction_backend/internals/features/workers/worker/dto"
	"construction_backend/internals/features/workers/worker/model"
	"construction_backend/internals/features/workers/worker/repository"
	"construction_backend/internals/helpers/apperr"

	"gorm.io/gorm"
)

type Service struct {
	Workers *repository.WorkerRepository
	Sites   *siteRepo.SiteRepository
}

func New(db *gorm.DB) *Service {
	return &Service{Workers: repository.New(db), Sites: siteRepo.New(db)}
}

func (s *Service) Get(ctx context.Context, id uint) (*model.WorkerModel, error) {
	w, err := s.Workers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if w == nil {
		return nil, apperr.NotFound("Worker", id)
	}
	return w, nil
}

func (s *Service) List(ctx context.Context) ([]model.WorkerModel, error) {
	return s.Workers.FindAll(ctx)
}

// Create checks the CI before the site, so a duplicate CI wins over an
// unknown site.
func (s *Service) Create(ctx context.Context, req dto.CreateWorkerRequest) (*model.WorkerModel, error) {
	exists, err := s.Workers.ExistsByCi(ctx, req.CI)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.AlreadyExists("Worker with CI %s already exists.", req.CI)
	}
	site, err := s.Sites.FindByID(ctx, req.SiteID)
	if err != nil {
		return nil, err
	}
	if site == nil {
		return nil, apperr.NotFound("Site", req.SiteID)
	}

	w := &model.WorkerModel{Name: req.Name, Role: req.Role, CI: req.CI, SiteID: site.ID}
	if err := s.Workers.Save(ctx, w); err != nil {
		return nil, err
	}
	w.Site = site
	log.Printf("[SUCCESS] Worker created: id=%d site=%d", w.ID, site.ID)
	return w, nil
}

func (s *Service) Update(ctx context.Context, id uint, req dto.UpdateWorkerRequest) (*model.WorkerModel, error) {
	w, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	site, err := s.Sites.FindByID(ctx, req.SiteID)
	if err != nil {
		return nil, err
	}
	if site == nil {
		return nil, apperr.NotFound("Site", req.SiteID)
	}

	w.Name = req.Name
	w.Role = req.Role
	w.SiteID = site.ID
	w.Site = site
	if err := s.Workers.Save(ctx, w); err != nil {
		return nil, err
	}
	return w, nil
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	w, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	return s.Workers.Delete(ctx, w)
}
