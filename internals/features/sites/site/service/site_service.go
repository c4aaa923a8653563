package service

import (
	"context"
	"log"

	progressModel "construction_backend/internals/features/progress/progress/model"
	"construction_backend/internals/features/sites/site/dto"
	"construction_backend/internals/features/sites/site/model"
	"construction_backend/internals/features/sites/site/repository"
	userRepo "construction_backend/internals/features/users/user/repository"
	workerModel "construction_backend/internals/features/workers/worker/model"
	"construction_backend/internals/helpers/apperr"

	"gorm.io/gorm"
)

type Service struct {
	DB    *gorm.DB
	Sites *repository.SiteRepository
	Users *userRepo.UserRepository
}

func New(db *gorm.DB) *Service {
	return &Service{
		DB:    db,
		Sites: repository.New(db),
		Users: userRepo.New(db),
	}
}

func (s *Service) find(ctx context.Context, id uint) (*model.SiteModel, error) {
	site, err := s.Sites.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if site == nil {
		return nil, apperr.NotFound("Site", id)
	}
	return site, nil
}

// response loads the site's workers and progresses from their own tables.
func (s *Service) response(ctx context.Context, site *model.SiteModel) (dto.SiteResponse, error) {
	var workers []workerModel.WorkerModel
	if err := s.DB.WithContext(ctx).Where("site_id = ?", site.ID).Find(&workers).Error; err != nil {
		return dto.SiteResponse{}, err
	}
	var progresses []progressModel.ProgressModel
	if err := s.DB.WithContext(ctx).Where("site_id = ?", site.ID).Find(&progresses).Error; err != nil {
		return dto.SiteResponse{}, err
	}
	return dto.FromModel(site, workers, progresses), nil
}

func (s *Service) Get(ctx context.Context, id uint) (dto.SiteResponse, error) {
	site, err := s.find(ctx, id)
	if err != nil {
		return dto.SiteResponse{}, err
	}
	return s.response(ctx, site)
}

func (s *Service) List(ctx context.Context) ([]dto.SiteResponse, error) {
	sites, err := s.Sites.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.SiteResponse, 0, len(sites))
	for i := range sites {
		resp, err := s.response(ctx, &sites[i])
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

func (s *Service) Create(ctx context.Context, req dto.SiteRequest) (dto.SiteResponse, error) {
	exists, err := s.Sites.ExistsByNameAndAddress(ctx, req.Name, req.Address)
	if err != nil {
		return dto.SiteResponse{}, err
	}
	if exists {
		return dto.SiteResponse{}, apperr.AlreadyExists("A site with name '%s' and address '%s' already exists.", req.Name, req.Address)
	}
	user, err := s.Users.FindByID(ctx, req.UserID)
	if err != nil {
		return dto.SiteResponse{}, err
	}
	if user == nil {
		return dto.SiteResponse{}, apperr.NotFound("User", req.UserID)
	}

	site := &model.SiteModel{Name: req.Name, Address: req.Address, UserID: user.ID}
	if err := s.Sites.Save(ctx, site); err != nil {
		return dto.SiteResponse{}, err
	}
	site.User = user
	log.Printf("[SUCCESS] Site created: id=%d", site.ID)
	return s.response(ctx, site)
}

func (s *Service) Update(ctx context.Context, id uint, req dto.SiteRequest) (dto.SiteResponse, error) {
	site, err := s.find(ctx, id)
	if err != nil {
		return dto.SiteResponse{}, err
	}
	user, err := s.Users.FindByID(ctx, req.UserID)
	if err != nil {
		return dto.SiteResponse{}, err
	}
	if user == nil {
		return dto.SiteResponse{}, apperr.NotFound("User", req.UserID)
	}

	site.Name = req.Name
	site.Address = req.Address
	site.UserID = user.ID
	site.User = user
	if err := s.Sites.Save(ctx, site); err != nil {
		return dto.SiteResponse{}, err
	}
	return s.response(ctx, site)
}

func (s *Service) Delete(ctx context.Context, id uint) error {
	site, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if err := s.Sites.Delete(ctx, site); err != nil {
		log.Printf("[ERROR] Site delete cascade failed: id=%d: %v", id, err)
		return err
	}
	log.Printf("[SUCCESS] Site deleted: id=%d", id)
	return nil
}
