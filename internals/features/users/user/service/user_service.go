package service

import (
	"context"
	"log"

	"construction_backend/internals/features/users/user/dto"
	"construction_backend/internals/features/users/user/model"
	"construction_backend/internals/features/users/user/repository"
	"construction_backend/internals/helpers/apperr"

	"golang.org/x/crypto/bcrypt"
)

type Service struct {
	Users *repository.UserRepository
}

func New(users *repository.UserRepository) *Service {
	return &Service{Users: users}
}

func hashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

func (s *Service) Get(ctx context.Context, id uint) (*model.UserModel, error) {
	u, err := s.Users.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, apperr.NotFound("User", id)
	}
	return u, nil
}

func (s *Service) List(ctx context.Context) ([]model.UserModel, error) {
	return s.Users.FindAll(ctx)
}

func (s *Service) Create(ctx context.Context, req dto.CreateUserRequest) (*model.UserModel, error) {
	exists, err := s.Users.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.AlreadyExists("User with email %s already exists.", req.Email)
	}

	u := req.ToModel()
	if u.Password, err = hashPassword(req.Password); err != nil {
		return nil, err
	}
	if err := s.Users.Save(ctx, u); err != nil {
		return nil, err
	}
	log.Printf("[SUCCESS] User created: id=%d", u.ID)
	return u, nil
}

// Update only checks email uniqueness when the email actually changes.
func (s *Service) Update(ctx context.Context, id uint, req dto.UpdateUserRequest) (*model.UserModel, error) {
	u, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		u.Name = *req.Name
	}
	if req.Email != nil && *req.Email != u.Email {
		exists, err := s.Users.ExistsByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, apperr.AlreadyExists("User with email %s already exists.", *req.Email)
		}
		u.Email = *req.Email
	}
	if req.Password != nil {
		if u.Password, err = hashPassword(*req.Password); err != nil {
			return nil, err
		}
	}

	if err := s.Users.Save(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Delete refuses to orphan sites.
func (s *Service) Delete(ctx context.Context, id uint) error {
	u, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	n, err := s.Users.CountSites(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return apperr.BadRequest("User with ID %d still owns %d site(s).", id, n)
	}
	return s.Users.Delete(ctx, u)
}

// CheckPassword reports whether plain matches the stored hash.
func CheckPassword(u *model.UserModel, plain string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(plain)) == nil
}
