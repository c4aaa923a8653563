package repository

import (
	"context"
	"errors"

	database "construction_backend/internals/databases"
	"construction_backend/internals/features/users/user/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func New(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) FindByID(ctx context.Context, id uint) (*model.UserModel, error) {
	var u model.UserModel
	err := r.DB.WithContext(ctx).First(&u, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]model.UserModel, error) {
	var users []model.UserModel
	if err := r.DB.WithContext(ctx).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var n int64
	err := r.DB.WithContext(ctx).Model(&model.UserModel{}).Where("email = ?", email).Count(&n).Error
	return n > 0, err
}

// CountSites is the number of sites the user owns.
func (r *UserRepository) CountSites(ctx context.Context, id uint) (int64, error) {
	var n int64
	err := r.DB.WithContext(ctx).Table("sites").Where("user_id = ?", id).Count(&n).Error
	return n, err
}

func (r *UserRepository) Save(ctx context.Context, u *model.UserModel) error {
	db := r.DB.WithContext(ctx)
	if u.ID == 0 {
		return database.WrapWriteError(db.Create(u).Error)
	}
	return database.WrapWriteError(db.Save(u).Error)
}

func (r *UserRepository) Delete(ctx context.Context, u *model.UserModel) error {
	return r.DB.WithContext(ctx).Delete(&model.UserModel{}, u.ID).Error
}
