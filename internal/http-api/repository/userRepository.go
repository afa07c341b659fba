package repository

import (
	"context"
	"fmt"

	"ncnews/internal/http-api/models"

	"gorm.io/gorm"
)

type UserRepository interface {
	GetAll(ctx context.Context) ([]models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Exists(ctx context.Context, username string) (bool, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) GetAll(ctx context.Context) ([]models.User, error) {
	list := make([]models.User, 0)
	if err := r.db.WithContext(ctx).Order("username asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get users: %w", err)
	}
	return list, nil
}

// GetByUsername returns gorm.ErrRecordNotFound (wrapped) when no user matches.
func (r *userRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	var u models.User
	if err := r.db.WithContext(ctx).Where("username = ?", username).Take(&u).Error; err != nil {
		return nil, fmt.Errorf("get user %q: %w", username, err)
	}
	return &u, nil
}

func (r *userRepository) Exists(ctx context.Context, username string) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Where("username = ?", username).Count(&n).Error; err != nil {
		return false, fmt.Errorf("check user %q: %w", username, err)
	}
	return n > 0, nil
}
