package repository

import (
	"context"
	"fmt"

	"ncnews/internal/http-api/models"

	"gorm.io/gorm"
)

type TopicRepository interface {
	GetAll(ctx context.Context) ([]models.Topic, error)
}

type topicRepository struct {
	db *gorm.DB
}

func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) GetAll(ctx context.Context) ([]models.Topic, error) {
	list := make([]models.Topic, 0)
	if err := r.db.WithContext(ctx).Order("slug asc").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("get topics: %w", err)
	}
	return list, nil
}
