package service

import (
	"context"

	"ncnews/internal/http-api/models"
	"ncnews/internal/http-api/repository"
)

type TopicService interface {
	GetAll(ctx context.Context) ([]models.Topic, error)
}

type topicService struct {
	repo repository.TopicRepository
}

func NewTopicService(repo repository.TopicRepository) TopicService {
	return &topicService{repo: repo}
}

func (s *topicService) GetAll(ctx context.Context) ([]models.Topic, error) {
	return s.repo.GetAll(ctx)
}
