package services

import (
	"nc-news-api/models"
	"nc-news-api/repositories"
)

type TopicService interface {
	GetTopics() ([]models.Topic, error)
	CreateTopic(req models.PostTopicRequest) (*models.Topic, error)
}

type topicService struct {
	topicRepo repositories.TopicRepository
}

func NewTopicService(topicRepo repositories.TopicRepository) TopicService {
	return &topicService{topicRepo: topicRepo}
}

func (s *topicService) GetTopics() ([]models.Topic, error) {
	return s.topicRepo.List()
}

func (s *topicService) CreateTopic(req models.PostTopicRequest) (*models.Topic, error) {
	topic := &models.Topic{
		Slug:        req.Slug,
		Description: req.Description,
	}
	if err := s.topicRepo.Create(topic); err != nil {
		return nil, err
	}
	return topic, nil
}
