package repositories

import (
	"fmt"

	"nc-news-api/models"

	"gorm.io/gorm"
)

type TopicRepository interface {
	List() ([]models.Topic, error)
	Create(topic *models.Topic) error
	Exists(slug string) (bool, error)
}

type topicRepository struct {
	db *gorm.DB
}

func NewTopicRepository(db *gorm.DB) TopicRepository {
	return &topicRepository{db: db}
}

func (r *topicRepository) List() ([]models.Topic, error) {
	topics := make([]models.Topic, 0)
	if err := r.db.Find(&topics).Error; err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	return topics, nil
}

func (r *topicRepository) Create(topic *models.Topic) error {
	if err := r.db.Create(topic).Error; err != nil {
		return fmt.Errorf("create topic: %w", err)
	}
	return nil
}

func (r *topicRepository) Exists(slug string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Topic{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return false, fmt.Errorf("topic exists: %w", err)
	}
	return count > 0, nil
}
