package services

import (
	"errors"

	"nc-news-api/models"
	"nc-news-api/repositories"
	"nc-news-api/validators"

	"gorm.io/gorm"
)

type ArticleService interface {
	GetArticles(sortBy, order string, topic, author *string) ([]models.Article, error)
	GetArticleByID(articleID string) (*models.Article, error)
	UpdateArticleVotes(articleID string, incVotes interface{}) (*models.Article, error)
	CreateArticle(req models.PostArticleRequest) (*models.Article, error)
}

type articleService struct {
	articleRepo repositories.ArticleRepository
	topicRepo   repositories.TopicRepository
	userRepo    repositories.UserRepository
}

func NewArticleService(articleRepo repositories.ArticleRepository, topicRepo repositories.TopicRepository, userRepo repositories.UserRepository) ArticleService {
	return &articleService{
		articleRepo: articleRepo,
		topicRepo:   topicRepo,
		userRepo:    userRepo,
	}
}

// GetArticles validates the sort and filter inputs, confirms that any
// requested filter key actually exists (so "no rows" can be told apart from
// "no such topic"), then runs the aggregate listing query.
func (s *articleService) GetArticles(sortBy, order string, topic, author *string) ([]models.Article, error) {
	sortBy, order, err := validators.ValidateSortAndOrder(sortBy, order)
	if err != nil {
		return nil, err
	}
	if err := validators.ValidateFilterValue("topic", topic); err != nil {
		return nil, err
	}
	if err := validators.ValidateFilterValue("author", author); err != nil {
		return nil, err
	}

	if topic != nil {
		exists, err := s.topicRepo.Exists(*topic)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, models.NotFound("Topic not found")
		}
	}
	if author != nil {
		exists, err := s.userRepo.Exists(*author)
		if err != nil {
			return nil, err
		}
		if !exists {
			return nil, models.NotFound("Author not found")
		}
	}

	return s.articleRepo.List(models.ArticleListParams{
		SortBy: sortBy,
		Order:  order,
		Topic:  topic,
		Author: author,
	})
}

func (s *articleService) GetArticleByID(articleID string) (*models.Article, error) {
	id, err := validators.ValidateID(articleID, "article_id")
	if err != nil {
		return nil, err
	}

	article, err := s.articleRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound("Article not found")
		}
		return nil, err
	}
	return article, nil
}

func (s *articleService) UpdateArticleVotes(articleID string, incVotes interface{}) (*models.Article, error) {
	id, err := validators.ValidateID(articleID, "article_id")
	if err != nil {
		return nil, err
	}
	delta, err := validators.ValidateIncVotes(incVotes)
	if err != nil {
		return nil, err
	}

	exists, err := s.articleRepo.Exists(id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NotFound("Article not found")
	}

	article, err := s.articleRepo.IncrementVotes(id, delta)
	if err != nil {
		// Deleted between the existence check and the update.
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound("Article not found")
		}
		return nil, err
	}
	return article, nil
}

const defaultArticleImgURL = "https://images.pexels.com/photos/158651/news-newsletter-newspaper-information-158651.jpeg?w=700&h=700"

func (s *articleService) CreateArticle(req models.PostArticleRequest) (*models.Article, error) {
	exists, err := s.topicRepo.Exists(req.Topic)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NotFound("Topic not found")
	}

	exists, err = s.userRepo.Exists(req.Author)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NotFound("Author not found")
	}

	imgURL := req.ArticleImgURL
	if imgURL == "" {
		imgURL = defaultArticleImgURL
	}

	article := &models.Article{
		Title:         req.Title,
		Topic:         req.Topic,
		Author:        req.Author,
		Body:          req.Body,
		ArticleImgURL: imgURL,
	}
	if err := s.articleRepo.Create(article); err != nil {
		return nil, err
	}
	return article, nil
}
