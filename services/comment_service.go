package services

import (
	"errors"

	"nc-news-api/models"
	"nc-news-api/repositories"
	"nc-news-api/validators"

	"gorm.io/gorm"
)

type CommentService interface {
	GetCommentsByArticle(articleID, limit, page string) ([]models.Comment, int64, error)
	AddComment(articleID string, req models.PostCommentRequest) (*models.Comment, error)
	GetCommentByID(commentID string) (*models.Comment, error)
	UpdateCommentVotes(commentID string, incVotes interface{}) (*models.Comment, error)
	DeleteComment(commentID string) error
}

type commentService struct {
	commentRepo repositories.CommentRepository
	articleRepo repositories.ArticleRepository
	userRepo    repositories.UserRepository
}

func NewCommentService(commentRepo repositories.CommentRepository, articleRepo repositories.ArticleRepository, userRepo repositories.UserRepository) CommentService {
	return &commentService{
		commentRepo: commentRepo,
		articleRepo: articleRepo,
		userRepo:    userRepo,
	}
}

func (s *commentService) GetCommentsByArticle(articleID, limit, page string) ([]models.Comment, int64, error) {
	id, err := validators.ValidateID(articleID, "article_id")
	if err != nil {
		return nil, 0, err
	}

	exists, err := s.articleRepo.Exists(id)
	if err != nil {
		return nil, 0, err
	}
	if !exists {
		return nil, 0, models.NotFound("Article not found")
	}

	limitN, pageN, err := validators.ValidatePagination(limit, page)
	if err != nil {
		return nil, 0, err
	}

	return s.commentRepo.ListByArticle(id, limitN, (pageN-1)*limitN)
}

// AddComment validates the payload first, then confirms both the parent
// article and the author exist before inserting. The store's foreign keys
// back this up for the unlucky race, mapped by the helper to the same 404.
func (s *commentService) AddComment(articleID string, req models.PostCommentRequest) (*models.Comment, error) {
	id, err := validators.ValidateID(articleID, "article_id")
	if err != nil {
		return nil, err
	}
	username, err := validators.ValidateUsername(req.Username)
	if err != nil {
		return nil, err
	}
	body, err := validators.ValidateCommentBody(req.Body)
	if err != nil {
		return nil, err
	}

	articleOK, err := s.articleRepo.Exists(id)
	if err != nil {
		return nil, err
	}
	userOK, err := s.userRepo.Exists(username)
	if err != nil {
		return nil, err
	}
	if !articleOK || !userOK {
		return nil, models.ReferentialViolation()
	}

	comment := &models.Comment{
		ArticleID: id,
		Author:    username,
		Body:      body,
	}
	if err := s.commentRepo.Create(comment); err != nil {
		return nil, err
	}
	return comment, nil
}

func (s *commentService) GetCommentByID(commentID string) (*models.Comment, error) {
	id, err := validators.ValidateID(commentID, "comment_id")
	if err != nil {
		return nil, err
	}

	comment, err := s.commentRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound("Comment not found")
		}
		return nil, err
	}
	return comment, nil
}

func (s *commentService) UpdateCommentVotes(commentID string, incVotes interface{}) (*models.Comment, error) {
	id, err := validators.ValidateID(commentID, "comment_id")
	if err != nil {
		return nil, err
	}
	delta, err := validators.ValidateIncVotes(incVotes)
	if err != nil {
		return nil, err
	}

	exists, err := s.commentRepo.Exists(id)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, models.NotFound("Comment not found")
	}

	comment, err := s.commentRepo.IncrementVotes(id, delta)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NotFound("Comment not found")
		}
		return nil, err
	}
	return comment, nil
}

func (s *commentService) DeleteComment(commentID string) error {
	id, err := validators.ValidateID(commentID, "comment_id")
	if err != nil {
		return err
	}

	exists, err := s.commentRepo.Exists(id)
	if err != nil {
		return err
	}
	if !exists {
		return models.NotFound("Comment not found")
	}

	if err := s.commentRepo.Delete(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.NotFound("Comment not found")
		}
		return err
	}
	return nil
}
