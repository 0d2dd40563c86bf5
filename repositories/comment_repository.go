package repositories

import (
	"fmt"

	"nc-news-api/models"

	"gorm.io/gorm"
)

type CommentRepository interface {
	ListByArticle(articleID, limit, offset int) ([]models.Comment, int64, error)
	GetByID(id int) (*models.Comment, error)
	Create(comment *models.Comment) error
	IncrementVotes(id, delta int) (*models.Comment, error)
	Delete(id int) error
	Exists(id int) (bool, error)
}

type commentRepository struct {
	db *gorm.DB
}

func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// ListByArticle returns one page of comments, newest first, plus the total
// number of comments on the article regardless of paging.
func (r *commentRepository) ListByArticle(articleID, limit, offset int) ([]models.Comment, int64, error) {
	var total int64

	query := r.db.Model(&models.Comment{}).Where("article_id = ?", articleID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("count comments: %w", err)
	}

	comments := make([]models.Comment, 0)
	err := query.Order("created_at desc").Limit(limit).Offset(offset).Find(&comments).Error
	if err != nil {
		return nil, 0, fmt.Errorf("list comments: %w", err)
	}
	return comments, total, nil
}

func (r *commentRepository) GetByID(id int) (*models.Comment, error) {
	var comment models.Comment
	if err := r.db.Where("comment_id = ?", id).First(&comment).Error; err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *commentRepository) Create(comment *models.Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return fmt.Errorf("create comment: %w", err)
	}
	return nil
}

func (r *commentRepository) IncrementVotes(id, delta int) (*models.Comment, error) {
	res := r.db.Model(&models.Comment{}).
		Where("comment_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return nil, fmt.Errorf("increment comment votes: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

func (r *commentRepository) Delete(id int) error {
	res := r.db.Delete(&models.Comment{}, "comment_id = ?", id)
	if res.Error != nil {
		return fmt.Errorf("delete comment: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *commentRepository) Exists(id int) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Comment{}).Where("comment_id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("comment exists: %w", err)
	}
	return count > 0, nil
}
