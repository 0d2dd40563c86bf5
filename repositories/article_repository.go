package repositories

import (
	"fmt"

	"nc-news-api/models"

	"gorm.io/gorm"
)

type ArticleRepository interface {
	List(params models.ArticleListParams) ([]models.Article, error)
	GetByID(id int) (*models.Article, error)
	Create(article *models.Article) error
	IncrementVotes(id, delta int) (*models.Article, error)
	Exists(id int) (bool, error)
}

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) ArticleRepository {
	return &articleRepository{db: db}
}

// listColumns deliberately leaves out articles.body: listings carry the
// article summary only.
const listColumns = `articles.article_id, articles.title, articles.topic, articles.author,
	articles.created_at, articles.votes, articles.article_img_url,
	COUNT(comments.comment_id) AS comment_count`

func (r *articleRepository) List(params models.ArticleListParams) ([]models.Article, error) {
	query := r.db.Model(&models.Article{}).
		Select(listColumns).
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id").
		Group("articles.article_id")

	if params.Topic != nil {
		query = query.Where("articles.topic = ?", *params.Topic)
	}
	if params.Author != nil {
		query = query.Where("articles.author = ?", *params.Author)
	}

	// params.SortBy and params.Order are whitelist members by the time they
	// get here; only values are ever bound as parameters.
	orderCol := "articles." + params.SortBy
	if params.SortBy == "comment_count" {
		orderCol = "comment_count"
	}

	articles := make([]models.Article, 0)
	if err := query.Order(fmt.Sprintf("%s %s", orderCol, params.Order)).Find(&articles).Error; err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	return articles, nil
}

func (r *articleRepository) GetByID(id int) (*models.Article, error) {
	var article models.Article
	err := r.db.Model(&models.Article{}).
		Select("articles.*, COUNT(comments.comment_id) AS comment_count").
		Joins("LEFT JOIN comments ON comments.article_id = articles.article_id").
		Where("articles.article_id = ?", id).
		Group("articles.article_id").
		First(&article).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) Create(article *models.Article) error {
	if err := r.db.Create(article).Error; err != nil {
		return fmt.Errorf("create article: %w", err)
	}
	return nil
}

// IncrementVotes applies votes = votes + delta in a single statement, so
// concurrent increments never lose updates. A zero-row update means the
// article vanished between the caller's existence check and now.
func (r *articleRepository) IncrementVotes(id, delta int) (*models.Article, error) {
	res := r.db.Model(&models.Article{}).
		Where("article_id = ?", id).
		UpdateColumn("votes", gorm.Expr("votes + ?", delta))
	if res.Error != nil {
		return nil, fmt.Errorf("increment article votes: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return r.GetByID(id)
}

func (r *articleRepository) Exists(id int) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Article{}).Where("article_id = ?", id).Count(&count).Error; err != nil {
		return false, fmt.Errorf("article exists: %w", err)
	}
	return count > 0, nil
}
