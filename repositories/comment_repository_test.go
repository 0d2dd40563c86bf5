package repositories_test

import (
	"errors"
	"testing"

	"nc-news-api/models"
	"nc-news-api/repositories"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestCommentListByArticle(t *testing.T) {
	repo := repositories.NewCommentRepository(newTestDB(t))

	comments, total, err := repo.ListByArticle(1, 20, 0)
	assert.NoError(t, err)
	assert.Len(t, comments, 11)
	assert.EqualValues(t, 11, total)

	// Newest first.
	assert.Equal(t, 5, comments[0].CommentID)
	for i := 1; i < len(comments); i++ {
		assert.False(t, comments[i].CreatedAt.After(comments[i-1].CreatedAt))
	}
}

func TestCommentListByArticle_Paged(t *testing.T) {
	repo := repositories.NewCommentRepository(newTestDB(t))

	page, total, err := repo.ListByArticle(1, 2, 2)
	assert.NoError(t, err)
	assert.EqualValues(t, 11, total, "total ignores paging")
	assert.Len(t, page, 2)
	assert.Equal(t, 10, page[0].CommentID)
	assert.Equal(t, 7, page[1].CommentID)
}

func TestCommentListByArticle_NoComments(t *testing.T) {
	repo := repositories.NewCommentRepository(newTestDB(t))

	comments, total, err := repo.ListByArticle(2, 10, 0)
	assert.NoError(t, err)
	assert.NotNil(t, comments)
	assert.Empty(t, comments)
	assert.EqualValues(t, 0, total)
}

func TestCommentGetByID(t *testing.T) {
	repo := repositories.NewCommentRepository(newTestDB(t))

	comment, err := repo.GetByID(1)
	assert.NoError(t, err)
	assert.Equal(t, 1, comment.ArticleID)
	assert.Equal(t, "icellusedkars", comment.Author)
	assert.Equal(t, 16, comment.Votes)

	_, err = repo.GetByID(9999)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestCommentCreate(t *testing.T) {
	repo := repositories.NewCommentRepository(newTestDB(t))

	comment := &models.Comment{ArticleID: 2, Author: "lurker", Body: "first!"}
	assert.NoError(t, repo.Create(comment))
	assert.Equal(t, 14, comment.CommentID)
	assert.False(t, comment.CreatedAt.IsZero())
	assert.Equal(t, 0, comment.Votes)

	_, total, err := repo.ListByArticle(2, 10, 0)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestCommentIncrementVotes(t *testing.T) {
	repo := repositories.NewCommentRepository(newTestDB(t))

	comment, err := repo.IncrementVotes(1, 4)
	assert.NoError(t, err)
	assert.Equal(t, 20, comment.Votes)

	comment, err = repo.IncrementVotes(1, -40)
	assert.NoError(t, err)
	assert.Equal(t, -20, comment.Votes)

	_, err = repo.IncrementVotes(9999, 1)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestCommentDelete(t *testing.T) {
	repo := repositories.NewCommentRepository(newTestDB(t))

	assert.NoError(t, repo.Delete(1))

	_, err := repo.GetByID(1)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	err = repo.Delete(1)
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))
}

func TestCommentForeignKeys(t *testing.T) {
	gdb := newTestDB(t)
	repo := repositories.NewCommentRepository(gdb)

	// The store enforces comments(article_id) -> articles(article_id).
	err := repo.Create(&models.Comment{ArticleID: 9999, Author: "lurker", Body: "orphan"})
	assert.Error(t, err)

	// Removing an article takes its comments with it, and only them.
	assert.NoError(t, gdb.Exec("DELETE FROM articles WHERE article_id = ?", 1).Error)

	var count int64
	assert.NoError(t, gdb.Model(&models.Comment{}).Where("article_id = ?", 1).Count(&count).Error)
	assert.EqualValues(t, 0, count)

	_, total, err := repo.ListByArticle(3, 10, 0)
	assert.NoError(t, err)
	assert.EqualValues(t, 1, total)
}

func TestCommentExists(t *testing.T) {
	repo := repositories.NewCommentRepository(newTestDB(t))

	exists, err := repo.Exists(11)
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = repo.Exists(9999)
	assert.NoError(t, err)
	assert.False(t, exists)
}

func TestTopicAndUserRepositories(t *testing.T) {
	gdb := newTestDB(t)
	topics := repositories.NewTopicRepository(gdb)
	users := repositories.NewUserRepository(gdb)

	all, err := topics.List()
	assert.NoError(t, err)
	assert.Len(t, all, 3)
	assert.Equal(t, "mitch", all[0].Slug, "insertion order is preserved")

	exists, err := topics.Exists("paper")
	assert.NoError(t, err)
	assert.True(t, exists)

	exists, err = topics.Exists("nonexistent")
	assert.NoError(t, err)
	assert.False(t, exists)

	assert.NoError(t, topics.Create(&models.Topic{Slug: "dogs", Description: "Not cats"}))
	all, err = topics.List()
	assert.NoError(t, err)
	assert.Len(t, all, 4)

	userList, err := users.List()
	assert.NoError(t, err)
	assert.Len(t, userList, 4)

	user, err := users.GetByUsername("butter_bridge")
	assert.NoError(t, err)
	assert.Equal(t, "jonny", user.Name)

	_, err = users.GetByUsername("not_a_user")
	assert.True(t, errors.Is(err, gorm.ErrRecordNotFound))

	exists, err = users.Exists("lurker")
	assert.NoError(t, err)
	assert.True(t, exists)
}
