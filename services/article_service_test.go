package services_test

import (
	"testing"

	"nc-news-api/models"
	"nc-news-api/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

func newArticleService() (services.ArticleService, *MockArticleRepository, *MockTopicRepository, *MockUserRepository) {
	articleRepo := new(MockArticleRepository)
	topicRepo := new(MockTopicRepository)
	userRepo := new(MockUserRepository)
	return services.NewArticleService(articleRepo, topicRepo, userRepo), articleRepo, topicRepo, userRepo
}

func strptr(s string) *string { return &s }

func assertKind(t *testing.T, err error, kind models.ErrorKind) {
	t.Helper()
	apiErr, ok := err.(*models.APIError)
	if !ok {
		t.Fatalf("expected *models.APIError, got %T (%v)", err, err)
	}
	assert.Equal(t, kind, apiErr.Kind)
}

func TestGetArticles_InvalidSortShortCircuits(t *testing.T) {
	service, articleRepo, topicRepo, _ := newArticleService()

	for _, order := range []string{"", "asc", "desc", "bogus"} {
		_, err := service.GetArticles("not_a_column", order, nil, nil)
		assertKind(t, err, models.KindInvalidField)
	}

	articleRepo.AssertNotCalled(t, "List", mock.Anything)
	topicRepo.AssertNotCalled(t, "Exists", mock.Anything)
}

func TestGetArticles_EmptyFilterValue(t *testing.T) {
	service, _, topicRepo, userRepo := newArticleService()

	_, err := service.GetArticles("", "", strptr(""), nil)
	assertKind(t, err, models.KindInvalidField)

	_, err = service.GetArticles("", "", nil, strptr(""))
	assertKind(t, err, models.KindInvalidField)

	topicRepo.AssertNotCalled(t, "Exists", mock.Anything)
	userRepo.AssertNotCalled(t, "Exists", mock.Anything)
}

func TestGetArticles_UnknownFilterKeyIs404(t *testing.T) {
	service, articleRepo, topicRepo, userRepo := newArticleService()

	topicRepo.On("Exists", "nonexistent").Return(false, nil).Once()
	_, err := service.GetArticles("", "", strptr("nonexistent"), nil)
	assertKind(t, err, models.KindNotFound)
	assert.Equal(t, "404 - Not Found: Topic not found", err.Error())

	userRepo.On("Exists", "nobody").Return(false, nil).Once()
	_, err = service.GetArticles("", "", nil, strptr("nobody"))
	assert.Equal(t, "404 - Not Found: Author not found", err.Error())

	articleRepo.AssertNotCalled(t, "List", mock.Anything)
	topicRepo.AssertExpectations(t)
	userRepo.AssertExpectations(t)
}

func TestGetArticles_DefaultsAndPassThrough(t *testing.T) {
	service, articleRepo, topicRepo, _ := newArticleService()

	expected := []models.Article{{ArticleID: 1, CommentCount: 11}}
	topicRepo.On("Exists", "mitch").Return(true, nil).Once()
	articleRepo.On("List", models.ArticleListParams{
		SortBy: "created_at", Order: "desc", Topic: strptr("mitch"),
	}).Return(expected, nil).Once()

	articles, err := service.GetArticles("", "", strptr("mitch"), nil)
	assert.NoError(t, err)
	assert.Equal(t, expected, articles)
	articleRepo.AssertExpectations(t)
}

func TestGetArticleByID(t *testing.T) {
	service, articleRepo, _, _ := newArticleService()

	_, err := service.GetArticleByID("not-an-id")
	assertKind(t, err, models.KindInvalidIdentifier)
	articleRepo.AssertNotCalled(t, "GetByID", mock.Anything)

	articleRepo.On("GetByID", 99).Return(nil, gorm.ErrRecordNotFound).Once()
	_, err = service.GetArticleByID("99")
	assertKind(t, err, models.KindNotFound)
	assert.Equal(t, "404 - Not Found: Article not found", err.Error())

	expected := &models.Article{ArticleID: 1, Votes: 100, CommentCount: 11}
	articleRepo.On("GetByID", 1).Return(expected, nil).Once()
	article, err := service.GetArticleByID("1")
	assert.NoError(t, err)
	assert.Equal(t, expected, article)
	articleRepo.AssertExpectations(t)
}

func TestUpdateArticleVotes(t *testing.T) {
	service, articleRepo, _, _ := newArticleService()

	_, err := service.UpdateArticleVotes("1", nil)
	assert.Equal(t, "400 - Bad Request: Missing inc_votes in request body", err.Error())

	_, err = service.UpdateArticleVotes("1", "ten")
	assert.Equal(t, "400 - Bad Request: inc_votes must be a number", err.Error())
	articleRepo.AssertNotCalled(t, "Exists", mock.Anything)

	articleRepo.On("Exists", 99).Return(false, nil).Once()
	_, err = service.UpdateArticleVotes("99", float64(1))
	assertKind(t, err, models.KindNotFound)

	updated := &models.Article{ArticleID: 1, Votes: 0}
	articleRepo.On("Exists", 1).Return(true, nil).Once()
	articleRepo.On("IncrementVotes", 1, -100).Return(updated, nil).Once()
	article, err := service.UpdateArticleVotes("1", float64(-100))
	assert.NoError(t, err)
	assert.Equal(t, updated, article)
	articleRepo.AssertExpectations(t)
}

func TestUpdateArticleVotes_RaceMapsTo404(t *testing.T) {
	service, articleRepo, _, _ := newArticleService()

	articleRepo.On("Exists", 1).Return(true, nil).Once()
	articleRepo.On("IncrementVotes", 1, 1).Return(nil, gorm.ErrRecordNotFound).Once()

	_, err := service.UpdateArticleVotes("1", float64(1))
	assertKind(t, err, models.KindNotFound)
	articleRepo.AssertExpectations(t)
}

func TestCreateArticle(t *testing.T) {
	service, articleRepo, topicRepo, userRepo := newArticleService()

	topicRepo.On("Exists", "nope").Return(false, nil).Once()
	_, err := service.CreateArticle(models.PostArticleRequest{Title: "t", Topic: "nope", Author: "lurker", Body: "b"})
	assert.Equal(t, "404 - Not Found: Topic not found", err.Error())
	articleRepo.AssertNotCalled(t, "Create", mock.Anything)

	topicRepo.On("Exists", "mitch").Return(true, nil)
	userRepo.On("Exists", "ghost").Return(false, nil).Once()
	_, err = service.CreateArticle(models.PostArticleRequest{Title: "t", Topic: "mitch", Author: "ghost", Body: "b"})
	assert.Equal(t, "404 - Not Found: Author not found", err.Error())

	userRepo.On("Exists", "lurker").Return(true, nil).Once()
	articleRepo.On("Create", mock.MatchedBy(func(a *models.Article) bool {
		return a.Title == "t" && a.Topic == "mitch" && a.Author == "lurker" && a.ArticleImgURL != ""
	})).Return(nil).Once()

	article, err := service.CreateArticle(models.PostArticleRequest{Title: "t", Topic: "mitch", Author: "lurker", Body: "b"})
	assert.NoError(t, err)
	assert.NotEmpty(t, article.ArticleImgURL, "image url is defaulted when absent")
	articleRepo.AssertExpectations(t)
}
