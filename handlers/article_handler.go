package handlers

import (
	"net/http"

	"nc-news-api/helper"
	"nc-news-api/models"
	"nc-news-api/services"

	"github.com/gin-gonic/gin"
)

type ArticleHandler struct {
	articleService services.ArticleService
	commentService services.CommentService
	Helper         *helper.HTTPHelper
}

func NewArticleHandler(articleService services.ArticleService, commentService services.CommentService, h *helper.HTTPHelper) *ArticleHandler {
	return &ArticleHandler{
		articleService: articleService,
		commentService: commentService,
		Helper:         h,
	}
}

func (h *ArticleHandler) GetArticles(c *gin.Context) {
	var topic, author *string
	if v, ok := c.GetQuery("topic"); ok {
		topic = &v
	}
	if v, ok := c.GetQuery("author"); ok {
		author = &v
	}

	articles, err := h.articleService.GetArticles(c.Query("sort_by"), c.Query("order"), topic, author)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"articles": articles})
}

func (h *ArticleHandler) GetArticleByID(c *gin.Context) {
	article, err := h.articleService.GetArticleByID(c.Param("article_id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

func (h *ArticleHandler) PatchArticleVotes(c *gin.Context) {
	var req models.PatchVotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendError(c, models.InvalidField("Missing inc_votes in request body"))
		return
	}

	article, err := h.articleService.UpdateArticleVotes(c.Param("article_id"), req.IncVotes)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"article": article})
}

func (h *ArticleHandler) PostArticle(c *gin.Context) {
	var req models.PostArticleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendError(c, models.InvalidField("Missing required fields"))
		return
	}
	if err := h.Helper.ValidateStruct(req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	article, err := h.articleService.CreateArticle(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"article": article})
}

func (h *ArticleHandler) GetCommentsByArticle(c *gin.Context) {
	comments, total, err := h.commentService.GetCommentsByArticle(
		c.Param("article_id"), c.Query("limit"), c.Query("page"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comments": comments, "total_count": total})
}

func (h *ArticleHandler) PostComment(c *gin.Context) {
	var req models.PostCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendError(c, models.InvalidField("Missing username or body in request body"))
		return
	}

	comment, err := h.commentService.AddComment(c.Param("article_id"), req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"comment": comment})
}
