package handlers

import (
	"net/http"

	"nc-news-api/helper"
	"nc-news-api/models"
	"nc-news-api/services"

	"github.com/gin-gonic/gin"
)

type CommentHandler struct {
	commentService services.CommentService
	Helper         *helper.HTTPHelper
}

func NewCommentHandler(commentService services.CommentService, h *helper.HTTPHelper) *CommentHandler {
	return &CommentHandler{commentService: commentService, Helper: h}
}

func (h *CommentHandler) GetCommentByID(c *gin.Context) {
	comment, err := h.commentService.GetCommentByID(c.Param("comment_id"))
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

func (h *CommentHandler) PatchCommentVotes(c *gin.Context) {
	var req models.PatchVotesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendError(c, models.InvalidField("Missing inc_votes in request body"))
		return
	}

	comment, err := h.commentService.UpdateCommentVotes(c.Param("comment_id"), req.IncVotes)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"comment": comment})
}

func (h *CommentHandler) DeleteComment(c *gin.Context) {
	if err := h.commentService.DeleteComment(c.Param("comment_id")); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
