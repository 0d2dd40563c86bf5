package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type APIHandler struct{}

func NewAPIHandler() *APIHandler {
	return &APIHandler{}
}

// GetEndpoints documents the API for clients hitting GET /api.
func (h *APIHandler) GetEndpoints(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"GET /api": gin.H{
			"description": "serves a json representation of all the available endpoints of the api",
		},
		"GET /api/topics": gin.H{
			"description": "serves an array of all topics",
		},
		"POST /api/topics": gin.H{
			"description": "adds a new topic",
			"exampleRequest": gin.H{
				"slug": "football", "description": "Footie!",
			},
		},
		"GET /api/articles": gin.H{
			"description": "serves an array of all articles",
			"queries":     []string{"topic", "author", "sort_by", "order"},
		},
		"POST /api/articles": gin.H{
			"description": "adds a new article",
			"exampleRequest": gin.H{
				"title": "New phone, who dis?", "topic": "mitch",
				"author": "butter_bridge", "body": "...",
			},
		},
		"GET /api/articles/:article_id": gin.H{
			"description": "serves a single article by id, with its comment count",
		},
		"PATCH /api/articles/:article_id": gin.H{
			"description":    "adjusts an article's votes by inc_votes",
			"exampleRequest": gin.H{"inc_votes": 1},
		},
		"GET /api/articles/:article_id/comments": gin.H{
			"description": "serves the comments for an article, newest first",
			"queries":     []string{"limit", "page"},
		},
		"POST /api/articles/:article_id/comments": gin.H{
			"description":    "adds a comment to an article",
			"exampleRequest": gin.H{"username": "butter_bridge", "body": "great article"},
		},
		"GET /api/comments/:comment_id": gin.H{
			"description": "serves a single comment by id",
		},
		"PATCH /api/comments/:comment_id": gin.H{
			"description":    "adjusts a comment's votes by inc_votes",
			"exampleRequest": gin.H{"inc_votes": -1},
		},
		"DELETE /api/comments/:comment_id": gin.H{
			"description": "deletes a comment by id",
		},
		"GET /api/users": gin.H{
			"description": "serves an array of all users",
		},
		"GET /api/users/:username": gin.H{
			"description": "serves a single user by username",
		},
		"POST /api/auth/register": gin.H{
			"description": "creates an account and returns a token",
		},
		"POST /api/auth/login": gin.H{
			"description": "authenticates an account and returns a token",
		},
		"POST /api/auth/guest": gin.H{
			"description": "returns a short-lived guest token",
		},
	})
}
