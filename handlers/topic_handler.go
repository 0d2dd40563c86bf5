package handlers

import (
	"encoding/json"
	"net/http"

	"nc-news-api/helper"
	"nc-news-api/models"
	"nc-news-api/services"

	"github.com/gin-gonic/gin"
)

type TopicHandler struct {
	topicService services.TopicService
	Helper       *helper.HTTPHelper
}

func NewTopicHandler(topicService services.TopicService, h *helper.HTTPHelper) *TopicHandler {
	return &TopicHandler{topicService: topicService, Helper: h}
}

func (h *TopicHandler) GetTopics(c *gin.Context) {
	topics, err := h.topicService.GetTopics()
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"topics": topics})
}

// PostTopic decodes the body strictly: unknown fields are rejected, which
// gin's binder would silently drop.
func (h *TopicHandler) PostTopic(c *gin.Context) {
	decoder := json.NewDecoder(c.Request.Body)
	decoder.DisallowUnknownFields()

	var req models.PostTopicRequest
	if err := decoder.Decode(&req); err != nil {
		h.Helper.SendError(c, models.InvalidField("Invalid topic fields"))
		return
	}
	if err := h.Helper.ValidateStruct(req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	topic, err := h.topicService.CreateTopic(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, topic)
}
