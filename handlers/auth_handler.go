package handlers

import (
	"net/http"

	"nc-news-api/helper"
	"nc-news-api/models"
	"nc-news-api/services"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authService services.AuthService
	Helper      *helper.HTTPHelper
}

func NewAuthHandler(authService services.AuthService, h *helper.HTTPHelper) *AuthHandler {
	return &AuthHandler{authService: authService, Helper: h}
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendError(c, models.InvalidField("Missing required fields"))
		return
	}
	if err := h.Helper.ValidateStruct(req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	response, err := h.authService.Register(req)
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusCreated, response)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.Helper.SendError(c, models.InvalidField("Missing required fields"))
		return
	}
	if err := h.Helper.ValidateStruct(req); err != nil {
		h.Helper.SendError(c, err)
		return
	}

	response, err := h.authService.Login(req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "401 - Unauthorized: Invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AuthHandler) Guest(c *gin.Context) {
	response, err := h.authService.Guest()
	if err != nil {
		h.Helper.SendError(c, err)
		return
	}

	c.JSON(http.StatusOK, response)
}

func (h *AuthHandler) GetProfile(c *gin.Context) {
	username, exists := c.Get("username")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"msg": "401 - Unauthorized: User not found in context"})
		return
	}

	user, err := h.authService.GetUserByUsername(username.(string))
	if err != nil {
		h.Helper.SendError(c, models.NotFound("User not found"))
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}
