package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"invoice-backend/models"
)

// ChatController persists and retrieves chatbot conversation history.
type ChatController struct {
	DB *gorm.DB
}

// SaveChatInput carries one chat turn: the user's message and the
// assistant's reply.
type SaveChatInput struct {
	Mobile      string          `json:"mobile" binding:"required"`
	UserMessage *models.Message `json:"userMessage" binding:"required"`
	AIMessage   *models.Message `json:"aiMessage" binding:"required"`
}

// SaveChat creates one new session holding exactly the two messages of this
// turn. It never appends to an existing session.
func (cc *ChatController) SaveChat(c *gin.Context) {
	var input SaveChatInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"success": false,
			"message": "Missing required fields",
		})
		return
	}

	now := time.Now()
	messages := models.Messages{*input.UserMessage, *input.AIMessage}
	for i := range messages {
		if messages[i].Timestamp.IsZero() {
			messages[i].Timestamp = now
		}
	}

	session := models.ChatSession{
		Mobile:    input.Mobile,
		Messages:  messages,
		CreatedAt: now,
	}

	if err := cc.DB.Create(&session).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to save chat",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Chat saved successfully",
		"id":      session.ID,
	})
}

// GetChatHistory returns every message for a mobile number, flattened from
// its sessions in creation order. No sessions means an empty list, not an
// error.
func (cc *ChatController) GetChatHistory(c *gin.Context) {
	mobile := c.Param("mobile")

	var sessions []models.ChatSession
	if err := cc.DB.Where("mobile = ?", mobile).
		Order("created_at ASC").
		Find(&sessions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch chat history",
		})
		return
	}

	messages := make(models.Messages, 0)
	for _, session := range sessions {
		messages = append(messages, session.Messages...)
	}

	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"messages": messages,
	})
}

// DeleteChatHistory removes all sessions for a mobile number. Deleting
// nothing is a valid outcome.
func (cc *ChatController) DeleteChatHistory(c *gin.Context) {
	mobile := c.Param("mobile")

	result := cc.DB.Where("mobile = ?", mobile).Delete(&models.ChatSession{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to delete chat history",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Chat history deleted",
		"deleted": result.RowsAffected,
	})
}

// GetAllChats dumps every session across all users, newest first. No
// pagination and no access control.
func (cc *ChatController) GetAllChats(c *gin.Context) {
	sessions := make([]models.ChatSession, 0)
	if err := cc.DB.Order("created_at DESC").Find(&sessions).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"success": false,
			"message": "Failed to fetch chats",
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"chats":   sessions,
	})
}
