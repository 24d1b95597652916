package controllers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invoice-backend/models"
)

func chatTurn(userText, aiText string) map[string]any {
	return map[string]any{
		"mobile":      "9876543210",
		"userMessage": map[string]any{"text": userText, "isUser": true},
		"aiMessage":   map[string]any{"text": aiText, "isUser": false},
	}
}

func TestSaveChatMissingFields(t *testing.T) {
	r, db := setupRouter(t)

	body := map[string]any{
		"mobile":      "9876543210",
		"userMessage": map[string]any{"text": "hello", "isUser": true},
		// aiMessage missing
	}
	w := performRequest(r, http.MethodPost, "/save-chat", body)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	decodeBody(t, w, &resp)
	assert.False(t, resp.Success)
	assert.Equal(t, "Missing required fields", resp.Message)

	// Nothing was written.
	var count int64
	require.NoError(t, db.Model(&models.ChatSession{}).Count(&count).Error)
	require.Zero(t, count)
}

func TestSaveChatAndHistory(t *testing.T) {
	r, db := setupRouter(t)

	w := performRequest(r, http.MethodPost, "/save-chat", chatTurn("hello", "hi, how can I help?"))
	require.Equal(t, http.StatusOK, w.Code)

	var saved struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
		ID      string `json:"id"`
	}
	decodeBody(t, w, &saved)
	assert.True(t, saved.Success)
	assert.Equal(t, "Chat saved successfully", saved.Message)
	assert.NotEmpty(t, saved.ID)

	// Each turn is its own session record.
	time.Sleep(5 * time.Millisecond)
	w = performRequest(r, http.MethodPost, "/save-chat", chatTurn("make me an invoice", "sure, which company?"))
	require.Equal(t, http.StatusOK, w.Code)

	var sessions int64
	require.NoError(t, db.Model(&models.ChatSession{}).Count(&sessions).Error)
	require.Equal(t, int64(2), sessions)

	// History flattens sessions oldest first.
	w = performRequest(r, http.MethodGet, "/chat-history/9876543210", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var history struct {
		Success  bool             `json:"success"`
		Messages []models.Message `json:"messages"`
	}
	decodeBody(t, w, &history)
	assert.True(t, history.Success)
	require.Len(t, history.Messages, 4)
	assert.Equal(t, "hello", history.Messages[0].Text)
	assert.True(t, history.Messages[0].IsUser)
	assert.Equal(t, "hi, how can I help?", history.Messages[1].Text)
	assert.False(t, history.Messages[1].IsUser)
	assert.Equal(t, "make me an invoice", history.Messages[2].Text)
	assert.Equal(t, "sure, which company?", history.Messages[3].Text)
	assert.False(t, history.Messages[0].Timestamp.IsZero())
}

func TestChatHistoryEmpty(t *testing.T) {
	r, _ := setupRouter(t)

	w := performRequest(r, http.MethodGet, "/chat-history/0000000000", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var history struct {
		Success  bool             `json:"success"`
		Messages []models.Message `json:"messages"`
	}
	decodeBody(t, w, &history)
	assert.True(t, history.Success)
	assert.NotNil(t, history.Messages)
	assert.Empty(t, history.Messages)
}

func TestDeleteChatHistory(t *testing.T) {
	r, _ := setupRouter(t)

	// Deleting a mobile with no sessions reports zero, not an error.
	w := performRequest(r, http.MethodDelete, "/chat-history/9876543210", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool  `json:"success"`
		Deleted int64 `json:"deleted"`
	}
	decodeBody(t, w, &resp)
	assert.True(t, resp.Success)
	assert.Zero(t, resp.Deleted)

	performRequest(r, http.MethodPost, "/save-chat", chatTurn("a", "b"))
	performRequest(r, http.MethodPost, "/save-chat", chatTurn("c", "d"))

	w = performRequest(r, http.MethodDelete, "/chat-history/9876543210", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decodeBody(t, w, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, int64(2), resp.Deleted)

	// History is empty afterwards.
	w = performRequest(r, http.MethodGet, "/chat-history/9876543210", nil)
	var history struct {
		Messages []models.Message `json:"messages"`
	}
	decodeBody(t, w, &history)
	assert.Empty(t, history.Messages)
}

func TestGetAllChats(t *testing.T) {
	r, _ := setupRouter(t)

	performRequest(r, http.MethodPost, "/save-chat", chatTurn("first", "reply"))
	time.Sleep(5 * time.Millisecond)
	second := chatTurn("second", "reply")
	second["mobile"] = "1112223334"
	performRequest(r, http.MethodPost, "/save-chat", second)

	w := performRequest(r, http.MethodGet, "/admin/all-chats", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Success bool                 `json:"success"`
		Chats   []models.ChatSession `json:"chats"`
	}
	decodeBody(t, w, &resp)
	assert.True(t, resp.Success)
	require.Len(t, resp.Chats, 2)

	// Newest first.
	assert.Equal(t, "1112223334", resp.Chats[0].Mobile)
	assert.Equal(t, "9876543210", resp.Chats[1].Mobile)
}
