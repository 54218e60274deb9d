package controllers

import (
	"net/http"

	"github.com/qashsolutions/myhealthguide-sub011/services"

	"github.com/gin-gonic/gin"
)

type ChatController struct {
	AI *services.AIService // nil when Gemini is not configured
}

func NewChatController(ai *services.AIService) *ChatController {
	return &ChatController{AI: ai}
}

func (h *ChatController) available(c *gin.Context) bool {
	if h.AI == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "AI features are not configured"})
		return false
	}
	return true
}

type startChatReq struct {
	GroupID uint   `json:"group_id"`
	ElderID uint   `json:"elder_id"`
	Title   string `json:"title"`
}

// POST /api/chat
func (h *ChatController) StartChat(c *gin.Context) {
	if !h.available(c) {
		return
	}
	userID, _ := userIDFromCtx(c)
	var req startChatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	session, err := h.AI.StartChat(userID, req.GroupID, req.ElderID, req.Title)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"session_id": session.SessionID})
}

// GET /api/chat
func (h *ChatController) ListSessions(c *gin.Context) {
	if !h.available(c) {
		return
	}
	userID, _ := userIDFromCtx(c)
	sessions, err := h.AI.ListSessions(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, sessions)
}

type chatMessageReq struct {
	Message string `json:"message" binding:"required"`
}

// POST /api/chat/:sessionID/messages
func (h *ChatController) SendMessage(c *gin.Context) {
	if !h.available(c) {
		return
	}
	userID, _ := userIDFromCtx(c)
	var req chatMessageReq
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	reply, err := h.AI.SendMessage(c.Request.Context(), c.Param("sessionID"), userID, req.Message)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "chat unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"reply": reply})
}

// GET /api/chat/:sessionID/messages
func (h *ChatController) ListMessages(c *gin.Context) {
	if !h.available(c) {
		return
	}
	userID, _ := userIDFromCtx(c)
	msgs, err := h.AI.ListMessages(c.Param("sessionID"), userID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "session not found"})
		return
	}
	c.JSON(http.StatusOK, msgs)
}
