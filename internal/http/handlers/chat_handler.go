// README: Chat endpoints: registration, turns, ending sessions.
package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"foodiebot/internal/modules/chat"
)

type ChatHandler struct {
	chat *chat.Service
}

func NewChatHandler(chatSvc *chat.Service) *ChatHandler {
	return &ChatHandler{chat: chatSvc}
}

type registerReq struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Location string `json:"location"`
}

// Register handles POST /api/register-user.
func (h *ChatHandler) Register(c *gin.Context) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	profile := chat.UserProfile{
		Name:     strings.TrimSpace(req.Name),
		Age:      req.Age,
		Location: strings.TrimSpace(req.Location),
	}
	userID, sessionID, err := h.chat.Register(profile)
	if err != nil {
		writeChatError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, gin.H{
		"user_id":    userID,
		"session_id": sessionID,
		"message":    "User registered successfully",
	})
}

type chatReq struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

// Chat handles POST /api/chat.
func (h *ChatHandler) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	req.Message = strings.TrimSpace(req.Message)
	if req.Message == "" || req.SessionID == "" {
		writeError(c, http.StatusBadRequest, "missing message or session_id")
		return
	}

	userMsg, botMsg, err := h.chat.Turn(c.Request.Context(), req.SessionID, req.Message)
	if err != nil {
		writeChatError(c, err)
		return
	}

	writeJSON(c, http.StatusOK, gin.H{
		"user_message": userMsg,
		"bot_message":  botMsg,
	})
}

// End handles POST /api/end-chat/:session_id.
func (h *ChatHandler) End(c *gin.Context) {
	if err := h.chat.End(c.Param("session_id")); err != nil {
		writeChatError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"message": "Chat session ended successfully"})
}
