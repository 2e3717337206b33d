// README: Session history and lookup endpoints.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodiebot/internal/modules/chat"
)

type SessionHandler struct {
	chat *chat.Service
}

func NewSessionHandler(chatSvc *chat.Service) *SessionHandler {
	return &SessionHandler{chat: chatSvc}
}

// History handles GET /api/chat-history.
func (h *SessionHandler) History(c *gin.Context) {
	writeJSON(c, http.StatusOK, gin.H{"sessions": h.chat.History()})
}

// Get handles GET /api/chat-session/:session_id.
func (h *SessionHandler) Get(c *gin.Context) {
	session, err := h.chat.Session(c.Param("session_id"))
	if err != nil {
		writeChatError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, session)
}
