// README: Restaurant like/dislike preference endpoint.
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodiebot/internal/modules/chat"
)

type PreferenceHandler struct {
	chat *chat.Service
}

func NewPreferenceHandler(chatSvc *chat.Service) *PreferenceHandler {
	return &PreferenceHandler{chat: chatSvc}
}

type preferenceReq struct {
	RestaurantID string `json:"restaurant_id"`
	Preference   string `json:"preference"`
	SessionID    string `json:"session_id"`
	Feedback     string `json:"feedback"`
}

// Save handles POST /api/restaurant-preference.
func (h *PreferenceHandler) Save(c *gin.Context) {
	var req preferenceReq
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, http.StatusBadRequest, "invalid json")
		return
	}

	err := h.chat.SavePreference(chat.Preference{
		RestaurantID: req.RestaurantID,
		Preference:   req.Preference,
		SessionID:    req.SessionID,
		Feedback:     req.Feedback,
	})
	if err != nil {
		writeChatError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"message": "Preference saved successfully"})
}
