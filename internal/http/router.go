// README: HTTP router registration.
package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"foodiebot/internal/http/handlers"
	"foodiebot/internal/http/middleware"
	"foodiebot/internal/modules/chat"
	"foodiebot/internal/modules/recommend"
	"foodiebot/internal/qloo"
)

type RouterDeps struct {
	Chat       *chat.Service
	Provider   qloo.Client
	Fetcher    *recommend.Fetcher
	CORSOrigin string
}

func NewRouter(deps RouterDeps) http.Handler {
	r := gin.New()
	r.Use(middleware.Recovery())
	r.Use(middleware.Logging())
	r.Use(middleware.CORS(deps.CORSOrigin))

	chatHandler := handlers.NewChatHandler(deps.Chat)
	r.POST("/api/register-user", chatHandler.Register)
	r.POST("/api/chat", chatHandler.Chat)
	r.POST("/api/end-chat/:session_id", chatHandler.End)

	sessionHandler := handlers.NewSessionHandler(deps.Chat)
	r.GET("/api/chat-history", sessionHandler.History)
	r.GET("/api/chat-session/:session_id", sessionHandler.Get)

	preferenceHandler := handlers.NewPreferenceHandler(deps.Chat)
	r.POST("/api/restaurant-preference", preferenceHandler.Save)

	restaurantHandler := handlers.NewRestaurantHandler(deps.Provider, deps.Fetcher)
	r.GET("/api/restaurant-details/:restaurant_id", restaurantHandler.Details)
	r.GET("/api/test-qloo", restaurantHandler.Probe)

	r.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy", "timestamp": time.Now()})
	})

	return r
}
