// README: Chat session aggregate, messages, and preferences.
package chat

import (
	"time"

	"foodiebot/internal/modules/recommend"
)

// UserProfile is captured at registration and immutable for the session.
// Location is free text and drives every recommendation fetch.
type UserProfile struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Location string `json:"location"`
}

type Sender string

const (
	SenderUser Sender = "user"
	SenderBot  Sender = "bot"
)

// Message is one turn entry. Restaurants is set only on bot messages that
// carry recommendation cards.
type Message struct {
	ID          string                     `json:"id"`
	Content     string                     `json:"content"`
	Sender      Sender                     `json:"sender"`
	Timestamp   time.Time                  `json:"timestamp"`
	Restaurants []recommend.Recommendation `json:"restaurants,omitempty"`
}

// Session holds one conversation. Messages are append-only in receipt order.
type Session struct {
	ID        string      `json:"id"`
	Profile   UserProfile `json:"user_profile"`
	Messages  []Message   `json:"messages"`
	CreatedAt time.Time   `json:"created_at"`
	EndedAt   *time.Time  `json:"ended_at,omitempty"`
	IsActive  bool        `json:"is_active"`
}

// Summary is the chat-history listing shape.
type Summary struct {
	ID           string     `json:"id"`
	UserName     string     `json:"user_name"`
	CreatedAt    time.Time  `json:"created_at"`
	EndedAt      *time.Time `json:"ended_at,omitempty"`
	MessageCount int        `json:"message_count"`
	IsActive     bool       `json:"is_active"`
	Preview      string     `json:"preview"`
}

// Preference records a like/dislike for a recommended restaurant, with
// optional free-text feedback.
type Preference struct {
	RestaurantID string `json:"restaurant_id"`
	Preference   string `json:"preference"`
	SessionID    string `json:"session_id"`
	Feedback     string `json:"feedback,omitempty"`
}
