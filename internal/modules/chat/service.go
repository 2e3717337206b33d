// README: Turn orchestration and persona-constrained response composition.
package chat

import (
	"context"
	"time"

	"github.com/google/uuid"

	logx "foodiebot/pkg/logger"

	"foodiebot/internal/ai"
	"foodiebot/internal/modules/recommend"
)

// Recommender is the slice of the recommendation pipeline the chat service
// consumes.
type Recommender interface {
	Recommend(ctx context.Context, message, location string) []recommend.Recommendation
}

// Service owns the conversation lifecycle: registration, turns, ending, and
// preference capture.
type Service struct {
	store       *Store
	gen         ai.Generator
	recommender Recommender
}

func NewService(store *Store, gen ai.Generator, recommender Recommender) *Service {
	return &Service{store: store, gen: gen, recommender: recommender}
}

// Register stores the profile and opens a session seeded with the greeting.
func (s *Service) Register(p UserProfile) (userID, sessionID string, err error) {
	if p.Name == "" || p.Location == "" || p.Age <= 0 {
		return "", "", ErrBadRequest
	}
	userID = s.store.RegisterProfile(p)
	session := s.store.CreateSession(p, botMessage(greetingText(p), nil))
	return userID, session.ID, nil
}

// Turn processes one user message: append it, run the recommendation pipeline,
// compose the reply, append and return the bot message. The only errors are
// session-not-found and session-ended; upstream degradation never surfaces.
func (s *Service) Turn(ctx context.Context, sessionID, content string) (Message, Message, error) {
	profile, err := s.store.Profile(sessionID)
	if err != nil {
		return Message{}, Message{}, err
	}

	userMsg := Message{
		ID:        uuid.NewString(),
		Content:   content,
		Sender:    SenderUser,
		Timestamp: time.Now(),
	}
	if err := s.store.AppendMessage(sessionID, userMsg); err != nil {
		return Message{}, Message{}, err
	}

	recs := s.recommender.Recommend(ctx, content, profile.Location)
	reply, recs := s.Compose(ctx, content, profile, recs)

	botMsg := botMessage(reply, recs)
	if err := s.store.AppendMessage(sessionID, botMsg); err != nil {
		return Message{}, Message{}, err
	}
	return userMsg, botMsg, nil
}

// Compose merges the recommendations into a persona-constrained model reply.
// On model failure it falls back to a fixed sentence referencing the user's
// location, paired with an empty recommendation list. A blank model reply
// keeps the recommendations but substitutes a fixed prompt line. Either way
// the turn always produces some reply.
func (s *Service) Compose(ctx context.Context, message string, profile UserProfile, recs []recommend.Recommendation) (string, []recommend.Recommendation) {
	names := make([]string, len(recs))
	for i, r := range recs {
		names[i] = r.Name
	}

	reply, err := s.gen.Generate(ctx, systemPrompt, userContext(message, profile, names))
	if err != nil {
		logx.Warn().Err(err).Msg("response generation failed, using fallback reply")
		return fallbackText(profile.Location), nil
	}
	if reply == "" {
		return emptyReplyText(profile.Location), recs
	}
	return reply, recs
}

// End closes the session and appends the farewell message.
func (s *Service) End(sessionID string) error {
	return s.store.End(sessionID, botMessage(farewellText, nil))
}

// Session returns the full session by id.
func (s *Service) Session(sessionID string) (Session, error) {
	return s.store.Get(sessionID)
}

// History lists summaries of every session.
func (s *Service) History() []Summary {
	return s.store.List()
}

// SavePreference validates and records a like/dislike.
func (s *Service) SavePreference(p Preference) error {
	if p.SessionID == "" || p.RestaurantID == "" {
		return ErrBadRequest
	}
	if p.Preference != "like" && p.Preference != "dislike" {
		return ErrBadRequest
	}
	if _, err := s.store.Get(p.SessionID); err != nil {
		return err
	}
	s.store.SavePreference(p)
	return nil
}

func botMessage(content string, recs []recommend.Recommendation) Message {
	return Message{
		ID:          uuid.NewString(),
		Content:     content,
		Sender:      SenderBot,
		Timestamp:   time.Now(),
		Restaurants: recs,
	}
}
