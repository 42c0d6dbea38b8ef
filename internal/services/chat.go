package services

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"dashboard-aggregator/internal/metrics"
	"dashboard-aggregator/internal/models"
)

var (
	// ErrSessionNotFound is returned for an unknown or expired session ID.
	ErrSessionNotFound = errors.New("session not found")
	// ErrEmptyMessage is returned when the user message is blank.
	ErrEmptyMessage = errors.New("message must not be empty")
	// ErrSuperseded is returned when a completed send had already been
	// superseded and its response was discarded.
	ErrSuperseded = errors.New("response superseded by a newer send")
)

// The upstream is asked to answer in bullet form so the renderer always
// produces a list.
const bulletPromptSuffix = " (Please provide your response in bullet points)"

// Generator produces a text completion for a prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// ChatService runs the assistant exchange: one outstanding send per session,
// user turns appended immediately, assistant turns only on success.
type ChatService struct {
	generator Generator
	sessions  *SessionStore
	logger    *zap.Logger
}

func NewChatService(generator Generator, sessions *SessionStore, logger *zap.Logger) *ChatService {
	return &ChatService{
		generator: generator,
		sessions:  sessions,
		logger:    logger,
	}
}

// CreateSession starts a new empty conversation.
func (s *ChatService) CreateSession() *Session {
	return s.sessions.Create()
}

// History returns the turn history of a session.
func (s *ChatService) History(sessionID string) ([]models.ChatTurn, error) {
	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return nil, ErrSessionNotFound
	}
	return session.Turns(), nil
}

// Send submits one user message. The user turn is appended before the
// upstream call; on success exactly one assistant turn follows it, on failure
// none does and the error is surfaced to the caller.
func (s *ChatService) Send(ctx context.Context, sessionID, text string) (models.ChatTurn, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.ChatTurn{}, ErrEmptyMessage
	}

	session, ok := s.sessions.Get(sessionID)
	if !ok {
		return models.ChatTurn{}, ErrSessionNotFound
	}

	seq, err := session.BeginSend(text)
	if err != nil {
		return models.ChatTurn{}, err
	}

	response, err := s.generator.Generate(ctx, text+bulletPromptSuffix)
	if err != nil {
		session.FailSend(seq)
		metrics.ChatSends.WithLabelValues(metrics.StatusFailure).Inc()
		s.logger.Warn("Chat completion failed",
			zap.String("session_id", sessionID),
			zap.Error(err))
		return models.ChatTurn{}, err
	}

	turn := models.ChatTurn{
		Role:    models.RoleAssistant,
		Text:    response,
		Bullets: SegmentBullets(response),
	}
	if !session.CompleteSend(seq, turn) {
		metrics.ChatSends.WithLabelValues(metrics.StatusFailure).Inc()
		return models.ChatTurn{}, ErrSuperseded
	}

	metrics.ChatSends.WithLabelValues(metrics.StatusSuccess).Inc()
	return turn, nil
}

// SegmentBullets splits response text into bullet items: one item per
// non-empty line with any leading bullet marker stripped. Text that is not
// bullet-formatted still becomes a list, never a raw paragraph.
func SegmentBullets(text string) []string {
	var bullets []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.TrimSpace(strings.TrimLeft(line, "-•*"))
		if line == "" {
			continue
		}
		bullets = append(bullets, line)
	}
	return bullets
}
