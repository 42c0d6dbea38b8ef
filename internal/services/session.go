package services

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"dashboard-aggregator/internal/models"
)

// ErrSendInFlight is returned when a session already has an outstanding send.
var ErrSendInFlight = errors.New("a send is already in flight for this session")

// Session holds one conversation's append-only turn history. A session allows
// a single outstanding send at a time; each send is tagged with an increasing
// sequence number so a completion that has been superseded is discarded
// instead of overwriting newer state.
type Session struct {
	ID string

	mu         sync.Mutex
	turns      []models.ChatTurn
	sending    bool
	seq        uint64
	lastActive time.Time
}

// BeginSend appends the user turn immediately and marks the session as
// sending. It fails with ErrSendInFlight while a prior send is unresolved.
func (s *Session) BeginSend(text string) (uint64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sending {
		return 0, ErrSendInFlight
	}

	s.sending = true
	s.seq++
	s.lastActive = time.Now()
	s.turns = append(s.turns, models.ChatTurn{
		Role: models.RoleUser,
		Text: text,
	})
	return s.seq, nil
}

// CompleteSend appends the assistant turn for the send identified by seq.
// A stale seq is discarded and the history is left untouched.
func (s *Session) CompleteSend(seq uint64, turn models.ChatTurn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq != s.seq {
		return false
	}

	s.sending = false
	s.lastActive = time.Now()
	s.turns = append(s.turns, turn)
	return true
}

// FailSend resolves the send identified by seq without appending an assistant
// turn. The user's own turn remains in the history.
func (s *Session) FailSend(seq uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if seq == s.seq {
		s.sending = false
		s.lastActive = time.Now()
	}
}

// Turns returns a copy of the conversation history.
func (s *Session) Turns() []models.ChatTurn {
	s.mu.Lock()
	defer s.mu.Unlock()

	turns := make([]models.ChatTurn, len(s.turns))
	copy(turns, s.turns)
	return turns
}

// Sending reports whether a send is currently outstanding.
func (s *Session) Sending() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sending
}

// LastActive reports when the session last changed.
func (s *Session) LastActive() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastActive
}

// SessionStore keeps chat sessions in memory for the lifetime of the process.
// Idle sessions expire after the configured TTL and the store evicts the
// least recently active session when full. Nothing is persisted.
type SessionStore struct {
	mu              sync.RWMutex
	sessions        map[string]*Session
	logger          *zap.Logger
	ttl             time.Duration
	maxSize         int
	cleanupInterval time.Duration
	stopCleanup     chan struct{}
}

func NewSessionStore(ttl time.Duration, maxSize int, logger *zap.Logger) *SessionStore {
	store := &SessionStore{
		sessions:        make(map[string]*Session),
		logger:          logger,
		ttl:             ttl,
		maxSize:         maxSize,
		cleanupInterval: time.Minute,
		stopCleanup:     make(chan struct{}),
	}

	go store.startCleanup()

	return store
}

// Create registers a new empty session and returns it.
func (st *SessionStore) Create() *Session {
	session := &Session{
		ID:         uuid.NewString(),
		lastActive: time.Now(),
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	if len(st.sessions) >= st.maxSize {
		st.evictOldest()
	}
	st.sessions[session.ID] = session

	st.logger.Debug("Chat session created", zap.String("session_id", session.ID))
	return session
}

// Get looks up a session by ID.
func (st *SessionStore) Get(id string) (*Session, bool) {
	st.mu.RLock()
	session, exists := st.sessions[id]
	st.mu.RUnlock()

	if !exists {
		return nil, false
	}

	if time.Since(session.LastActive()) > st.ttl {
		st.mu.Lock()
		// The session may have been touched between the staleness check and
		// taking the write lock; re-check before deleting.
		if time.Since(session.LastActive()) > st.ttl {
			delete(st.sessions, id)
			st.mu.Unlock()
			return nil, false
		}
		st.mu.Unlock()
	}

	return session, true
}

// Len reports the number of live sessions.
func (st *SessionStore) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

func (st *SessionStore) evictOldest() {
	var oldestID string
	var oldestTime time.Time

	for id, session := range st.sessions {
		lastActive := session.LastActive()
		if oldestID == "" || lastActive.Before(oldestTime) {
			oldestID = id
			oldestTime = lastActive
		}
	}

	if oldestID != "" {
		delete(st.sessions, oldestID)
		st.logger.Debug("Evicted least recently active session",
			zap.String("session_id", oldestID))
	}
}

func (st *SessionStore) startCleanup() {
	ticker := time.NewTicker(st.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			st.cleanup()
		case <-st.stopCleanup:
			return
		}
	}
}

func (st *SessionStore) cleanup() {
	st.mu.Lock()
	defer st.mu.Unlock()

	expiredCount := 0
	for id, session := range st.sessions {
		if time.Since(session.LastActive()) > st.ttl {
			delete(st.sessions, id)
			expiredCount++
		}
	}

	if expiredCount > 0 {
		st.logger.Debug("Cleaned expired chat sessions",
			zap.Int("count", expiredCount))
	}
}

func (st *SessionStore) Stop() {
	close(st.stopCleanup)
}
