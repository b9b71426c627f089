// Package room manages live game sessions and hands finished games to the
// archive repository.
package room

import (
	"crypto/md5"
	"fmt"
	"log"
	"strconv"
	"sync"
	"time"

	"github.com/bkuzmin/chess-game-backend/internal/dao"
	"github.com/bkuzmin/chess-game-backend/pkg/engine"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Session owns one live game. Every access goes through its mutex, so the
// engine keeps exactly one writer at a time.
type Session struct {
	mu        sync.Mutex
	id        string
	game      *engine.Game
	startedAt time.Time
	archived  bool
	repo      dao.GameRepository
}

func (s *Session) ID() string {
	return s.id
}

func (s *Session) Snapshot() engine.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.Snapshot()
}

// Activate applies one square-activation event and returns the resulting
// state. When the event finishes the game, the session is archived.
func (s *Session) Activate(x, y int) (engine.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.game.ActivateSquare(x, y); err != nil {
		return engine.Snapshot{}, err
	}
	s.archiveIfFinished()
	return s.game.Snapshot(), nil
}

// Reset starts a fresh game under the same session id.
func (s *Session) Reset() engine.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.Reset()
	s.startedAt = time.Now()
	s.archived = false
	return s.game.Snapshot()
}

// archiveIfFinished stores a finished game exactly once. Archive failures
// are logged, not surfaced: the session itself stays readable.
func (s *Session) archiveIfFinished() {
	if s.repo == nil || s.archived || s.game.Status() != engine.StatusCheckmate {
		return
	}
	moves := s.game.MoveLog()
	record := dao.GameRecord{
		GameID:        s.id,
		Winner:        s.game.CurrentPlayer().Opposite().String(),
		Status:        s.game.Status().String(),
		Moves:         moves,
		MoveCount:     len(moves),
		CapturedCount: len(s.game.Captured()),
		StartedAt:     primitive.NewDateTimeFromTime(s.startedAt),
		FinishedAt:    primitive.NewDateTimeFromTime(time.Now()),
	}
	if err := s.repo.InsertGame(record); err != nil {
		log.Println("archive game error:", err.Error())
		return
	}
	s.archived = true
}

// Manager is the registry of live sessions.
type Manager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	total    int
	repo     dao.GameRepository
}

func NewManager(repo dao.GameRepository) *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
		repo:     repo,
	}
}

// Create registers a new session with a fresh game.
func (m *Manager) Create() *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.total++
	byteValue := []byte(strconv.Itoa(m.total))
	id := fmt.Sprintf("%x", md5.Sum(byteValue))

	session := &Session{
		id:        id,
		game:      engine.NewGame(),
		startedAt: time.Now(),
		repo:      m.repo,
	}
	m.sessions[id] = session
	return session
}

func (m *Manager) Get(id string) (*Session, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	session, ok := m.sessions[id]
	return session, ok
}

func (m *Manager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}
