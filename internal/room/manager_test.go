package room

import (
	"errors"
	"sync"
	"testing"

	"github.com/bkuzmin/chess-game-backend/internal/dao"
	"github.com/bkuzmin/chess-game-backend/pkg/engine"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubRepository struct {
	mu      sync.Mutex
	records []dao.GameRecord
	fail    bool
}

func (s *stubRepository) InsertGame(record dao.GameRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return errors.New("insert failed")
	}
	s.records = append(s.records, record)
	return nil
}

func (s *stubRepository) GetRecentGames(limit int64) ([]dao.GameRecord, error) {
	return nil, nil
}

func (s *stubRepository) GetGamesBetweenDates(startTime, endTime primitive.DateTime) ([]dao.GameRecord, error) {
	return nil, nil
}

func activate(t *testing.T, s *Session, coords ...[2]int) engine.Snapshot {
	t.Helper()
	var snap engine.Snapshot
	var err error
	for _, c := range coords {
		snap, err = s.Activate(c[0], c[1])
		if err != nil {
			t.Fatalf("activate (%d,%d): %v", c[0], c[1], err)
		}
	}
	return snap
}

// foolsMateCoords is 1.f3 e5 2.g4 Qh4# as activation events.
var foolsMateCoords = [][2]int{
	{5, 6}, {5, 5},
	{4, 1}, {4, 3},
	{6, 6}, {6, 4},
	{3, 0}, {7, 4},
}

func TestCreateAndGet(t *testing.T) {
	m := NewManager(nil)
	s := m.Create()
	if s.ID() == "" {
		t.Fatal("session id should not be empty")
	}

	got, ok := m.Get(s.ID())
	if !ok || got != s {
		t.Fatal("Get should return the created session")
	}
	if _, ok := m.Get("nope"); ok {
		t.Error("Get with unknown id should fail")
	}

	other := m.Create()
	if other.ID() == s.ID() {
		t.Error("session ids must be unique")
	}
	if m.Count() != 2 {
		t.Errorf("Count = %d, want 2", m.Count())
	}
}

func TestActivateOutOfBounds(t *testing.T) {
	m := NewManager(nil)
	s := m.Create()
	if _, err := s.Activate(8, 0); !errors.Is(err, engine.ErrOutOfBounds) {
		t.Errorf("Activate(8,0) = %v, want ErrOutOfBounds", err)
	}
}

func TestFinishedGameArchivedOnce(t *testing.T) {
	repo := &stubRepository{}
	m := NewManager(repo)
	s := m.Create()

	snap := activate(t, s, foolsMateCoords...)
	if snap.Status != engine.StatusCheckmate {
		t.Fatalf("status = %s, want checkmate", snap.Status)
	}

	if len(repo.records) != 1 {
		t.Fatalf("archived %d records, want 1", len(repo.records))
	}
	record := repo.records[0]
	if record.GameID != s.ID() {
		t.Errorf("record game id %q, want %q", record.GameID, s.ID())
	}
	if record.Winner != "black" {
		t.Errorf("winner = %q, want black", record.Winner)
	}
	if record.MoveCount != 4 || len(record.Moves) != 4 {
		t.Errorf("move count = %d (%v), want 4", record.MoveCount, record.Moves)
	}

	// Further activations after checkmate are no-ops and must not archive
	// the same game twice.
	activate(t, s, [2]int{4, 6}, [2]int{4, 5})
	if len(repo.records) != 1 {
		t.Errorf("archived %d records after no-op, want 1", len(repo.records))
	}
}

func TestArchiveFailureKeepsSessionUsable(t *testing.T) {
	repo := &stubRepository{fail: true}
	m := NewManager(repo)
	s := m.Create()

	snap := activate(t, s, foolsMateCoords...)
	if snap.Status != engine.StatusCheckmate {
		t.Fatalf("status = %s, want checkmate", snap.Status)
	}

	snap = s.Reset()
	if snap.Status != engine.StatusPlaying {
		t.Errorf("status after reset = %s, want playing", snap.Status)
	}
}

func TestResetAllowsNewArchive(t *testing.T) {
	repo := &stubRepository{}
	m := NewManager(repo)
	s := m.Create()

	activate(t, s, foolsMateCoords...)
	s.Reset()
	activate(t, s, foolsMateCoords...)

	if len(repo.records) != 2 {
		t.Errorf("archived %d records, want 2 (one per finished game)", len(repo.records))
	}
}
