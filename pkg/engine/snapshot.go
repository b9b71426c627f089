package engine

import "encoding/json"

// PieceState is a serializable view of a single piece.
type PieceState struct {
	ID       int       `json:"id"`
	Type     PieceType `json:"type"`
	Color    Color     `json:"color"`
	X        int       `json:"x"`
	Y        int       `json:"y"`
	HasMoved bool      `json:"has_moved"`
}

// Snapshot is a serializable view of the whole game state, consumed by the
// HTTP layer and renderers. It shares nothing with the live board.
type Snapshot struct {
	Pieces        []PieceState `json:"pieces"`
	CurrentPlayer Color        `json:"current_player"`
	Status        Status       `json:"status"`
	Selected      *Square      `json:"selected,omitempty"`
	LegalMoves    []Square     `json:"legal_moves"`
	Captured      []PieceState `json:"captured"`
	MoveLog       []string     `json:"move_log"`
}

func (s Snapshot) String() string {
	j, _ := json.MarshalIndent(s, "", "\t")
	return string(j)
}

func pieceState(pc *Piece) PieceState {
	return PieceState{
		ID:       pc.ID,
		Type:     pc.Type,
		Color:    pc.Color,
		X:        pc.Position.File,
		Y:        pc.Position.Rank,
		HasMoved: pc.HasMoved,
	}
}

// Snapshot captures the current state of the session.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Pieces:        make([]PieceState, 0, 32),
		CurrentPlayer: g.currentPlayer,
		Status:        g.status,
		LegalMoves:    g.LegalMoves(),
		Captured:      make([]PieceState, 0, len(g.captured)),
		MoveLog:       g.MoveLog(),
	}
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			if pc := g.board[rank][file]; pc != nil {
				snap.Pieces = append(snap.Pieces, pieceState(pc))
			}
		}
	}
	for i := range g.captured {
		snap.Captured = append(snap.Captured, pieceState(&g.captured[i]))
	}
	if g.selected != nil {
		selected := *g.selected
		snap.Selected = &selected
	}
	return snap
}
