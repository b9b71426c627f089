package engine

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned by ActivateSquare for coordinates outside the
// 8x8 board. It is the engine's only recoverable error: every in-range
// activation maps to a defined transition, including the no-op cases.
var ErrOutOfBounds = errors.New("square out of bounds")

// Game owns one interactive session: the current board, whose turn it is,
// the transient selection, captured pieces, move log and derived status.
// It has exactly one writer; callers serialize events externally.
type Game struct {
	board         Board
	currentPlayer Color
	selected      *Square
	legalMoves    []Square
	status        Status
	captured      []Piece
	moveLog       []string
}

// NewGame creates a session with the standard initial placement, white to move.
func NewGame() *Game {
	g := &Game{}
	g.Reset()
	return g
}

// Reset recreates the initial state unconditionally. There is no partial reset.
func (g *Game) Reset() {
	g.board = StartingBoard()
	g.currentPlayer = White
	g.selected = nil
	g.legalMoves = nil
	g.status = StatusPlaying
	g.captured = nil
	g.moveLog = nil
}

// ActivateSquare feeds the single external event, "square activated at
// (x, y)", into the selection state machine. x is the file, y the rank index.
// Out-of-range coordinates are rejected; every in-range activation succeeds,
// possibly as a no-op. Once checkmate is reached all activations are ignored
// until Reset.
func (g *Game) ActivateSquare(x, y int) error {
	if !inBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	if g.status == StatusCheckmate {
		return nil
	}

	sq := Square{File: x, Rank: y}
	pc := g.board.PieceAt(sq)

	if g.selected == nil {
		if pc != nil && pc.Color == g.currentPlayer {
			g.selectSquare(sq)
		}
		return nil
	}

	if *g.selected == sq {
		g.clearSelection()
		return nil
	}

	for _, to := range g.legalMoves {
		if to == sq {
			g.applyMove(*g.selected, sq)
			return nil
		}
	}

	if pc != nil && pc.Color == g.currentPlayer {
		g.selectSquare(sq)
		return nil
	}
	g.clearSelection()
	return nil
}

func (g *Game) selectSquare(sq Square) {
	selected := sq
	g.selected = &selected
	g.legalMoves = g.board.LegalMoves(sq)
}

func (g *Game) clearSelection() {
	g.selected = nil
	g.legalMoves = nil
}

// applyMove commits a validated move atomically: the board is replaced by a
// copy with the move applied, the capture and notation are recorded, the turn
// flips and the status is recomputed for the new side to move.
func (g *Game) applyMove(from, to Square) {
	next := g.board.clone()
	pc := next.PieceAt(from)
	captured := next.PieceAt(to)

	next.move(from, to)
	pc.HasMoved = true

	if captured != nil {
		g.captured = append(g.captured, *captured)
	}
	g.moveLog = append(g.moveLog, formatMove(pc, to, captured))

	g.board = next
	g.currentPlayer = g.currentPlayer.Opposite()
	g.clearSelection()
	g.status = g.board.StatusFor(g.currentPlayer)
}

// PieceAt returns a copy of the piece at (x, y), if any.
func (g *Game) PieceAt(x, y int) (Piece, bool) {
	pc := g.board.PieceAt(Square{File: x, Rank: y})
	if pc == nil {
		return Piece{}, false
	}
	return *pc, true
}

func (g *Game) CurrentPlayer() Color {
	return g.currentPlayer
}

func (g *Game) Status() Status {
	return g.status
}

// Selected returns the currently selected square, if any.
func (g *Game) Selected() (Square, bool) {
	if g.selected == nil {
		return Square{}, false
	}
	return *g.selected, true
}

// LegalMoves returns the legal destinations for the current selection, in
// board scan order. Empty when nothing is selected.
func (g *Game) LegalMoves() []Square {
	moves := make([]Square, len(g.legalMoves))
	copy(moves, g.legalMoves)
	return moves
}

// Captured returns the captured pieces in capture order.
func (g *Game) Captured() []Piece {
	captured := make([]Piece, len(g.captured))
	copy(captured, g.captured)
	return captured
}

// MoveLog returns the formatted moves in play order.
func (g *Game) MoveLog() []string {
	moves := make([]string, len(g.moveLog))
	copy(moves, g.moveLog)
	return moves
}
