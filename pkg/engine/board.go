// Package engine implements the chess rules engine: board representation,
// per-piece move legality, check detection and the game session state machine.
package engine

import "strings"

type Color string

const (
	White Color = "white"
	Black Color = "black"
)

func (c Color) Opposite() Color {
	if c == White {
		return Black
	}
	return White
}

func (c Color) String() string {
	return string(c)
}

type PieceType string

const (
	Pawn   PieceType = "pawn"
	Rook   PieceType = "rook"
	Knight PieceType = "knight"
	Bishop PieceType = "bishop"
	Queen  PieceType = "queen"
	King   PieceType = "king"
)

func (t PieceType) String() string {
	return string(t)
}

// letter is the algebraic prefix: empty for pawns, otherwise the upper-cased
// first letter of the type name. Knights therefore share "K" with the king.
func (t PieceType) letter() string {
	if t == Pawn {
		return ""
	}
	return strings.ToUpper(string(t)[:1])
}

// Square addresses a board cell. File runs a..h as 0..7, Rank is the array
// rank index with 0 at black's back rank.
type Square struct {
	File int `json:"x"`
	Rank int `json:"y"`
}

func inBounds(file, rank int) bool {
	return file >= 0 && file < 8 && rank >= 0 && rank < 8
}

// Name returns the square in algebraic form, e.g. "e4".
func (s Square) Name() string {
	return string(rune('a'+s.File)) + string(rune('0'+8-s.Rank))
}

// Piece is a single piece on the board. ID is assigned once at setup and is
// stable for the lifetime of a game so external renderers can key animations
// on it; the rules never consult it.
type Piece struct {
	ID       int       `json:"id"`
	Type     PieceType `json:"type"`
	Color    Color     `json:"color"`
	Position Square    `json:"position"`
	HasMoved bool      `json:"has_moved"`
}

// Board is an 8x8 grid indexed [rank][file]. The grid is authoritative;
// each piece's Position is kept in sync by the mutation helpers.
type Board [8][8]*Piece

var backRankOrder = [8]PieceType{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}

// StartingBoard builds the standard initial placement. Black occupies ranks
// 0 and 1, white ranks 6 and 7. Piece IDs are assigned deterministically.
func StartingBoard() Board {
	var b Board
	nextID := 1
	place := func(t PieceType, c Color, file, rank int) {
		b[rank][file] = &Piece{
			ID:       nextID,
			Type:     t,
			Color:    c,
			Position: Square{File: file, Rank: rank},
		}
		nextID++
	}

	setup := func(c Color, backRank, pawnRank int) {
		for file, t := range backRankOrder {
			place(t, c, file, backRank)
		}
		for file := 0; file < 8; file++ {
			place(Pawn, c, file, pawnRank)
		}
	}

	setup(Black, 0, 1)
	setup(White, 7, 6)
	return b
}

// PieceAt returns the piece on sq, or nil for an empty or out-of-range square.
func (b *Board) PieceAt(sq Square) *Piece {
	if !inBounds(sq.File, sq.Rank) {
		return nil
	}
	return b[sq.Rank][sq.File]
}

// clone deep-copies the board so hypothetical moves cannot alias pieces on
// the real game board.
func (b *Board) clone() Board {
	var next Board
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			if b[rank][file] == nil {
				continue
			}
			pc := *b[rank][file]
			next[rank][file] = &pc
		}
	}
	return next
}

// move relocates the piece on from to to, overwriting any occupant and
// updating the piece's denormalized Position.
func (b *Board) move(from, to Square) {
	pc := b[from.Rank][from.File]
	b[to.Rank][to.File] = pc
	b[from.Rank][from.File] = nil
	pc.Position = to
}
