// Package render draws a game snapshot as an SVG document for web frontends.
package render

import (
	"io"

	svg "github.com/ajstarks/svgo"
	"github.com/bkuzmin/chess-game-backend/pkg/engine"
)

const cellSize = 48

const (
	lightFill     = "fill:#f0d9b5"
	darkFill      = "fill:#b58863"
	selectedStyle = "fill:none;stroke:#e63946;stroke-width:3"
	legalDotStyle = "fill:#2a9d8f;fill-opacity:0.6"
	pieceStyle    = "text-anchor:middle;font-size:36px"
)

var glyphs = map[engine.Color]map[engine.PieceType]string{
	engine.White: {
		engine.King:   "♔",
		engine.Queen:  "♕",
		engine.Rook:   "♖",
		engine.Bishop: "♗",
		engine.Knight: "♘",
		engine.Pawn:   "♙",
	},
	engine.Black: {
		engine.King:   "♚",
		engine.Queen:  "♛",
		engine.Rook:   "♜",
		engine.Bishop: "♝",
		engine.Knight: "♞",
		engine.Pawn:   "♟",
	},
}

// WriteBoardSVG renders the board with the current selection and legal-move
// markers. Rank 0 is drawn at the top, matching the engine's orientation
// with white at the bottom.
func WriteBoardSVG(w io.Writer, snap engine.Snapshot) {
	canvas := svg.New(w)
	size := 8 * cellSize
	canvas.Start(size, size)

	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			fill := darkFill
			if (file+rank)%2 == 0 {
				fill = lightFill
			}
			canvas.Rect(file*cellSize, rank*cellSize, cellSize, cellSize, fill)
		}
	}

	for _, mv := range snap.LegalMoves {
		canvas.Circle(mv.File*cellSize+cellSize/2, mv.Rank*cellSize+cellSize/2, cellSize/6, legalDotStyle)
	}

	if snap.Selected != nil {
		canvas.Rect(snap.Selected.File*cellSize, snap.Selected.Rank*cellSize, cellSize, cellSize, selectedStyle)
	}

	for _, pc := range snap.Pieces {
		glyph := glyphs[pc.Color][pc.Type]
		canvas.Text(pc.X*cellSize+cellSize/2, pc.Y*cellSize+cellSize*3/4, glyph, pieceStyle)
	}

	canvas.End()
}
