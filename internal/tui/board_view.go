package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bkuzmin/chess-game-backend/pkg/engine"
)

var (
	lightSquare  = lipgloss.NewStyle().Background(lipgloss.Color("180")).Foreground(lipgloss.Color("0"))
	darkSquare   = lipgloss.NewStyle().Background(lipgloss.Color("94")).Foreground(lipgloss.Color("0"))
	selectedCell = lipgloss.NewStyle().Background(lipgloss.Color("203")).Foreground(lipgloss.Color("0"))
	legalCell    = lipgloss.NewStyle().Background(lipgloss.Color("36")).Foreground(lipgloss.Color("0"))
	cursorCell   = lipgloss.NewStyle().Background(lipgloss.Color("220")).Foreground(lipgloss.Color("0"))
	labelStyle   = lipgloss.NewStyle().Faint(true)
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

func glyphFor(c engine.Color, t engine.PieceType) string {
	return glyphs[c][t]
}

// renderBoard draws the position with rank 8 on top (black side up), marking
// the cursor, the selection and its legal destinations.
func renderBoard(g *engine.Game, cursor engine.Square) string {
	selected, hasSelection := g.Selected()
	legal := make(map[engine.Square]bool)
	for _, mv := range g.LegalMoves() {
		legal[mv] = true
	}

	var b strings.Builder
	for rank := 0; rank < 8; rank++ {
		b.WriteString(labelStyle.Render(string(rune('0' + 8 - rank))))
		b.WriteString(" ")
		for file := 0; file < 8; file++ {
			sq := engine.Square{File: file, Rank: rank}

			cell := " · "
			if pc, ok := g.PieceAt(file, rank); ok {
				cell = " " + glyphFor(pc.Color, pc.Type) + " "
			}

			style := darkSquare
			switch {
			case sq == cursor:
				style = cursorCell
			case hasSelection && sq == selected:
				style = selectedCell
			case legal[sq]:
				style = legalCell
			case (file+rank)%2 == 0:
				style = lightSquare
			}
			b.WriteString(style.Render(cell))
		}
		b.WriteString("\n")
	}
	b.WriteString(labelStyle.Render("   a  b  c  d  e  f  g  h"))
	b.WriteString("\n")
	return b.String()
}
