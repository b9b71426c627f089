package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/bkuzmin/chess-game-backend/pkg/engine"
)

func TestWriteBoardSVG(t *testing.T) {
	g := engine.NewGame()
	var buf bytes.Buffer
	WriteBoardSVG(&buf, g.Snapshot())

	out := buf.String()
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "</svg>") {
		t.Fatal("output is not an SVG document")
	}
	if got := strings.Count(out, "♙"); got != 8 {
		t.Errorf("white pawn glyphs = %d, want 8", got)
	}
	if got := strings.Count(out, "♚"); got != 1 {
		t.Errorf("black king glyphs = %d, want 1", got)
	}
}

func TestWriteBoardSVGSelection(t *testing.T) {
	g := engine.NewGame()
	if err := g.ActivateSquare(4, 6); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	WriteBoardSVG(&buf, g.Snapshot())

	out := buf.String()
	if !strings.Contains(out, "stroke:#e63946") {
		t.Error("selected square highlight missing")
	}
	if got := strings.Count(out, "<circle"); got != 2 {
		t.Errorf("legal move markers = %d, want 2", got)
	}
}
