// Package tui is a local terminal client for the chess engine, driving it
// through the same square-activation event the HTTP API uses.
package tui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bkuzmin/chess-game-backend/pkg/engine"
)

type mode int

const (
	modeNormal mode = iota
	modeInput
)

type Model struct {
	game   *engine.Game
	cursor engine.Square

	m     mode
	input textinput.Model
	note  string

	width  int
	height int
}

var reSquare = regexp.MustCompile(`^[a-h][1-8]$`)

func NewModel() Model {
	ti := textinput.New()
	ti.Placeholder = "square, e.g. e2"
	ti.Prompt = "> "
	ti.CharLimit = 2
	ti.Width = 20

	return Model{
		game:   engine.NewGame(),
		cursor: engine.Square{File: 4, Rank: 6},
		m:      modeNormal,
		input:  ti,
		note:   "arrows move, enter activates, i types a square, n new game, q quits",
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if m.m == modeInput {
			return m.updateInput(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "up", "k":
		if m.cursor.Rank > 0 {
			m.cursor.Rank--
		}
	case "down", "j":
		if m.cursor.Rank < 7 {
			m.cursor.Rank++
		}
	case "left", "h":
		if m.cursor.File > 0 {
			m.cursor.File--
		}
	case "right", "l":
		if m.cursor.File < 7 {
			m.cursor.File++
		}
	case "enter", " ":
		m.activate(m.cursor)
	case "i":
		m.m = modeInput
		m.input.Reset()
		return m, m.input.Focus()
	case "n":
		m.game.Reset()
		m.note = "new game"
	}
	return m, nil
}

func (m Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		text := strings.TrimSpace(m.input.Value())
		if sq, ok := parseSquare(text); ok {
			m.cursor = sq
			m.activate(sq)
		} else {
			m.note = fmt.Sprintf("not a square: %q", text)
		}
		m.m = modeNormal
		m.input.Blur()
		return m, nil
	case "esc":
		m.m = modeNormal
		m.input.Blur()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) activate(sq engine.Square) {
	if err := m.game.ActivateSquare(sq.File, sq.Rank); err != nil {
		m.note = err.Error()
		return
	}
	switch m.game.Status() {
	case engine.StatusCheckmate:
		m.note = fmt.Sprintf("checkmate — %s wins (n for a new game)", m.game.CurrentPlayer().Opposite())
	case engine.StatusCheck:
		m.note = fmt.Sprintf("%s is in check", m.game.CurrentPlayer())
	default:
		m.note = fmt.Sprintf("%s to move", m.game.CurrentPlayer())
	}
}

// parseSquare converts algebraic input like "e2" into board coordinates.
func parseSquare(s string) (engine.Square, bool) {
	if !reSquare.MatchString(s) {
		return engine.Square{}, false
	}
	file := int(s[0] - 'a')
	rank := 8 - int(s[1]-'0')
	return engine.Square{File: file, Rank: rank}, true
}

var (
	titleStyle = lipgloss.NewStyle().Bold(true)
	noteStyle  = lipgloss.NewStyle().Faint(true)
	logStyle   = lipgloss.NewStyle().PaddingLeft(2)
)

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("chess"))
	b.WriteString("\n\n")
	b.WriteString(renderBoard(m.game, m.cursor))
	b.WriteString("\n")

	log := m.game.MoveLog()
	if len(log) > 0 {
		start := 0
		if len(log) > 8 {
			start = len(log) - 8
		}
		b.WriteString(logStyle.Render("moves: " + strings.Join(log[start:], " ")))
		b.WriteString("\n")
	}
	if captured := m.game.Captured(); len(captured) > 0 {
		names := make([]string, len(captured))
		for i, pc := range captured {
			names[i] = glyphFor(pc.Color, pc.Type)
		}
		b.WriteString(logStyle.Render("captured: " + strings.Join(names, " ")))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.m == modeInput {
		b.WriteString(m.input.View())
	} else {
		b.WriteString(noteStyle.Render(m.note))
	}
	b.WriteString("\n")
	return b.String()
}
