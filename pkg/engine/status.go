package engine

// Status is the derived game phase for the side to move. It is always a pure
// function of (board, current player) and is recomputed wholesale after every
// accepted move.
type Status string

const (
	StatusPlaying   Status = "playing"
	StatusCheck     Status = "check"
	StatusCheckmate Status = "checkmate"
	// StatusStalemate is reserved in the enumeration but never produced:
	// a side with no legal moves while not in check still reads as playing.
	StatusStalemate Status = "stalemate"
)

func (s Status) String() string {
	return string(s)
}

// StatusFor evaluates the game phase for color. Not in check means playing.
// In check, the side is scanned for any piece with a legal move; none at all
// means checkmate.
func (b *Board) StatusFor(color Color) Status {
	if !b.InCheck(color) {
		return StatusPlaying
	}
	if b.hasLegalMove(color) {
		return StatusCheck
	}
	return StatusCheckmate
}
