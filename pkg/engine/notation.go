package engine

// formatMove renders a completed move as short algebraic-style text:
// piece letter, "x" when a piece was captured, destination square. There is
// no disambiguation between pieces, no check or mate suffix, and knights
// share the king's "K" prefix (see PieceType.letter).
func formatMove(pc *Piece, to Square, captured *Piece) string {
	notation := pc.Type.letter()
	if captured != nil {
		notation += "x"
	}
	return notation + to.Name()
}
