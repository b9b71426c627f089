package engine

// LegalMoves enumerates every legal destination for the piece on from, in
// board scan order (rank-major, file-minor). Shape-legal candidates that
// would leave the mover's own king in check are filtered out by replaying
// the move on a cloned board. Returns nil for an empty square.
func (b *Board) LegalMoves(from Square) []Square {
	pc := b.PieceAt(from)
	if pc == nil {
		return nil
	}

	var moves []Square
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			to := Square{File: file, Rank: rank}
			if to == from || !b.isLegalShape(from, to) {
				continue
			}
			next := b.clone()
			next.move(from, to)
			if next.InCheck(pc.Color) {
				continue
			}
			moves = append(moves, to)
		}
	}
	return moves
}

// hasLegalMove reports whether any piece of color has at least one legal move.
func (b *Board) hasLegalMove(color Color) bool {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			pc := b[rank][file]
			if pc == nil || pc.Color != color {
				continue
			}
			if len(b.LegalMoves(pc.Position)) > 0 {
				return true
			}
		}
	}
	return false
}
