package engine

// IsAttacked reports whether any piece of by has a shape-legal move onto sq.
func (b *Board) IsAttacked(sq Square, by Color) bool {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			pc := b[rank][file]
			if pc == nil || pc.Color != by {
				continue
			}
			if b.isLegalShape(pc.Position, sq) {
				return true
			}
		}
	}
	return false
}

func (b *Board) findKing(color Color) (Square, bool) {
	for rank := 0; rank < 8; rank++ {
		for file := 0; file < 8; file++ {
			pc := b[rank][file]
			if pc != nil && pc.Color == color && pc.Type == King {
				return pc.Position, true
			}
		}
	}
	return Square{}, false
}

// InCheck reports whether color's king is attacked. A board with no king of
// that color is malformed but must not fail, so it reads as not in check.
func (b *Board) InCheck(color Color) bool {
	kingSq, ok := b.findKing(color)
	if !ok {
		return false
	}
	return b.IsAttacked(kingSq, color.Opposite())
}
