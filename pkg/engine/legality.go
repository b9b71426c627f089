package engine

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

// isPathClear walks unit steps from from toward to and reports whether every
// intermediate square is empty. The endpoints themselves are not inspected.
func (b *Board) isPathClear(from, to Square) bool {
	stepFile := sign(to.File - from.File)
	stepRank := sign(to.Rank - from.Rank)

	file := from.File + stepFile
	rank := from.Rank + stepRank
	for file != to.File || rank != to.Rank {
		if b[rank][file] != nil {
			return false
		}
		file += stepFile
		rank += stepRank
	}
	return true
}

// isLegalShape reports whether to is a rule-permitted destination for the
// piece on from, ignoring whether the move would expose the mover's own king.
// A destination holding a same-color piece is never legal.
func (b *Board) isLegalShape(from, to Square) bool {
	pc := b.PieceAt(from)
	if pc == nil || from == to {
		return false
	}
	target := b.PieceAt(to)
	if target != nil && target.Color == pc.Color {
		return false
	}

	df := to.File - from.File
	dr := to.Rank - from.Rank

	switch pc.Type {
	case Pawn:
		dir, startRank := 1, 1
		if pc.Color == White {
			dir, startRank = -1, 6
		}
		if df == 0 && dr == dir && target == nil {
			return true
		}
		// Double step from the starting rank. Only the destination is
		// required to be empty, not the square jumped over.
		if df == 0 && dr == 2*dir && from.Rank == startRank && target == nil {
			return true
		}
		if abs(df) == 1 && dr == dir && target != nil {
			return true
		}
		return false
	case Rook:
		if df != 0 && dr != 0 {
			return false
		}
		return b.isPathClear(from, to)
	case Knight:
		return (abs(df) == 2 && abs(dr) == 1) || (abs(df) == 1 && abs(dr) == 2)
	case Bishop:
		if abs(df) != abs(dr) {
			return false
		}
		return b.isPathClear(from, to)
	case Queen:
		if df != 0 && dr != 0 && abs(df) != abs(dr) {
			return false
		}
		return b.isPathClear(from, to)
	case King:
		return abs(df) <= 1 && abs(dr) <= 1
	}
	return false
}
