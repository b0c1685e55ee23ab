package tictactoe

import "github.com/rocketscienceinc/tiptaptoe/internal/entity"

// Line - three positions that win when held by one player.
type Line [3]entity.Position

var (
	mainDiagonal = Line{
		entity.At(entity.Index0, entity.Index0),
		entity.At(entity.Index1, entity.Index1),
		entity.At(entity.Index2, entity.Index2),
	}
	antiDiagonal = Line{
		entity.At(entity.Index0, entity.Index2),
		entity.At(entity.Index1, entity.Index1),
		entity.At(entity.Index2, entity.Index0),
	}

	// WinLines - the 8 winning lines: rows, then columns, then diagonals.
	WinLines = buildWinLines()
)

func buildWinLines() [8]Line {
	var lines [8]Line

	for i, idx := range entity.Indexes {
		lines[i] = rowLine(idx)
		lines[i+3] = colLine(idx)
	}
	lines[6] = mainDiagonal
	lines[7] = antiDiagonal

	return lines
}

func rowLine(row entity.Index) Line {
	return Line{
		entity.At(row, entity.Index0),
		entity.At(row, entity.Index1),
		entity.At(row, entity.Index2),
	}
}

func colLine(col entity.Index) Line {
	return Line{
		entity.At(entity.Index0, col),
		entity.At(entity.Index1, col),
		entity.At(entity.Index2, col),
	}
}

func holdsLine(board entity.Board, line Line, player entity.Player) bool {
	if !player.IsValid() {
		return false
	}

	for _, pos := range line {
		if board.Get(pos) != player.Cell() {
			return false
		}
	}

	return true
}

// RowWin - reports whether player holds every cell of row.
func RowWin(board entity.Board, row entity.Index, player entity.Player) bool {
	return holdsLine(board, rowLine(row), player)
}

// ColWin - reports whether player holds every cell of col.
func ColWin(board entity.Board, col entity.Index, player entity.Player) bool {
	return holdsLine(board, colLine(col), player)
}

// DiagonalWin - reports whether player holds either diagonal.
func DiagonalWin(board entity.Board, player entity.Player) bool {
	return holdsLine(board, mainDiagonal, player) || holdsLine(board, antiDiagonal, player)
}

// AnyWin - reports whether player holds any of the 8 lines.
func AnyWin(board entity.Board, player entity.Player) bool {
	for _, line := range WinLines {
		if holdsLine(board, line, player) {
			return true
		}
	}

	return false
}
