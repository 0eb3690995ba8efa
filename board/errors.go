package board

import "errors"

var (
	// ErrBoardTooSmall indicates a layout with fewer than two cells.
	ErrBoardTooSmall = errors.New("board: board must have at least two cells")
	// ErrBoardTooLarge indicates a layout with more than MaxSize cells.
	ErrBoardTooLarge = errors.New("board: board exceeds maximum size")
	// ErrBadDice indicates a die with fewer than one face.
	ErrBadDice = errors.New("board: dice must have at least one face")
	// ErrJumpOutOfRange indicates a jump endpoint outside the board.
	ErrJumpOutOfRange = errors.New("board: jump endpoint out of range")
	// ErrBadJump indicates a jump from the last cell or onto its own cell.
	ErrBadJump = errors.New("board: invalid jump")
	// ErrDuplicateJump indicates two jumps leaving the same cell.
	ErrDuplicateJump = errors.New("board: duplicate jump from cell")
	// ErrCellOutOfRange indicates a cell number outside the board.
	ErrCellOutOfRange = errors.New("board: cell out of range")
	// ErrLayout indicates a layout document could not be decoded.
	ErrLayout = errors.New("board: invalid layout document")
)
