package board

import "fmt"

// Board is a validated, immutable Layout. cells[i] holds cell number i+1.
type Board struct {
	cells   []Cell
	diceMax int
}

// New validates layout and builds the board.
// Jumps are checked in order; the first violation is returned, wrapped with
// the offending jump.
// Complexity: O(Size + J) time and memory.
func New(layout Layout) (*Board, error) {
	if layout.Size < 2 {
		return nil, fmt.Errorf("%w: size %d", ErrBoardTooSmall, layout.Size)
	}
	if layout.Size > MaxSize {
		return nil, fmt.Errorf("%w: size %d > %d", ErrBoardTooLarge, layout.Size, MaxSize)
	}
	if layout.DiceMax < 1 {
		return nil, fmt.Errorf("%w: dice_max %d", ErrBadDice, layout.DiceMax)
	}

	cells := make([]Cell, layout.Size)
	for i := range cells {
		cells[i] = Cell{Number: i + 1}
	}
	for _, j := range layout.Jumps {
		if j.From < 1 || j.From > layout.Size || j.To < 1 || j.To > layout.Size {
			return nil, fmt.Errorf("%w: %d→%d on %d cells", ErrJumpOutOfRange, j.From, j.To, layout.Size)
		}
		if j.From == j.To || j.From == layout.Size {
			return nil, fmt.Errorf("%w: %d→%d", ErrBadJump, j.From, j.To)
		}
		c := &cells[j.From-1]
		if _, taken := c.Jump(); taken {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateJump, j.From)
		}
		if j.From < j.To {
			c.LadderTo = j.To
		} else {
			c.SnakeTo = j.To
		}
	}

	return &Board{cells: cells, diceMax: layout.DiceMax}, nil
}

// Size returns the number of cells.
func (b *Board) Size() int { return len(b.cells) }

// DiceMax returns the number of die faces.
func (b *Board) DiceMax() int { return b.diceMax }

// Last returns the winning cell.
func (b *Board) Last() Cell { return b.cells[len(b.cells)-1] }

// Cell returns cell number n (1-based).
func (b *Board) Cell(n int) (Cell, error) {
	if n < 1 || n > len(b.cells) {
		return Cell{}, fmt.Errorf("%w: %d not in [1,%d]", ErrCellOutOfRange, n, len(b.cells))
	}

	return b.cells[n-1], nil
}

// Cells returns a copy of all cells in board order.
func (b *Board) Cells() []Cell {
	out := make([]Cell, len(b.cells))
	copy(out, b.cells)

	return out
}

// IsLast reports whether c is the winning cell of b.
func (b *Board) IsLast(c Cell) bool {
	return c.Number == len(b.cells)
}
