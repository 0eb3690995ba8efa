package board

import (
	"cmp"
	"fmt"
	"io"

	"github.com/katalvlaran/markov/chain"
)

// Ops returns chain capabilities for the cells of b. Cells are compared by
// number, the last cell is terminal and Print writes to w.
func (b *Board) Ops(w io.Writer) chain.Ops[Cell] {
	return chain.Ops[Cell]{
		Compare: func(x, y Cell) int { return cmp.Compare(x.Number, y.Number) },
		Print: func(c Cell) {
			switch {
			case b.IsLast(c):
				fmt.Fprintf(w, "[%d]", c.Number)
			case c.LadderTo != 0:
				fmt.Fprintf(w, "[%d]-ladder to %d -> ", c.Number, c.LadderTo)
			case c.SnakeTo != 0:
				fmt.Fprintf(w, "[%d]-snake to %d -> ", c.Number, c.SnakeTo)
			default:
				fmt.Fprintf(w, "[%d] -> ", c.Number)
			}
		},
		IsTerminal: b.IsLast,
	}
}

// BuildChain registers every cell of b in board order, then records its moves.
//
// A cell with a jump gets exactly one transition, to the jump destination.
// Any other cell gets one transition per die face 1..DiceMax whose target
// is still on the board. The last cell gets none.
//
// The Ref of cell n is returned at index n-1.
func (b *Board) BuildChain(c *chain.Chain[Cell]) ([]chain.Ref, error) {
	refs := make([]chain.Ref, len(b.cells))
	for i, cell := range b.cells {
		ref, err := c.AddState(cell)
		if err != nil {
			return nil, fmt.Errorf("board: add cell %d: %w", cell.Number, err)
		}
		refs[i] = ref
	}

	for i, cell := range b.cells {
		if to, ok := cell.Jump(); ok {
			if err := c.RecordTransition(refs[i], refs[to-1]); err != nil {
				return nil, fmt.Errorf("board: jump %d→%d: %w", cell.Number, to, err)
			}
			continue
		}
		for face := 1; face <= b.diceMax; face++ {
			to := cell.Number + face
			if to > len(b.cells) {
				break
			}
			if err := c.RecordTransition(refs[i], refs[to-1]); err != nil {
				return nil, fmt.Errorf("board: move %d→%d: %w", cell.Number, to, err)
			}
		}
	}

	return refs, nil
}
