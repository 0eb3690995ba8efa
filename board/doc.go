// Package board models a snakes-and-ladders board and converts it into a
// chain.Chain[Cell], so that random walks simulate games.
//
// What:
//
//   - Layout describes the board: number of cells, die faces, and jumps
//     (From < To is a ladder, From > To is a snake).
//   - Board validates a Layout and exposes its cells, numbered 1..Size.
//   - BuildChain registers every cell and records the moves:
//     a cell with a jump has exactly one successor (the jump target);
//     any other cell has one successor per die face that stays on the board.
//   - Ops prints cells as "[n] -> ", "[n]-ladder to m -> ", "[n]-snake to m -> "
//     and the last cell as "[n]"; the last cell is terminal.
//
// Complexity:
//
//   - New:        O(Size + J), J = number of jumps.
//   - BuildChain: O(Size² + Size·DiceMax), dominated by AddState scans.
//
// Errors:
//
//   - ErrBoardTooSmall: Size < 2.
//   - ErrBoardTooLarge: Size > MaxSize.
//   - ErrBadDice: DiceMax < 1.
//   - ErrJumpOutOfRange: a jump endpoint is outside [1, Size].
//   - ErrBadJump: a jump starts on the last cell or ends where it starts.
//   - ErrDuplicateJump: two jumps start on the same cell.
//   - ErrCellOutOfRange: Cell(n) with n outside [1, Size].
//   - ErrLayout: a YAML layout could not be decoded.
package board
