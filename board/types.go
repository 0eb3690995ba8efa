package board

// Cell is one square of the board. A cell has at most one jump, so at most
// one of LadderTo and SnakeTo is non-zero.
type Cell struct {
	Number   int // 1..Size
	LadderTo int // destination of a ladder leaving this cell, 0 if none
	SnakeTo  int // destination of a snake leaving this cell, 0 if none
}

// Jump returns the destination of the ladder or snake on c, if any.
func (c Cell) Jump() (int, bool) {
	switch {
	case c.LadderTo != 0:
		return c.LadderTo, true
	case c.SnakeTo != 0:
		return c.SnakeTo, true
	default:
		return 0, false
	}
}

// Jump connects two cells: From < To is a ladder, From > To is a snake.
type Jump struct {
	From int `yaml:"from" json:"from"`
	To   int `yaml:"to" json:"to"`
}

// Layout describes a board before validation.
type Layout struct {
	// Size is the number of cells; the last cell wins the game.
	Size int `yaml:"size" json:"size"`
	// DiceMax is the number of die faces (1..DiceMax).
	DiceMax int `yaml:"dice_max" json:"dice_max"`
	// Jumps lists every ladder and snake.
	Jumps []Jump `yaml:"jumps" json:"jumps"`
}

// Classic board parameters.
const (
	DefaultSize    = 100
	DefaultDiceMax = 6
)

// MaxSize bounds Layout.Size. BuildChain is quadratic in the number of cells.
const MaxSize = 10000

// DefaultLayout returns the classic 100-cell board with a six-sided die and
// twenty ladders and snakes.
func DefaultLayout() Layout {
	return Layout{
		Size:    DefaultSize,
		DiceMax: DefaultDiceMax,
		Jumps: []Jump{
			{13, 4}, {85, 17}, {95, 67}, {97, 58}, {66, 89},
			{87, 31}, {57, 83}, {91, 25}, {28, 50}, {35, 11},
			{8, 30}, {41, 62}, {81, 43}, {69, 32}, {20, 39},
			{33, 70}, {79, 99}, {23, 76}, {15, 47}, {61, 14},
		},
	}
}
