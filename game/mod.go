package game

// Side is one of the two players. X always moves first.
type Side uint8

const (
	X Side = iota
	O
)

func (s Side) Opponent() Side {
	if s == X {
		return O
	}
	return X
}

func (s Side) String() string {
	if s == X {
		return "x"
	}
	return "o"
}

// Outcome classifies a finished game, OutcomeNone while it is still being played.
type Outcome uint8

const (
	OutcomeNone Outcome = iota
	Draw
	XWin
	OWin
)

func (o Outcome) Decided() bool {
	return o != OutcomeNone
}

// Winner returns the winning side, false for a draw or an undecided game.
func (o Outcome) Winner() (Side, bool) {
	switch o {
	case XWin:
		return X, true
	case OWin:
		return O, true
	default:
		return X, false
	}
}

// Favors reports whether the outcome is a win for side.
func (o Outcome) Favors(side Side) bool {
	winner, ok := o.Winner()
	return ok && winner == side
}

func (o Outcome) String() string {
	switch o {
	case Draw:
		return "draw"
	case XWin:
		return "x win"
	case OWin:
		return "o win"
	default:
		return "none"
	}
}
