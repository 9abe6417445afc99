package searcher

import (
	"errors"
	"math"
)

// Hyperparameters for MCTS

const Exploration = math.Sqrt2 // UCT exploration weight

const Win = 1.0  // Reward for a won playout
const Draw = 0.5 // Reward for a drawn playout, credited to both sides

const DefaultRounds = 8190

var (
	ErrNoEmptySquares     = errors.New("no empty squares are available")
	ErrEmptyChildSet      = errors.New("child node set is empty")
	ErrUnableToSelectMove = errors.New("unable to select a move")
)
