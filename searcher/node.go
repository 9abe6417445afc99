package searcher

import "tictactoe/game"

const (
	rootIndex = 0
	noParent  = -1
)

// node is one entry of the MCTS arena. Parent and children are indices into
// the arena, so the tree holds no pointers and is dropped by truncating it.
type node struct {
	position game.Position
	move     game.Cell // Cell marked to reach position from the parent
	parent   int
	children []int
	wins     float64
	playouts int
}

func newNode(position game.Position, move game.Cell, parent int) node {
	return node{
		position: position,
		move:     move,
		parent:   parent,
	}
}

func (n *node) isTerminal() bool {
	return n.position.Outcome().Decided()
}
