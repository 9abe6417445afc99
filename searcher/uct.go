package searcher

import "math"

// uctScore ranks a visited child by its win rate plus an exploration bonus
// that grows with the parent's playouts and shrinks with the child's own.
// logParent is ln of the parent's playouts; callers compute it once per parent.
func uctScore(wins float64, playouts int, logParent float64) float64 {
	n := float64(playouts)
	return wins/n + Exploration*math.Sqrt(logParent/n)
}
