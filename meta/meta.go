// meta/meta.go
package meta

// DEFAULT_PLAYER_X is the agent kind that plays X unless configured.
const DEFAULT_PLAYER_X = "user"

// DEFAULT_PLAYER_O is the agent kind that plays O unless configured.
const DEFAULT_PLAYER_O = "mcts"

// MINIMUM_GAMES is the smallest number of games a run can play.
const MINIMUM_GAMES = 1

// DEFAULT_OUTPUT_DIR holds run records when metrics are enabled.
const DEFAULT_OUTPUT_DIR = "output"
