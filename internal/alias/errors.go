package alias

import "errors"

// Turn-order violations and lookup misses are ordinary outcomes surfaced as
// values, never panics; everything here is recoverable at the request
// boundary.
var (
	ErrGameNotFound   = errors.New("game not found")
	ErrTeamNotFound   = errors.New("team not found")
	ErrPlayerNotFound = errors.New("player not found")
	ErrAlreadyStarted = errors.New("game already started")
	ErrWrongTeam      = errors.New("not this team's turn")
	ErrWrongPlayer    = errors.New("not this player's turn")
	ErrNoTeams        = errors.New("need at least one team")
	ErrBadWinCount    = errors.New("win count must be positive")
	ErrEmptyWordPool  = errors.New("word pool is empty")
)
