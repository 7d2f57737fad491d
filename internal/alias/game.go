package alias

import (
	"math/rand"
	"sync"
	"time"

	"aliasgame/pkg/realtime"
)

// DefaultRoundLength is how long one speaking turn lasts.
const DefaultRoundLength = 60 * time.Second

// Game holds the full state of one session: the fixed teams, the word pool,
// the cyclic team rotation, the round clock and the win threshold. All
// methods lock g.mu; requests for different games never contend.
//
// Rounds are strictly sequential. Nothing here runs on a timer: a round that
// nobody polls conceptually never ends, expiry is only observed when a
// request asks.
type Game struct {
	mu sync.Mutex

	Code        string
	CreatedAt   time.Time
	Teams       []*Team
	WinCount    int
	Words       []string
	PackName    string
	RoundLength time.Duration

	started  bool
	clock    realtime.RoundClock
	nextTeam int // rotation index the cursor will hand out next
	current  *Team
	word     string
	winner   *Team
}

// NewGame creates a session with teamCount fresh teams (named "A", "B", …)
// and an initial word drawn from the pool. The pool is fixed for the life of
// the session and must be non-empty; later draws never have to re-validate.
func NewGame(teamCount, winCount int, words []string, packName string) (*Game, error) {
	if teamCount < 1 {
		return nil, ErrNoTeams
	}
	if winCount < 1 {
		return nil, ErrBadWinCount
	}
	if len(words) == 0 {
		return nil, ErrEmptyWordPool
	}
	teams := make([]*Team, teamCount)
	for i := range teams {
		teams[i] = NewTeam(NewCode(TeamCodeLength), string(rune('A'+i)))
	}
	g := &Game{
		Code:        NewCode(GameCodeLength),
		CreatedAt:   time.Now().UTC(),
		Teams:       teams,
		WinCount:    winCount,
		Words:       words,
		PackName:    packName,
		RoundLength: DefaultRoundLength,
	}
	g.word = g.drawWordLocked()
	return g, nil
}

// FindTeam returns the team with the given code, or nil.
func (g *Game) FindTeam(code string) *Team {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.findTeamLocked(code)
}

func (g *Game) findTeamLocked(code string) *Team {
	for _, t := range g.Teams {
		if t.Code == code {
			return t
		}
	}
	return nil
}

// Join adds a player to the named team and returns the new player code.
// Joining is only possible before the session starts.
func (g *Game) Join(teamCode string) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.started {
		return "", ErrAlreadyStarted
	}
	team := g.findTeamLocked(teamCode)
	if team == nil {
		return "", ErrTeamNotFound
	}
	return team.AddPlayer(), nil
}

// Started reports whether Start has been called.
func (g *Game) Started() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.started
}

// Start flips the session live and loads the first round: the rotation hands
// out the first team, that team's rotation hands out its first player, and
// the clock stays clear until the player signals ready.
func (g *Game) Start() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.started = true
	g.loadNextRoundLocked()
}

// StartRound is the acting player signalling readiness to speak. The caller
// must be exactly the current team's current player; mismatches come back as
// ErrWrongTeam or ErrWrongPlayer and leave the state untouched. On success
// the round clock begins at now.
func (g *Game) StartRound(teamCode, playerCode string, now time.Time) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.current == nil || g.current.Code != teamCode {
		return ErrWrongTeam
	}
	speaker := g.current.CurrentPlayer()
	if speaker == nil || speaker.Code != playerCode {
		return ErrWrongPlayer
	}
	g.clock.Begin(now)
	return nil
}

// RecordGuess credits word to the team on turn and redraws the current word
// uniformly from the full pool, with replacement. Expiry is deliberately not
// checked here; the caller checks RoundExpired afterwards and calls
// AdvanceRound if the turn is over. Returns the freshly drawn word.
func (g *Game) RecordGuess(word string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.current != nil {
		g.current.RecordWord(word)
	}
	g.word = g.drawWordLocked()
	return g.word
}

// RoundExpired reports whether the current round is over at now. A round
// that was never begun (awaiting ready) also reads as expired; that state
// must never pass for an active round.
func (g *Game) RoundExpired(now time.Time) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.clock.Expired(now, g.RoundLength)
}

// AdvanceRound rotates to the next team and its next player, clears the
// clock back to awaiting-ready, and re-evaluates the win condition.
func (g *Game) AdvanceRound() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.loadNextRoundLocked()
}

func (g *Game) loadNextRoundLocked() {
	g.current = g.nextTeamLocked()
	if g.current != nil {
		g.current.NextPlayer()
	}
	g.clock.Clear()

	// Exactly one team at or above the threshold wins. When several get
	// there in the same sweep nobody does and rotation simply continues;
	// ties are broken by whoever pulls ahead alone on a later scan.
	var winner *Team
	for _, t := range g.Teams {
		if t.Score() >= g.WinCount {
			if winner != nil {
				winner = nil
				break
			}
			winner = t
		}
	}
	g.winner = winner
}

// nextTeamLocked advances the cyclic team cursor, mirroring Team.NextPlayer:
// an empty team list yields nil per call and recovery is automatic.
func (g *Game) nextTeamLocked() *Team {
	if len(g.Teams) == 0 {
		return nil
	}
	if g.nextTeam >= len(g.Teams) {
		g.nextTeam = 0
	}
	t := g.Teams[g.nextTeam]
	g.nextTeam++
	return t
}

func (g *Game) drawWordLocked() string {
	return g.Words[rand.Intn(len(g.Words))]
}

// CurrentTeam returns the team on turn, or nil before Start.
func (g *Game) CurrentTeam() *Team {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.current
}

// CurrentWord returns the word currently on offer.
func (g *Game) CurrentWord() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.word
}

// Winner returns the winning team once the win condition has resolved
// unambiguously, else nil.
func (g *Game) Winner() *Team {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.winner
}
