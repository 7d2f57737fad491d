package alias

import "time"

// ViewKind classifies what a polling player should see right now. The kinds
// are mutually exclusive; View picks exactly one.
type ViewKind string

const (
	// ViewWaitingForStart: the session has not been started yet.
	ViewWaitingForStart ViewKind = "waiting_for_start"
	// ViewGameOver: a team has won; terminal.
	ViewGameOver ViewKind = "game_over"
	// ViewWaitingOtherTeam: another team is on turn.
	ViewWaitingOtherTeam ViewKind = "waiting_other_team"
	// ViewListening: this team is on turn, but another of its players speaks.
	ViewListening ViewKind = "listening"
	// ViewReadyPrompt: this player speaks next and must signal ready.
	ViewReadyPrompt ViewKind = "ready"
	// ViewSpeaking: the round is running and this player sees the word.
	ViewSpeaking ViewKind = "speaking"
)

// TeamStanding is one team's row in the score table.
type TeamStanding struct {
	Code   string
	Name   string
	Score  int
	Words  []string
	OnTurn bool
}

// View is the derived, role-specific screen state for one (team, player)
// pair at one instant.
type View struct {
	Kind        ViewKind
	GameCode    string
	TeamCode    string
	TeamName    string
	PlayerCode  string
	PackName    string
	WinCount    int
	CurrentTeam string        // display name of the team on turn
	Word        string        // set only for ViewSpeaking
	Winner      string        // set only for ViewGameOver
	Remaining   time.Duration // time left in the round, for ViewSpeaking
	RoundLength time.Duration
	Standings   []TeamStanding
}

// View computes what the given player should see at now. It never mutates
// the game. In particular it does not advance an expired round; that only
// happens when a guess observes the expiry. Unknown team codes are the one
// error case.
func (g *Game) View(teamCode, playerCode string, now time.Time) (View, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	team := g.findTeamLocked(teamCode)
	if team == nil {
		return View{}, ErrTeamNotFound
	}

	v := View{
		GameCode:    g.Code,
		TeamCode:    teamCode,
		TeamName:    team.Name,
		PlayerCode:  playerCode,
		PackName:    g.PackName,
		WinCount:    g.WinCount,
		RoundLength: g.RoundLength,
		Standings:   g.standingsLocked(),
	}
	if g.current != nil {
		v.CurrentTeam = g.current.Name
	}

	switch {
	case !g.started:
		v.Kind = ViewWaitingForStart
	case g.winner != nil:
		v.Kind = ViewGameOver
		v.Winner = g.winner.Name
	case g.current.Code != teamCode:
		v.Kind = ViewWaitingOtherTeam
	case g.current.CurrentPlayer() == nil || g.current.CurrentPlayer().Code != playerCode:
		v.Kind = ViewListening
	case !g.clock.Active():
		v.Kind = ViewReadyPrompt
	default:
		v.Kind = ViewSpeaking
		v.Word = g.word
		v.Remaining = g.clock.Remaining(now, g.RoundLength)
	}
	return v, nil
}

func (g *Game) standingsLocked() []TeamStanding {
	standings := make([]TeamStanding, 0, len(g.Teams))
	for _, t := range g.Teams {
		standings = append(standings, TeamStanding{
			Code:   t.Code,
			Name:   t.Name,
			Score:  t.Score(),
			Words:  append([]string(nil), t.Words...),
			OnTurn: t == g.current,
		})
	}
	return standings
}
