// Package viewmodel defines the view-layer types for the game pages. These
// types are intentionally free of game-logic imports so the page components
// can use them without creating an import cycle.
package viewmodel

// HomePage holds data for the create-game form.
type HomePage struct {
	Packs []string
}

// TeamLink is one team's join link on the overview page.
type TeamLink struct {
	Name    string
	JoinURL string
	QRURL   string
}

// Standing is one team's row in the score table.
type Standing struct {
	Name   string
	Score  int
	Words  []string
	OnTurn bool
}

// OverviewPage holds data for the session overview: join links before the
// start, standings during play.
type OverviewPage struct {
	GameCode   string
	PackName   string
	WinCount   int
	Started    bool
	WinnerName string
	StartURL   string
	Teams      []TeamLink
	Standings  []Standing
}

// Kind values for PlayerPage, mirroring the derived view classification.
const (
	KindWaitingForStart  = "waiting_for_start"
	KindGameOver         = "game_over"
	KindWaitingOtherTeam = "waiting_other_team"
	KindListening        = "listening"
	KindReadyPrompt      = "ready"
	KindSpeaking         = "speaking"
)

// PlayerPage holds everything the per-player view needs. Kind mirrors the
// derived view classification; the component branches on it.
type PlayerPage struct {
	Kind         string
	GameCode     string
	TeamName     string
	PackName     string
	WinCount     int
	CurrentTeam  string
	Word         string
	WinnerName   string
	RemainingSec int
	ReadyURL     string
	PlusBaseURL  string // "/plus/{game}/{team}/{player}"; the word is appended
	ViewURL      string
	StreamURL    string
	Standings    []Standing
}
