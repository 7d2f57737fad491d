package alias

// Player has no state beyond its opaque join code.
type Player struct {
	Code string
}

// Team is one side of a session: an ordered roster of players in join order,
// a cyclic turn cursor over that roster, and the append-only list of words
// the team has guessed correctly (its length is the score). Team carries no
// lock of its own; the owning Game's mutex guards all access.
type Team struct {
	Code    string
	Name    string
	Players []*Player
	Words   []string

	next    int // roster index the cursor will hand out on the next advance
	current *Player
}

// NewTeam creates an empty team with the given codes.
func NewTeam(code, name string) *Team {
	return &Team{Code: code, Name: name}
}

// AddPlayer generates a player code, appends the player to the roster and
// returns the code. The turn cursor is left alone, so rotation picks the new
// player up on its next pass.
func (t *Team) AddPlayer() string {
	code := NewCode(PlayerCodeLength)
	t.Players = append(t.Players, &Player{Code: code})
	return code
}

// FindPlayer returns the roster member with the given code, or nil.
func (t *Team) FindPlayer(code string) *Player {
	for _, p := range t.Players {
		if p.Code == code {
			return p
		}
	}
	return nil
}

// NextPlayer advances the cyclic cursor and returns the player now on turn.
// An empty roster yields nil without disturbing the cursor; once a player
// joins, the next advance resumes and hands them out. There is no reset;
// the cursor only ever moves forward.
func (t *Team) NextPlayer() *Player {
	if len(t.Players) == 0 {
		t.current = nil
		return nil
	}
	if t.next >= len(t.Players) {
		t.next = 0
	}
	t.current = t.Players[t.next]
	t.next++
	return t.current
}

// CurrentPlayer returns the player on turn, or nil before the first advance.
func (t *Team) CurrentPlayer() *Player {
	return t.current
}

// RecordWord appends a correctly guessed word.
func (t *Team) RecordWord(word string) {
	t.Words = append(t.Words, word)
}

// Score is the number of words the team has guessed.
func (t *Team) Score() int {
	return len(t.Words)
}
