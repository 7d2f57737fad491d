package alias

import "testing"

func TestTeam_AddPlayer(t *testing.T) {
	team := NewTeam("aaaaaaaa", "A")
	code1 := team.AddPlayer()
	code2 := team.AddPlayer()

	if len(code1) != PlayerCodeLength {
		t.Errorf("player code length %d, want %d", len(code1), PlayerCodeLength)
	}
	if len(team.Players) != 2 {
		t.Fatalf("len(Players) %d, want 2", len(team.Players))
	}
	if team.Players[0].Code != code1 || team.Players[1].Code != code2 {
		t.Error("players not appended in join order")
	}
}

func TestTeam_FindPlayer(t *testing.T) {
	team := NewTeam("aaaaaaaa", "A")
	code := team.AddPlayer()

	if p := team.FindPlayer(code); p == nil || p.Code != code {
		t.Error("FindPlayer should return the joined player")
	}
	if p := team.FindPlayer("nosuchcode"); p != nil {
		t.Error("FindPlayer should return nil for unknown code")
	}
}

func TestTeam_NextPlayer_CyclesInInsertionOrder(t *testing.T) {
	team := NewTeam("aaaaaaaa", "A")
	codes := []string{team.AddPlayer(), team.AddPlayer(), team.AddPlayer()}

	// Two full passes: same order, wrapping after the last player.
	for pass := 0; pass < 2; pass++ {
		for i, want := range codes {
			p := team.NextPlayer()
			if p == nil {
				t.Fatalf("pass %d advance %d returned nil", pass, i)
			}
			if p.Code != want {
				t.Errorf("pass %d advance %d got %q, want %q", pass, i, p.Code, want)
			}
			if team.CurrentPlayer() != p {
				t.Error("CurrentPlayer should track the last advance")
			}
		}
	}
}

func TestTeam_NextPlayer_EmptyRosterYieldsNilThenRecovers(t *testing.T) {
	team := NewTeam("aaaaaaaa", "A")

	for i := 0; i < 3; i++ {
		if p := team.NextPlayer(); p != nil {
			t.Fatalf("advance %d on empty roster returned %v", i, p)
		}
	}
	if team.CurrentPlayer() != nil {
		t.Error("CurrentPlayer should be nil while roster is empty")
	}

	code := team.AddPlayer()
	p := team.NextPlayer()
	if p == nil {
		t.Fatal("first advance after a join should yield the player")
	}
	if p.Code != code {
		t.Errorf("got %q, want %q", p.Code, code)
	}
}

func TestTeam_NextPlayer_LateJoinerEntersRotation(t *testing.T) {
	team := NewTeam("aaaaaaaa", "A")
	first := team.AddPlayer()
	team.NextPlayer() // first is on turn

	second := team.AddPlayer()
	if p := team.NextPlayer(); p.Code != second {
		t.Errorf("rotation should include the late joiner, got %q want %q", p.Code, second)
	}
	if p := team.NextPlayer(); p.Code != first {
		t.Errorf("rotation should wrap back to %q, got %q", first, p.Code)
	}
}

func TestTeam_RecordWord_Score(t *testing.T) {
	team := NewTeam("aaaaaaaa", "A")
	if team.Score() != 0 {
		t.Errorf("fresh team score %d, want 0", team.Score())
	}
	team.RecordWord("cat")
	team.RecordWord("dog")
	if team.Score() != 2 {
		t.Errorf("score %d, want 2", team.Score())
	}
	if team.Words[0] != "cat" || team.Words[1] != "dog" {
		t.Error("words should be appended in guess order")
	}
}
