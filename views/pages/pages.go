// Package pages holds the templ components for every page the server
// renders. The components are written directly against templ.ComponentFunc
// rather than generated from .templ sources; the markup is simple enough
// that plain builders stay readable.
package pages

import (
	"context"
	"html"
	"io"
	"net/url"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"aliasgame/internal/viewmodel"
)

func raw(s string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		_, err := io.WriteString(w, s)
		return err
	})
}

func page(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		head := `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">` +
			`<meta name="viewport" content="width=device-width, initial-scale=1">` +
			`<title>` + html.EscapeString(title) + `</title>` +
			`<link rel="stylesheet" href="/static/style.css"></head><body><main class="container">`
		if _, err := io.WriteString(w, head); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		_, err := io.WriteString(w, `</main></body></html>`)
		return err
	})
}

// HomePage renders the create-game form.
func HomePage(data viewmodel.HomePage) templ.Component {
	var b strings.Builder
	b.WriteString(`<h1>Alias</h1>`)
	b.WriteString(`<p>Describe the word, let your team shout guesses, beat the clock.</p>`)
	b.WriteString(`<form method="POST" action="/games" class="box">`)
	b.WriteString(`<label>Word pack<select name="wordpack">`)
	for _, pack := range data.Packs {
		name := html.EscapeString(pack)
		b.WriteString(`<option value="` + name + `">` + name + `</option>`)
	}
	b.WriteString(`</select></label>`)
	b.WriteString(`<label>Teams<input type="number" name="teams-count" value="2" min="1" max="8"></label>`)
	b.WriteString(`<label>Words to win<input type="number" name="win-count" value="10" min="1" max="100"></label>`)
	b.WriteString(`<button type="submit">Create game</button>`)
	b.WriteString(`</form>`)
	return page("Alias", raw(b.String()))
}

// OverviewPage renders join links and QR codes before the start, and the
// running standings afterwards.
func OverviewPage(data viewmodel.OverviewPage) templ.Component {
	var b strings.Builder
	b.WriteString(`<h1>Game ` + html.EscapeString(data.GameCode) + `</h1>`)
	b.WriteString(`<p>Pack: ` + html.EscapeString(data.PackName) +
		` · first to ` + strconv.Itoa(data.WinCount) + ` words wins</p>`)

	if data.WinnerName != "" {
		b.WriteString(`<p class="winner">Team ` + html.EscapeString(data.WinnerName) + ` wins!</p>`)
	}

	if !data.Started {
		b.WriteString(`<h2>Join a team</h2><ul class="teams">`)
		for _, team := range data.Teams {
			b.WriteString(`<li><strong>Team ` + html.EscapeString(team.Name) + `</strong> `)
			b.WriteString(`<a href="` + team.JoinURL + `">join</a> `)
			b.WriteString(`<img class="qr" src="` + team.QRURL + `" alt="QR join link for team ` +
				html.EscapeString(team.Name) + `" width="160" height="160">`)
			b.WriteString(`</li>`)
		}
		b.WriteString(`</ul>`)
		b.WriteString(`<form method="GET" action="` + data.StartURL + `">` +
			`<button type="submit">Everyone is in — start</button></form>`)
	} else {
		b.WriteString(standingsHTML(data.Standings))
		b.WriteString(`<p><a href="">refresh</a></p>`)
	}
	return page("Alias · overview", raw(b.String()))
}

// MessagePage renders a plain, user-visible message.
func MessagePage(title, message string) templ.Component {
	body := `<h1>` + html.EscapeString(title) + `</h1>` +
		`<p>` + html.EscapeString(message) + `</p>` +
		`<p><a href="/">back to start</a></p>`
	return page(title, raw(body))
}

// PlayerPage renders the full per-player page: the current view fragment
// plus the SSE hookup that swaps the fragment in place whenever the session
// state changes.
func PlayerPage(data viewmodel.PlayerPage) templ.Component {
	var b strings.Builder
	b.WriteString(`<div id="view">`)
	b.WriteString(PlayerViewHTML(data))
	b.WriteString(`</div>`)
	b.WriteString(`<script>
(function(){
	var src = new EventSource("` + data.StreamURL + `");
	src.addEventListener("view", function(e){
		var el = document.getElementById("view");
		if (el) el.innerHTML = e.data;
	});
})();
</script>`)
	return page("Alias · team "+data.TeamName, raw(b.String()))
}

// PlayerViewHTML renders the view fragment for one player. It is shared by
// the full page render and the SSE stream.
func PlayerViewHTML(data viewmodel.PlayerPage) string {
	var b strings.Builder
	b.WriteString(`<p class="badge">Team ` + html.EscapeString(data.TeamName) + `</p>`)

	switch data.Kind {
	case viewmodel.KindWaitingForStart:
		b.WriteString(`<h1>Waiting for the game to start</h1>`)
		b.WriteString(`<p>Hold on — the host starts the game from the overview page.</p>`)
	case viewmodel.KindGameOver:
		b.WriteString(`<h1>Team ` + html.EscapeString(data.WinnerName) + ` wins!</h1>`)
	case viewmodel.KindWaitingOtherTeam:
		b.WriteString(`<h1>Team ` + html.EscapeString(data.CurrentTeam) + ` is playing</h1>`)
		b.WriteString(`<p>Catch your breath until the turn comes back around.</p>`)
	case viewmodel.KindListening:
		b.WriteString(`<h1>Your team is up!</h1>`)
		b.WriteString(`<p>A teammate is about to speak. Listen and shout guesses.</p>`)
	case viewmodel.KindReadyPrompt:
		b.WriteString(`<h1>You speak next</h1>`)
		b.WriteString(`<form method="GET" action="` + data.ReadyURL + `">` +
			`<button type="submit" class="big">I'm ready</button></form>`)
	case viewmodel.KindSpeaking:
		b.WriteString(`<p class="word">` + html.EscapeString(data.Word) + `</p>`)
		b.WriteString(`<p>About ` + strconv.Itoa(data.RemainingSec) + `s left in the round.</p>`)
		plusURL := data.PlusBaseURL + "/" + url.PathEscape(data.Word)
		b.WriteString(`<form method="GET" action="` + plusURL + `">` +
			`<button type="submit" class="big">They got it!</button></form>`)
	}

	b.WriteString(standingsHTML(data.Standings))
	return b.String()
}

func standingsHTML(standings []viewmodel.Standing) string {
	var b strings.Builder
	b.WriteString(`<table class="standings"><tr><th>Team</th><th>Score</th><th>Words</th></tr>`)
	for _, s := range standings {
		row := `<tr>`
		if s.OnTurn {
			row = `<tr class="on-turn">`
		}
		b.WriteString(row)
		b.WriteString(`<td>` + html.EscapeString(s.Name) + `</td>`)
		b.WriteString(`<td>` + strconv.Itoa(s.Score) + `</td>`)
		b.WriteString(`<td>` + html.EscapeString(strings.Join(s.Words, ", ")) + `</td>`)
		b.WriteString(`</tr>`)
	}
	b.WriteString(`</table>`)
	return b.String()
}
