package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	qrcode "github.com/skip2/go-qrcode"

	"aliasgame/internal/alias"
	"aliasgame/internal/viewmodel"
	"aliasgame/views/pages"
)

const qrSize = 320 // mobile-friendly size

// GameHandler serves everything keyed by a session code: joining, the start
// control, the per-player view and the gameplay actions. Player identity is
// the opaque code in the URL path; there are no cookies or accounts.
type GameHandler struct {
	store  *alias.Store
	logger *slog.Logger
}

func NewGameHandler(store *alias.Store, logger *slog.Logger) *GameHandler {
	return &GameHandler{store: store, logger: logger}
}

func (h *GameHandler) RegisterRoutes(r chi.Router) {
	r.Get("/overview/{game}", h.overview)
	r.Get("/start/{game}", h.start)
	r.Get("/join/{game}/{team}", h.join)
	r.Get("/ready/{game}/{team}/{player}", h.ready)
	r.Get("/plus/{game}/{team}/{player}/{word}", h.plus)
	r.Get("/game/{game}/{team}/{player}", h.playerView)
	r.Get("/game/{game}/{team}/{player}/stream", h.stream)
	r.Get("/qr/{game}/{team}", h.qr)
}

func (h *GameHandler) lookupGame(w http.ResponseWriter, r *http.Request) (*alias.Game, bool) {
	code := chi.URLParam(r, "game")
	game, ok := h.store.GetGame(code)
	if !ok {
		render(w, r, pages.MessagePage("Not found", "game is not found"))
		return nil, false
	}
	return game, true
}

func (h *GameHandler) overview(w http.ResponseWriter, r *http.Request) {
	game, ok := h.lookupGame(w, r)
	if !ok {
		return
	}

	data := viewmodel.OverviewPage{
		GameCode: game.Code,
		PackName: game.PackName,
		WinCount: game.WinCount,
		Started:  game.Started(),
		StartURL: "/start/" + game.Code,
	}
	if winner := game.Winner(); winner != nil {
		data.WinnerName = winner.Name
	}
	for _, team := range game.Teams {
		data.Teams = append(data.Teams, viewmodel.TeamLink{
			Name:    team.Name,
			JoinURL: "/join/" + game.Code + "/" + team.Code,
			QRURL:   "/qr/" + game.Code + "/" + team.Code,
		})
	}
	// Standings come from a throwaway view; any existing team code works.
	if len(game.Teams) > 0 {
		if v, err := game.View(game.Teams[0].Code, "", time.Now().UTC()); err == nil {
			data.Standings = toStandings(v.Standings)
		}
	}
	render(w, r, pages.OverviewPage(data))
}

func (h *GameHandler) start(w http.ResponseWriter, r *http.Request) {
	game, ok := h.lookupGame(w, r)
	if !ok {
		return
	}
	game.Start()
	h.store.Publish(game.Code, "view")
	h.logger.Info("game started", "game", game.Code)
	http.Redirect(w, r, "/overview/"+game.Code, http.StatusSeeOther)
}

func (h *GameHandler) join(w http.ResponseWriter, r *http.Request) {
	game, ok := h.lookupGame(w, r)
	if !ok {
		return
	}
	teamCode := chi.URLParam(r, "team")

	playerCode, err := game.Join(teamCode)
	switch {
	case errors.Is(err, alias.ErrAlreadyStarted):
		render(w, r, pages.MessagePage("Too late", "game is already started"))
		return
	case errors.Is(err, alias.ErrTeamNotFound):
		render(w, r, pages.MessagePage("Not found", "team is not found"))
		return
	case err != nil:
		render(w, r, pages.MessagePage("Could not join", err.Error()))
		return
	}

	h.store.Publish(game.Code, "view")
	h.logger.Info("player joined", "game", game.Code, "team", teamCode)
	http.Redirect(w, r, viewURL(game.Code, teamCode, playerCode), http.StatusSeeOther)
}

func (h *GameHandler) ready(w http.ResponseWriter, r *http.Request) {
	game, ok := h.lookupGame(w, r)
	if !ok {
		return
	}
	teamCode := chi.URLParam(r, "team")
	playerCode := chi.URLParam(r, "player")

	err := game.StartRound(teamCode, playerCode, time.Now().UTC())
	switch {
	case errors.Is(err, alias.ErrWrongTeam):
		h.logger.Warn("ready from wrong team", "game", game.Code, "team", teamCode)
		render(w, r, pages.MessagePage("Not your turn", "it is another team's turn to speak"))
		return
	case errors.Is(err, alias.ErrWrongPlayer):
		h.logger.Warn("ready from wrong player", "game", game.Code, "team", teamCode)
		render(w, r, pages.MessagePage("Not your turn", "a teammate speaks this round, not you"))
		return
	case err != nil:
		render(w, r, pages.MessagePage("Could not start round", err.Error()))
		return
	}

	h.store.Publish(game.Code, "view")
	http.Redirect(w, r, viewURL(game.Code, teamCode, playerCode), http.StatusSeeOther)
}

func (h *GameHandler) plus(w http.ResponseWriter, r *http.Request) {
	game, ok := h.lookupGame(w, r)
	if !ok {
		return
	}
	teamCode := chi.URLParam(r, "team")
	playerCode := chi.URLParam(r, "player")
	word := chi.URLParam(r, "word")

	game.RecordGuess(word)
	// Expiry is observed here, lazily, and only now does the turn pass on.
	if game.RoundExpired(time.Now().UTC()) {
		game.AdvanceRound()
		h.logger.Info("round advanced", "game", game.Code)
	}
	h.store.Publish(game.Code, "view")
	http.Redirect(w, r, viewURL(game.Code, teamCode, playerCode), http.StatusSeeOther)
}

func (h *GameHandler) playerView(w http.ResponseWriter, r *http.Request) {
	game, ok := h.lookupGame(w, r)
	if !ok {
		return
	}
	teamCode := chi.URLParam(r, "team")
	playerCode := chi.URLParam(r, "player")

	team := game.FindTeam(teamCode)
	if team == nil {
		render(w, r, pages.MessagePage("Not found", "team is not found"))
		return
	}
	if team.FindPlayer(playerCode) == nil {
		render(w, r, pages.MessagePage("Not found", "player is not found"))
		return
	}

	v, err := game.View(teamCode, playerCode, time.Now().UTC())
	if err != nil {
		render(w, r, pages.MessagePage("Not found", err.Error()))
		return
	}
	render(w, r, pages.PlayerPage(buildPlayerPage(v)))
}

func (h *GameHandler) stream(w http.ResponseWriter, r *http.Request) {
	game, ok := h.lookupGame(w, r)
	if !ok {
		return
	}
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "streaming unsupported", http.StatusInternalServerError)
		return
	}
	teamCode := chi.URLParam(r, "team")
	playerCode := chi.URLParam(r, "player")

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	hub := h.store.Broadcaster(game.Code)
	if hub == nil {
		http.Error(w, "no broadcaster", http.StatusInternalServerError)
		return
	}
	sub := hub.Subscribe()
	defer hub.Unsubscribe(sub)

	sendView := func() {
		v, err := game.View(teamCode, playerCode, time.Now().UTC())
		if err != nil {
			return
		}
		writeSSE(w, "view", pages.PlayerViewHTML(buildPlayerPage(v)))
		flusher.Flush()
	}
	sendView()

	keepAlive := time.NewTicker(25 * time.Second)
	defer keepAlive.Stop()

	for {
		select {
		case <-r.Context().Done():
			return
		case <-sub:
			sendView()
		case <-keepAlive.C:
			_, _ = w.Write([]byte(": keepalive\n\n"))
			flusher.Flush()
		}
	}
}

// qr serves a PNG QR code for a team's join link, for phones around a table.
func (h *GameHandler) qr(w http.ResponseWriter, r *http.Request) {
	game, ok := h.lookupGame(w, r)
	if !ok {
		return
	}
	teamCode := chi.URLParam(r, "team")
	if game.FindTeam(teamCode) == nil {
		render(w, r, pages.MessagePage("Not found", "team is not found"))
		return
	}

	joinURL := absoluteURL(r, "/join/"+game.Code+"/"+teamCode)
	png, err := qrcode.Encode(joinURL, qrcode.Medium, qrSize)
	if err != nil {
		h.logger.Error("qr generation failed", "game", game.Code, "err", err)
		http.Error(w, "qr generation failed", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(png)
}

func buildPlayerPage(v alias.View) viewmodel.PlayerPage {
	base := v.GameCode + "/" + v.TeamCode + "/" + v.PlayerCode
	return viewmodel.PlayerPage{
		Kind:         string(v.Kind),
		GameCode:     v.GameCode,
		TeamName:     v.TeamName,
		PackName:     v.PackName,
		WinCount:     v.WinCount,
		CurrentTeam:  v.CurrentTeam,
		Word:         v.Word,
		WinnerName:   v.Winner,
		RemainingSec: int(v.Remaining.Seconds()),
		ReadyURL:     "/ready/" + base,
		PlusBaseURL:  "/plus/" + base,
		ViewURL:      viewURL(v.GameCode, v.TeamCode, v.PlayerCode),
		StreamURL:    viewURL(v.GameCode, v.TeamCode, v.PlayerCode) + "/stream",
		Standings:    toStandings(v.Standings),
	}
}

func toStandings(standings []alias.TeamStanding) []viewmodel.Standing {
	out := make([]viewmodel.Standing, 0, len(standings))
	for _, s := range standings {
		out = append(out, viewmodel.Standing{
			Name:   s.Name,
			Score:  s.Score,
			Words:  s.Words,
			OnTurn: s.OnTurn,
		})
	}
	return out
}

func viewURL(gameCode, teamCode, playerCode string) string {
	return "/game/" + gameCode + "/" + teamCode + "/" + playerCode
}

func absoluteURL(r *http.Request, path string) string {
	if base := strings.TrimSpace(os.Getenv("BASE_URL")); base != "" {
		return strings.TrimRight(base, "/") + path
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	return scheme + "://" + r.Host + path
}

func writeSSE(w http.ResponseWriter, event string, data string) {
	_, _ = w.Write([]byte("event: " + event + "\n"))
	for _, line := range strings.Split(data, "\n") {
		_, _ = w.Write([]byte("data: " + line + "\n"))
	}
	_, _ = w.Write([]byte("\n"))
}
