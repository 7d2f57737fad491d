package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"aliasgame/internal/alias"
	"aliasgame/internal/viewmodel"
	"aliasgame/internal/wordpack"
	"aliasgame/views/pages"
)

// HomeHandler serves the create-game form and session creation.
type HomeHandler struct {
	store   *alias.Store
	packDir string
	logger  *slog.Logger
}

func NewHomeHandler(store *alias.Store, packDir string, logger *slog.Logger) *HomeHandler {
	return &HomeHandler{store: store, packDir: packDir, logger: logger}
}

func (h *HomeHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.home)
	r.Post("/games", h.createGame)
}

func (h *HomeHandler) home(w http.ResponseWriter, r *http.Request) {
	render(w, r, pages.HomePage(viewmodel.HomePage{
		Packs: wordpack.List(h.packDir),
	}))
}

func (h *HomeHandler) createGame(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	packName := strings.TrimSpace(r.FormValue("wordpack"))
	teamCount := parseInt(r.FormValue("teams-count"), 2)
	winCount := parseInt(r.FormValue("win-count"), 10)

	pack, err := wordpack.Load(h.packDir, packName)
	if err != nil {
		h.logger.Warn("word pack rejected", "pack", packName, "err", err)
		render(w, r, pages.MessagePage("Unknown word pack", "That word pack could not be loaded."))
		return
	}

	game, err := h.store.CreateGame(teamCount, winCount, pack.Words, pack.Name)
	if err != nil {
		h.logger.Warn("game rejected", "err", err)
		render(w, r, pages.MessagePage("Could not create game", err.Error()))
		return
	}

	h.logger.Info("game created",
		"game", game.Code, "pack", pack.Name, "teams", teamCount, "winCount", winCount)
	http.Redirect(w, r, "/overview/"+game.Code, http.StatusSeeOther)
}

func parseInt(value string, fallback int) int {
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
