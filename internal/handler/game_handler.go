package handler

import (
	"errors"
	"net/http"

	"boardgames/backend/internal/middleware"
	"boardgames/backend/internal/models"
	"boardgames/backend/internal/repository"
	"boardgames/backend/internal/views"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// GameHandler serves the HTML pages for browsing and editing games.
type GameHandler struct {
	games repository.GameRepository
	log   *logrus.Logger
}

// NewGameHandler returns a handler that reads and writes games through repo.
func NewGameHandler(repo repository.GameRepository, log *logrus.Logger) *GameHandler {
	return &GameHandler{games: repo, log: log}
}

// region --- Pages ---

// Home renders the landing page.
func (h *GameHandler) Home(c *gin.Context) {
	c.HTML(http.StatusOK, views.Home, gin.H{})
}

// ListGames renders every game sorted by name.
func (h *GameHandler) ListGames(c *gin.Context) {
	games, err := h.games.ListAll(c.Request.Context())
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, views.GameIndex, gin.H{
		"title": "All games",
		"games": games,
	})
}

// NewGameForm renders the empty add form.
func (h *GameHandler) NewGameForm(c *gin.Context) {
	c.HTML(http.StatusOK, views.GameAdd, gin.H{
		"title": "Add a game",
		"game":  models.GameFields{},
	})
}

// ShowGame renders a single game.
func (h *GameHandler) ShowGame(c *gin.Context) {
	game, err := h.games.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, views.GameShow, gin.H{
		"title": game.Name,
		"game":  game,
	})
}

// EditGameForm renders the edit form filled in with the stored game.
func (h *GameHandler) EditGameForm(c *gin.Context) {
	game, err := h.games.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.HTML(http.StatusOK, views.GameEdit, gin.H{
		"title": "Edit " + game.Name,
		"game":  game,
	})
}

// NotFound renders the 404 page for unknown routes.
func (h *GameHandler) NotFound(c *gin.Context) {
	c.HTML(http.StatusNotFound, views.NotFound, gin.H{"title": "Not found"})
}

// endregion

// region --- Form submissions ---

// CreateGame stores a game from the add form and redirects to its page.
func (h *GameHandler) CreateGame(c *gin.Context) {
	fields, ok := h.bindGame(c)
	if !ok {
		return
	}

	game, err := h.games.Create(c.Request.Context(), fields)
	if err != nil {
		h.renderError(c, err)
		return
	}

	h.entry(c).WithField("game_id", game.ID).Info("Game created")
	c.Redirect(http.StatusSeeOther, "/games/"+game.ID)
}

// UpdateGame overwrites a game from the edit form and redirects to its page.
func (h *GameHandler) UpdateGame(c *gin.Context) {
	fields, ok := h.bindGame(c)
	if !ok {
		return
	}

	game, err := h.games.Update(c.Request.Context(), c.Param("id"), fields)
	if err != nil {
		h.renderError(c, err)
		return
	}

	c.Redirect(http.StatusSeeOther, "/games/"+game.ID)
}

// DeleteGame removes a game and redirects to the list.
func (h *GameHandler) DeleteGame(c *gin.Context) {
	id := c.Param("id")
	if err := h.games.Delete(c.Request.Context(), id); err != nil {
		h.renderError(c, err)
		return
	}

	h.entry(c).WithField("game_id", id).Info("Game deleted")
	c.Redirect(http.StatusSeeOther, "/games")
}

// endregion

// bindGame reads the add/edit form. It writes the response itself on failure.
func (h *GameHandler) bindGame(c *gin.Context) (models.GameFields, bool) {
	var form GameForm
	if err := c.ShouldBind(&form); err != nil {
		_ = c.Error(err)
		c.String(http.StatusBadRequest, "Invalid form body")
		return models.GameFields{}, false
	}

	fields, malformed := form.Fields(c.Request.PostForm)
	if len(malformed) > 0 {
		h.entry(c).WithField("fields", malformed).Warn("Non-numeric values kept as text")
	}
	return fields, true
}

// renderError maps repository errors onto the 404 and 500 pages.
func (h *GameHandler) renderError(c *gin.Context, err error) {
	_ = c.Error(err)

	if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidID) {
		c.HTML(http.StatusNotFound, views.NotFound, gin.H{"title": "Not found"})
		return
	}

	h.entry(c).WithError(err).Error("Game store request failed")
	c.HTML(http.StatusInternalServerError, views.ServerErr, gin.H{"title": "Error"})
}

func (h *GameHandler) entry(c *gin.Context) *logrus.Entry {
	return h.log.WithFields(logrus.Fields{
		"request_id": middleware.GetRequestID(c),
		"path":       c.Request.URL.Path,
	})
}
