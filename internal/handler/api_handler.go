package handler

import (
	"errors"
	"net/http"

	"boardgames/backend/internal/models"
	"boardgames/backend/internal/repository"

	"github.com/gin-gonic/gin"
)

// region --- DTOs ---

// ErrorResponse represents a generic error response.
type ErrorResponse struct {
	Error string `json:"error" example:"Game not found"`
}

// GameResponse is the JSON shape of a game.
type GameResponse struct {
	ID               string   `json:"id" example:"65f1c0ffee0000000000beef"`
	Name             string   `json:"name" example:"Catan"`
	MinPlayers       int      `json:"minPlayers" example:"3"`
	MaxPlayers       int      `json:"maxPlayers" example:"4"`
	PlayTime         int      `json:"playTime" example:"90"`
	MinPlayersText   string   `json:"minPlayersText,omitempty"`
	MaxPlayersText   string   `json:"maxPlayersText,omitempty"`
	PlayTimeText     string   `json:"playTimeText,omitempty" example:"60-120"`
	Mechanics        []string `json:"mechanics"`
	About            string   `json:"aboutGame"`
	BeginnerFriendly bool     `json:"beginnerFriendly"`
}

func newGameResponse(game models.Game) GameResponse {
	return GameResponse{
		ID:               game.ID,
		Name:             game.Name,
		MinPlayers:       game.MinPlayers,
		MaxPlayers:       game.MaxPlayers,
		PlayTime:         game.PlayTime,
		MinPlayersText:   game.MinPlayersText,
		MaxPlayersText:   game.MaxPlayersText,
		PlayTimeText:     game.PlayTimeText,
		Mechanics:        game.Mechanics,
		About:            game.About,
		BeginnerFriendly: game.BeginnerFriendly,
	}
}

// endregion

// region --- JSON Handlers ---

// GetGames godoc
// @Summary      Get a list of games
// @Description  Retrieves every game, sorted by name.
// @Tags         games
// @Produce      json
// @Success      200 {array}  GameResponse
// @Failure      500 {object} ErrorResponse "Game store unavailable"
// @Router       /games [get]
func (h *GameHandler) GetGames(c *gin.Context) {
	games, err := h.games.ListAll(c.Request.Context())
	if err != nil {
		h.jsonError(c, err, "Failed to retrieve games")
		return
	}

	response := make([]GameResponse, 0, len(games))
	for _, game := range games {
		response = append(response, newGameResponse(game))
	}
	c.JSON(http.StatusOK, response)
}

// GetGameByID godoc
// @Summary      Get a single game by ID
// @Description  Retrieves details for a single game.
// @Tags         games
// @Produce      json
// @Param        id path string true "Game ID"
// @Success      200 {object} GameResponse
// @Failure      404 {object} ErrorResponse "Game not found"
// @Failure      500 {object} ErrorResponse "Game store unavailable"
// @Router       /games/{id} [get]
func (h *GameHandler) GetGameByID(c *gin.Context) {
	game, err := h.games.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.jsonError(c, err, "Failed to retrieve game")
		return
	}

	c.JSON(http.StatusOK, newGameResponse(*game))
}

// endregion

// jsonError answers 404 for missing or malformed ids and 500 with message otherwise.
func (h *GameHandler) jsonError(c *gin.Context, err error, message string) {
	_ = c.Error(err)

	if errors.Is(err, repository.ErrNotFound) || errors.Is(err, repository.ErrInvalidID) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Game not found"})
		return
	}

	h.entry(c).WithError(err).Error("Game store request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": message})
}
