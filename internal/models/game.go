package models

import "time"

// GameFields holds the editable attributes of a board game.
//
// The counts come from free-text form inputs. When the text is not a whole
// number the count is 0 and the *Text field keeps what was typed.
type GameFields struct {
	Name             string   `json:"name"`
	MinPlayers       int      `json:"minPlayers"`
	MaxPlayers       int      `json:"maxPlayers"`
	PlayTime         int      `json:"playTime"` // minutes
	MinPlayersText   string   `json:"minPlayersText,omitempty"`
	MaxPlayersText   string   `json:"maxPlayersText,omitempty"`
	PlayTimeText     string   `json:"playTimeText,omitempty"`
	Mechanics        []string `json:"mechanics"`
	About            string   `json:"aboutGame"`
	BeginnerFriendly bool     `json:"beginnerFriendly"`
}

// Game represents a board game in the catalogue.
type Game struct {
	ID string `json:"id"`
	GameFields
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
