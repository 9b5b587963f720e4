package handler

import (
	"net/url"
	"testing"

	"boardgames/backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestParseCheckbox(t *testing.T) {
	tests := []struct {
		name string
		body url.Values
		want bool
	}{
		{"checked", url.Values{"beginnerFriendly": {"on"}}, true},
		{"absent", url.Values{"name": {"Catan"}}, false},
		{"off", url.Values{"beginnerFriendly": {"off"}}, false},
		{"empty value", url.Values{"beginnerFriendly": {""}}, false},
		{"true is not on", url.Values{"beginnerFriendly": {"true"}}, false},
		{"upper case", url.Values{"beginnerFriendly": {"ON"}}, false},
		{"nil body", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseCheckbox(tt.body))
		})
	}
}

func TestGameFormFields(t *testing.T) {
	form := GameForm{
		Name:       "  Catan ",
		MinPlayers: "3",
		MaxPlayers: " 4 ",
		PlayTime:   "90",
		Mechanics:  []string{"Dice Rolling, Trading", "", "Network Building"},
		About:      "Settle the island.",
	}

	fields, malformed := form.Fields(url.Values{"beginnerFriendly": {"on"}})
	assert.Empty(t, malformed)
	assert.Equal(t, models.GameFields{
		Name:             "Catan",
		MinPlayers:       3,
		MaxPlayers:       4,
		PlayTime:         90,
		Mechanics:        []string{"Dice Rolling", "Trading", "Network Building"},
		About:            "Settle the island.",
		BeginnerFriendly: true,
	}, fields)
}

func TestGameFormFieldsKeepsNonNumericText(t *testing.T) {
	form := GameForm{Name: "Gloomhaven", MinPlayers: " 2+ ", MaxPlayers: "", PlayTime: "60-120"}

	fields, malformed := form.Fields(url.Values{})
	assert.Equal(t, []string{"minPlayers", "playTime"}, malformed)
	assert.Equal(t, models.GameFields{
		Name:           "Gloomhaven",
		MinPlayersText: "2+",
		PlayTimeText:   "60-120",
		Mechanics:      []string{},
	}, fields)
}

func TestParseCount(t *testing.T) {
	tests := []struct {
		raw      string
		wantN    int
		wantText string
	}{
		{"", 0, ""},
		{"   ", 0, ""},
		{"4", 4, ""},
		{" 12 ", 12, ""},
		{"-1", -1, ""},
		{"four", 0, "four"},
		{"2.5", 0, "2.5"},
		{" 60-120 ", 0, "60-120"},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			n, text := parseCount(tt.raw)
			assert.Equal(t, tt.wantN, n)
			assert.Equal(t, tt.wantText, text)
		})
	}
}
