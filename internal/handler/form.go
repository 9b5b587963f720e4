package handler

import (
	"net/url"
	"strconv"
	"strings"

	"boardgames/backend/internal/models"
)

// BeginnerFriendlyField is the checkbox key on the add and edit forms.
const BeginnerFriendlyField = "beginnerFriendly"

// GameForm is the body of the add and edit forms. Numbers arrive as raw text
// and any string is accepted.
type GameForm struct {
	Name       string   `form:"name"`
	MinPlayers string   `form:"minPlayers"`
	MaxPlayers string   `form:"maxPlayers"`
	PlayTime   string   `form:"playTime"`
	Mechanics  []string `form:"mechanics"`
	About      string   `form:"aboutGame"`
}

// ParseCheckbox reports whether the beginnerFriendly checkbox was ticked.
// Browsers send "on" for a checked box and omit the key otherwise, so only
// the exact value "on" counts.
func ParseCheckbox(body url.Values) bool {
	return body.Get(BeginnerFriendlyField) == "on"
}

// Fields converts the form into game fields. It returns the names of numeric
// fields whose text was not a whole number; their text is kept verbatim in
// the matching *Text field and the count is 0.
func (f GameForm) Fields(body url.Values) (models.GameFields, []string) {
	var malformed []string
	count := func(field, raw string) (int, string) {
		n, text := parseCount(raw)
		if text != "" {
			malformed = append(malformed, field)
		}
		return n, text
	}

	fields := models.GameFields{
		Name:             strings.TrimSpace(f.Name),
		Mechanics:        parseMechanics(f.Mechanics),
		About:            strings.TrimSpace(f.About),
		BeginnerFriendly: ParseCheckbox(body),
	}
	fields.MinPlayers, fields.MinPlayersText = count("minPlayers", f.MinPlayers)
	fields.MaxPlayers, fields.MaxPlayersText = count("maxPlayers", f.MaxPlayers)
	fields.PlayTime, fields.PlayTimeText = count("playTime", f.PlayTime)
	return fields, malformed
}

// parseCount reads a whole number. Blank input is 0. Anything else that does
// not parse comes back trimmed as text with a count of 0.
func parseCount(raw string) (int, string) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, ""
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, raw
	}
	return n, ""
}

// parseMechanics flattens repeated and comma-separated values, keeping order.
func parseMechanics(values []string) []string {
	mechanics := []string{}
	for _, v := range values {
		mechanics = append(mechanics, splitCommaSeparated(v)...)
	}
	return mechanics
}

// Helper to split comma-separated strings
func splitCommaSeparated(s string) []string {
	var result []string
	parts := strings.Split(s, ",")
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
