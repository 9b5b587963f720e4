package repository

import (
	"sort"

	"boardgames/backend/internal/models"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// SortByName orders games by name using English collation, so "azul" sorts
// before "Brass" the way a person would expect. Equal names keep their order.
func SortByName(games []models.Game) {
	// A Collator is not safe for concurrent use; build one per call.
	c := collate.New(language.English)
	sort.SliceStable(games, func(i, j int) bool {
		return c.CompareString(games[i].Name, games[j].Name) < 0
	})
}
