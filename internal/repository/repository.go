package repository

import (
	"context"
	"errors"
	"fmt"

	"boardgames/backend/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrNotFound is returned when no game matches the given ID.
	ErrNotFound = errors.New("game not found")
	// ErrInvalidID is returned when an ID is not a well-formed identifier.
	ErrInvalidID = errors.New("invalid game id")
	// ErrStoreUnavailable wraps any failure talking to the underlying store.
	ErrStoreUnavailable = errors.New("store unavailable")
)

// GameRepository persists board games.
type GameRepository interface {
	// ListAll returns every game sorted by name.
	ListAll(ctx context.Context) ([]models.Game, error)
	GetByID(ctx context.Context, id string) (*models.Game, error)
	Create(ctx context.Context, fields models.GameFields) (*models.Game, error)
	// Update overwrites every editable field of an existing game.
	Update(ctx context.Context, id string, fields models.GameFields) (*models.Game, error)
	// Delete removes a game. Deleting an unknown ID returns ErrNotFound.
	Delete(ctx context.Context, id string) error
}

// parseID validates an opaque game ID. Both backends use ObjectID hex strings.
func parseID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return oid, nil
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, op, err)
}

func normalizeMechanics(mechanics []string) []string {
	if mechanics == nil {
		return []string{}
	}
	return mechanics
}
