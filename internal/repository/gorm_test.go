package repository_test

import (
	"context"
	"testing"
	"time"

	"boardgames/backend/internal/models"
	"boardgames/backend/internal/repository"
	"boardgames/backend/internal/repository/repositorytest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catan() models.GameFields {
	return models.GameFields{
		Name:             "Catan",
		MinPlayers:       3,
		MaxPlayers:       4,
		PlayTime:         90,
		Mechanics:        []string{"Dice Rolling", "Trading"},
		About:            "Settle the island.",
		BeginnerFriendly: true,
	}
}

func TestGormRepositoryCreateThenGet(t *testing.T) {
	repo := repositorytest.NewGormRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, catan())
	require.NoError(t, err)
	require.Len(t, created.ID, 24)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, catan(), got.GameFields)
}

func TestGormRepositoryCreateAssignsDistinctIDs(t *testing.T) {
	repo := repositorytest.NewGormRepository(t)
	ctx := context.Background()

	a, err := repo.Create(ctx, catan())
	require.NoError(t, err)
	b, err := repo.Create(ctx, catan())
	require.NoError(t, err)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestGormRepositoryListAllSortsByName(t *testing.T) {
	repo := repositorytest.NewGormRepository(t)
	ctx := context.Background()

	for _, name := range []string{"ticket to Ride", "Brass", "catan", "Azul"} {
		_, err := repo.Create(ctx, models.GameFields{Name: name})
		require.NoError(t, err)
	}

	games, err := repo.ListAll(ctx)
	require.NoError(t, err)

	var names []string
	for _, g := range games {
		names = append(names, g.Name)
	}
	assert.Equal(t, []string{"Azul", "Brass", "catan", "ticket to Ride"}, names)
}

func TestGormRepositoryListAllEmpty(t *testing.T) {
	repo := repositorytest.NewGormRepository(t)

	games, err := repo.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestGormRepositoryUpdateOverwrites(t *testing.T) {
	repo := repositorytest.NewGormRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, catan())
	require.NoError(t, err)

	edited := models.GameFields{
		Name:       "Catan: Seafarers",
		MinPlayers: 3,
		MaxPlayers: 6,
		PlayTime:   120,
		Mechanics:  []string{"Exploration"},
	}
	updated, err := repo.Update(ctx, created.ID, edited)
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, edited, got.GameFields)
	assert.WithinDuration(t, created.CreatedAt, got.CreatedAt, time.Second)
}

func TestGormRepositoryKeepsCountText(t *testing.T) {
	repo := repositorytest.NewGormRepository(t)
	ctx := context.Background()

	fields := models.GameFields{
		Name:           "Gloomhaven",
		MinPlayers:     1,
		MaxPlayersText: "4+",
		PlayTimeText:   "60-120",
		Mechanics:      []string{},
	}
	created, err := repo.Create(ctx, fields)
	require.NoError(t, err)

	got, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, fields, got.GameFields)

	fields.PlayTime, fields.PlayTimeText = 90, ""
	_, err = repo.Update(ctx, created.ID, fields)
	require.NoError(t, err)

	got, err = repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, fields, got.GameFields)
}

func TestGormRepositoryUpdateMissing(t *testing.T) {
	repo := repositorytest.NewGormRepository(t)

	_, err := repo.Update(context.Background(), "65f1c0ffee0000000000beef", catan())
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestGormRepositoryDelete(t *testing.T) {
	repo := repositorytest.NewGormRepository(t)
	ctx := context.Background()

	created, err := repo.Create(ctx, catan())
	require.NoError(t, err)

	require.NoError(t, repo.Delete(ctx, created.ID))

	_, err = repo.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// a second delete of the same id is reported, not swallowed
	assert.ErrorIs(t, repo.Delete(ctx, created.ID), repository.ErrNotFound)
}

func TestGormRepositoryInvalidID(t *testing.T) {
	repo := repositorytest.NewGormRepository(t)
	ctx := context.Background()

	_, err := repo.GetByID(ctx, "not-an-id")
	assert.ErrorIs(t, err, repository.ErrInvalidID)

	_, err = repo.Update(ctx, "42", catan())
	assert.ErrorIs(t, err, repository.ErrInvalidID)

	assert.ErrorIs(t, repo.Delete(ctx, ""), repository.ErrInvalidID)
}

func TestGormRepositoryStoreUnavailable(t *testing.T) {
	db := repositorytest.NewSQLite(t)
	repo := repository.NewGormRepository(db)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	_, err = repo.ListAll(context.Background())
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)

	_, err = repo.Create(context.Background(), catan())
	assert.ErrorIs(t, err, repository.ErrStoreUnavailable)
}
