package repository

import (
	"context"
	"errors"
	"time"

	"boardgames/backend/internal/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// gameRecord is the relational shape of a game. IDs are ObjectID hex strings so
// links stay valid whichever backend is configured.
type gameRecord struct {
	ID               string `gorm:"primaryKey;size:24"`
	Name             string `gorm:"size:255;not null;index"`
	MinPlayers       int
	MaxPlayers       int
	PlayTime         int
	MinPlayersText   string `gorm:"size:255"`
	MaxPlayersText   string `gorm:"size:255"`
	PlayTimeText     string `gorm:"size:255"`
	Mechanics        datatypes.JSONSlice[string]
	About            string
	BeginnerFriendly bool `gorm:"not null"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (gameRecord) TableName() string { return "games" }

// BeforeCreate assigns the ID when the row is inserted.
func (g *gameRecord) BeforeCreate(tx *gorm.DB) error {
	if g.ID == "" {
		g.ID = primitive.NewObjectID().Hex()
	}
	return nil
}

func (g *gameRecord) apply(fields models.GameFields) {
	g.Name = fields.Name
	g.MinPlayers = fields.MinPlayers
	g.MaxPlayers = fields.MaxPlayers
	g.PlayTime = fields.PlayTime
	g.MinPlayersText = fields.MinPlayersText
	g.MaxPlayersText = fields.MaxPlayersText
	g.PlayTimeText = fields.PlayTimeText
	g.Mechanics = datatypes.NewJSONSlice(normalizeMechanics(fields.Mechanics))
	g.About = fields.About
	g.BeginnerFriendly = fields.BeginnerFriendly
}

func (g gameRecord) toModel() models.Game {
	return models.Game{
		ID: g.ID,
		GameFields: models.GameFields{
			Name:             g.Name,
			MinPlayers:       g.MinPlayers,
			MaxPlayers:       g.MaxPlayers,
			PlayTime:         g.PlayTime,
			MinPlayersText:   g.MinPlayersText,
			MaxPlayersText:   g.MaxPlayersText,
			PlayTimeText:     g.PlayTimeText,
			Mechanics:        normalizeMechanics([]string(g.Mechanics)),
			About:            g.About,
			BeginnerFriendly: g.BeginnerFriendly,
		},
		CreatedAt: g.CreatedAt,
		UpdatedAt: g.UpdatedAt,
	}
}

// AutoMigrate creates or updates the games table.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&gameRecord{})
}

// GormRepository stores games in a relational database through gorm.
type GormRepository struct {
	db *gorm.DB
}

var _ GameRepository = (*GormRepository)(nil)

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) ListAll(ctx context.Context) ([]models.Game, error) {
	var records []gameRecord
	if err := r.db.WithContext(ctx).Find(&records).Error; err != nil {
		return nil, unavailable("find games", err)
	}

	games := make([]models.Game, 0, len(records))
	for _, rec := range records {
		games = append(games, rec.toModel())
	}
	SortByName(games)
	return games, nil
}

func (r *GormRepository) GetByID(ctx context.Context, id string) (*models.Game, error) {
	rec, err := r.find(ctx, id)
	if err != nil {
		return nil, err
	}
	game := rec.toModel()
	return &game, nil
}

func (r *GormRepository) Create(ctx context.Context, fields models.GameFields) (*models.Game, error) {
	var rec gameRecord
	rec.apply(fields)
	if err := r.db.WithContext(ctx).Create(&rec).Error; err != nil {
		return nil, unavailable("create game", err)
	}
	game := rec.toModel()
	return &game, nil
}

func (r *GormRepository) Update(ctx context.Context, id string, fields models.GameFields) (*models.Game, error) {
	rec, err := r.find(ctx, id)
	if err != nil {
		return nil, err
	}

	rec.apply(fields)
	if err := r.db.WithContext(ctx).Save(rec).Error; err != nil {
		return nil, unavailable("save game", err)
	}
	game := rec.toModel()
	return &game, nil
}

func (r *GormRepository) Delete(ctx context.Context, id string) error {
	if _, err := parseID(id); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&gameRecord{}, "id = ?", id)
	if result.Error != nil {
		return unavailable("delete game", result.Error)
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *GormRepository) find(ctx context.Context, id string) (*gameRecord, error) {
	if _, err := parseID(id); err != nil {
		return nil, err
	}

	var rec gameRecord
	if err := r.db.WithContext(ctx).First(&rec, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, unavailable("find game", err)
	}
	return &rec, nil
}
