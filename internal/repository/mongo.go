package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"boardgames/backend/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// gameDocument is the stored shape of a game in MongoDB.
type gameDocument struct {
	ID               primitive.ObjectID `bson:"_id,omitempty"`
	Name             string             `bson:"name"`
	MinPlayers       int                `bson:"minPlayers"`
	MaxPlayers       int                `bson:"maxPlayers"`
	PlayTime         int                `bson:"playTime"`
	MinPlayersText   string             `bson:"minPlayersText"`
	MaxPlayersText   string             `bson:"maxPlayersText"`
	PlayTimeText     string             `bson:"playTimeText"`
	Mechanics        []string           `bson:"mechanics"`
	About            string             `bson:"aboutGame"`
	BeginnerFriendly bool               `bson:"beginnerFriendly"`
	CreatedAt        time.Time          `bson:"createdAt"`
	UpdatedAt        time.Time          `bson:"updatedAt"`
}

func (d gameDocument) toModel() models.Game {
	return models.Game{
		ID: d.ID.Hex(),
		GameFields: models.GameFields{
			Name:             d.Name,
			MinPlayers:       d.MinPlayers,
			MaxPlayers:       d.MaxPlayers,
			PlayTime:         d.PlayTime,
			MinPlayersText:   d.MinPlayersText,
			MaxPlayersText:   d.MaxPlayersText,
			PlayTimeText:     d.PlayTimeText,
			Mechanics:        normalizeMechanics(d.Mechanics),
			About:            d.About,
			BeginnerFriendly: d.BeginnerFriendly,
		},
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

// fieldsUpdate builds the $set document for a full overwrite of the editable fields.
func fieldsUpdate(fields models.GameFields, now time.Time) bson.M {
	return bson.M{
		"name":             fields.Name,
		"minPlayers":       fields.MinPlayers,
		"maxPlayers":       fields.MaxPlayers,
		"playTime":         fields.PlayTime,
		"minPlayersText":   fields.MinPlayersText,
		"maxPlayersText":   fields.MaxPlayersText,
		"playTimeText":     fields.PlayTimeText,
		"mechanics":        normalizeMechanics(fields.Mechanics),
		"aboutGame":        fields.About,
		"beginnerFriendly": fields.BeginnerFriendly,
		"updatedAt":        now,
	}
}

// MongoRepository stores games in a single MongoDB collection.
type MongoRepository struct {
	coll *mongo.Collection
	now  func() time.Time
}

var _ GameRepository = (*MongoRepository)(nil)

// NewMongoRepository returns a repository backed by coll.
func NewMongoRepository(coll *mongo.Collection) *MongoRepository {
	return &MongoRepository{
		coll: coll,
		now:  func() time.Time { return time.Now().UTC().Truncate(time.Millisecond) },
	}
}

// EnsureIndexes creates the name index that serves the sorted list query.
func (r *MongoRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "name", Value: 1}},
	})
	if err != nil {
		return unavailable("create name index", err)
	}
	return nil
}

func (r *MongoRepository) ListAll(ctx context.Context) ([]models.Game, error) {
	// The index gives a byte-order sort; SortByName then applies collation.
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := r.coll.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, unavailable("find games", err)
	}

	var docs []gameDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, unavailable("decode games", err)
	}

	games := make([]models.Game, 0, len(docs))
	for _, doc := range docs {
		games = append(games, doc.toModel())
	}
	SortByName(games)
	return games, nil
}

func (r *MongoRepository) GetByID(ctx context.Context, id string) (*models.Game, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	var doc gameDocument
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, unavailable("find game", err)
	}

	game := doc.toModel()
	return &game, nil
}

func (r *MongoRepository) Create(ctx context.Context, fields models.GameFields) (*models.Game, error) {
	now := r.now()
	doc := gameDocument{
		Name:             fields.Name,
		MinPlayers:       fields.MinPlayers,
		MaxPlayers:       fields.MaxPlayers,
		PlayTime:         fields.PlayTime,
		MinPlayersText:   fields.MinPlayersText,
		MaxPlayersText:   fields.MaxPlayersText,
		PlayTimeText:     fields.PlayTimeText,
		Mechanics:        normalizeMechanics(fields.Mechanics),
		About:            fields.About,
		BeginnerFriendly: fields.BeginnerFriendly,
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, unavailable("insert game", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%w: unexpected inserted id type %T", ErrStoreUnavailable, res.InsertedID)
	}
	doc.ID = oid

	game := doc.toModel()
	return &game, nil
}

func (r *MongoRepository) Update(ctx context.Context, id string, fields models.GameFields) (*models.Game, error) {
	oid, err := parseID(id)
	if err != nil {
		return nil, err
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc gameDocument
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": fieldsUpdate(fields, r.now())}, opts).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, unavailable("update game", err)
	}

	game := doc.toModel()
	return &game, nil
}

func (r *MongoRepository) Delete(ctx context.Context, id string) error {
	oid, err := parseID(id)
	if err != nil {
		return err
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return unavailable("delete game", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
