package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/radieske/tinkazo-platform/internal/domain"
)

const (
	stateCollection = "state"
	stateDocID      = "tinkazo"
)

type mongoState struct {
	ID        string          `bson:"_id"`
	Version   int64           `bson:"version"`
	State     domain.Snapshot `bson:"state"`
	UpdatedAt time.Time       `bson:"updatedAt"`
}

// Mongo guarda o snapshot num documento único da coleção state
type Mongo struct {
	collection *mongo.Collection
}

func NewMongo(db *mongo.Database) *Mongo {
	return &Mongo{collection: db.Collection(stateCollection)}
}

func (m *Mongo) Load(ctx context.Context) (*domain.Snapshot, error) {
	var doc mongoState
	err := m.collection.FindOne(ctx, bson.M{"_id": stateDocID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load state: %w", err)
	}
	s := doc.State
	s.Version = doc.Version
	return &s, nil
}

func (m *Mongo) Save(ctx context.Context, s *domain.Snapshot) error {
	next := mongoState{
		ID:        stateDocID,
		Version:   s.Version + 1,
		State:     *s,
		UpdatedAt: time.Now().UTC(),
	}
	next.State.Version = next.Version

	res, err := m.collection.ReplaceOne(ctx, bson.M{"_id": stateDocID, "version": s.Version}, next)
	if err != nil {
		return fmt.Errorf("save state: %w", err)
	}
	if res.MatchedCount == 0 {
		n, err := m.collection.CountDocuments(ctx, bson.M{"_id": stateDocID})
		if err != nil {
			return fmt.Errorf("save state: %w", err)
		}
		if n == 0 {
			return ErrNotFound
		}
		return fmt.Errorf("expected version %d: %w", s.Version, ErrVersionConflict)
	}
	s.Version = next.Version
	return nil
}

func (m *Mongo) Bootstrap(ctx context.Context, s *domain.Snapshot) error {
	seed := mongoState{ID: stateDocID, Version: 1, State: *s, UpdatedAt: time.Now().UTC()}
	seed.State.Version = 1
	_, err := m.collection.InsertOne(ctx, seed)
	if err != nil && !mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("bootstrap state: %w", err)
	}
	return nil
}
