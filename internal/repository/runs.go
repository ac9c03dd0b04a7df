package repository

import (
	"context"
	"errors"
	"time"

	"github.com/guttosm/sourcing-lens/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrNotFound is returned when a document does not exist for the caller.
var ErrNotFound = errors.New("document not found")

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

// RunsRepository stores saved portfolio runs.
type RunsRepository struct {
	collection *mongo.Collection
}

// NewRunsRepository creates a new runs repository.
func NewRunsRepository(db *MongoDB) *RunsRepository {
	return &RunsRepository{
		collection: db.Runs,
	}
}

// Create inserts run, assigning an ID and creation time when missing.
func (r *RunsRepository) Create(ctx context.Context, run *model.Run) error {
	if run.ID.IsZero() {
		run.ID = primitive.NewObjectID()
	}
	if run.CreatedAt.IsZero() {
		run.CreatedAt = time.Now().UTC()
	}
	_, err := r.collection.InsertOne(ctx, run)
	return err
}

// ListByUser returns the user's runs, newest first.
func (r *RunsRepository) ListByUser(ctx context.Context, userID string, limit int) ([]model.Run, error) {
	if limit <= 0 {
		limit = DefaultListLimit
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = cursor.Close(ctx)
	}()

	runs := make([]model.Run, 0)
	if err := cursor.All(ctx, &runs); err != nil {
		return nil, err
	}
	return runs, nil
}

// GetByID returns one run owned by userID, or ErrNotFound.
func (r *RunsRepository) GetByID(ctx context.Context, userID string, id primitive.ObjectID) (*model.Run, error) {
	var run model.Run
	err := r.collection.FindOne(ctx, bson.M{"_id": id, "user_id": userID}).Decode(&run)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &run, nil
}
