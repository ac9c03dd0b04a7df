package repository

import (
	"context"

	"github.com/guttosm/sourcing-lens/internal/domain/model"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RunsRepositoryInterface defines the operations of the saved-run store.
type RunsRepositoryInterface interface {
	Create(ctx context.Context, run *model.Run) error
	ListByUser(ctx context.Context, userID string, limit int) ([]model.Run, error)
	GetByID(ctx context.Context, userID string, id primitive.ObjectID) (*model.Run, error)
}
