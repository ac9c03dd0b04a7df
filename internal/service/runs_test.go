package service

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/guttosm/sourcing-lens/internal/domain/model"
	"github.com/guttosm/sourcing-lens/internal/mocks"
	"github.com/guttosm/sourcing-lens/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func sampleReport() *model.PortfolioReport {
	return &model.PortfolioReport{
		TotalSavings: 575.2,
		Rows: []model.PortfolioRow{
			{SKULabel: "A", CurrentLane: "China", SuggestedLane: "India", AnnualSavings: 575.2},
			{SKULabel: "B", CurrentLane: "India", SuggestedLane: "India"},
		},
	}
}

func TestRunService_Save(t *testing.T) {
	fixed := time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC)

	t.Run("defaults label and derives counts", func(t *testing.T) {
		repo := new(mocks.MockRunsRepository)
		svc := NewRunService(repo)
		svc.now = func() time.Time { return fixed }

		repo.On("Create", mock.Anything, mock.MatchedBy(func(r *model.Run) bool {
			return r.UserID == "user-1" && r.SKUCount == 2 && r.EstimatedSavings == 575.2
		})).Return(nil)

		run, err := svc.Save(context.Background(), "user-1", "  ", sampleReport())

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(run.Label, "Portfolio run – "))
		assert.Contains(t, run.Label, "17 Oct 2026")
		assert.Equal(t, fixed, run.CreatedAt)
		assert.Equal(t, fixed, run.Payload.CreatedAt)
		assert.False(t, run.ID.IsZero())
		repo.AssertExpectations(t)
	})

	t.Run("keeps explicit label", func(t *testing.T) {
		repo := new(mocks.MockRunsRepository)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)

		run, err := NewRunService(repo).Save(context.Background(), "user-1", "Q3 review", sampleReport())

		require.NoError(t, err)
		assert.Equal(t, "Q3 review", run.Label)
	})

	t.Run("rejects empty report", func(t *testing.T) {
		repo := new(mocks.MockRunsRepository)

		_, err := NewRunService(repo).Save(context.Background(), "user-1", "", &model.PortfolioReport{})

		assert.ErrorIs(t, err, ErrEmptyReport)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("requires user", func(t *testing.T) {
		_, err := NewRunService(new(mocks.MockRunsRepository)).Save(context.Background(), "", "", sampleReport())
		assert.ErrorIs(t, err, ErrMissingUser)
	})

	t.Run("wraps repository error", func(t *testing.T) {
		repo := new(mocks.MockRunsRepository)
		storeErr := errors.New("write failed")
		repo.On("Create", mock.Anything, mock.Anything).Return(storeErr)

		_, err := NewRunService(repo).Save(context.Background(), "user-1", "", sampleReport())

		assert.ErrorIs(t, err, storeErr)
	})

	t.Run("not configured", func(t *testing.T) {
		_, err := NewRunService(nil).Save(context.Background(), "user-1", "", sampleReport())
		assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
	})
}

func TestRunService_List(t *testing.T) {
	repo := new(mocks.MockRunsRepository)
	runs := []model.Run{{Label: "newest"}, {Label: "oldest"}}
	repo.On("ListByUser", mock.Anything, "user-1", 20).Return(runs, nil)

	got, err := NewRunService(repo).List(context.Background(), "user-1", 20)

	require.NoError(t, err)
	assert.Equal(t, runs, got)

	_, err = NewRunService(nil).List(context.Background(), "user-1", 20)
	assert.ErrorIs(t, err, ErrRepositoryNotConfigured)
}

func TestRunService_Get(t *testing.T) {
	id := primitive.NewObjectID()

	t.Run("found", func(t *testing.T) {
		repo := new(mocks.MockRunsRepository)
		repo.On("GetByID", mock.Anything, "user-1", id).Return(&model.Run{ID: id, Label: "x"}, nil)

		run, err := NewRunService(repo).Get(context.Background(), "user-1", id.Hex())

		require.NoError(t, err)
		assert.Equal(t, "x", run.Label)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(mocks.MockRunsRepository)
		repo.On("GetByID", mock.Anything, "user-1", id).Return(nil, repository.ErrNotFound)

		_, err := NewRunService(repo).Get(context.Background(), "user-1", id.Hex())

		assert.ErrorIs(t, err, ErrRunNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		repo := new(mocks.MockRunsRepository)

		_, err := NewRunService(repo).Get(context.Background(), "user-1", "not-an-id")

		assert.ErrorIs(t, err, ErrRunNotFound)
		repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything, mock.Anything)
	})
}
