package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/guttosm/sourcing-lens/internal/domain/model"
	"github.com/guttosm/sourcing-lens/internal/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	// ErrRepositoryNotConfigured is returned when the run store is disabled.
	ErrRepositoryNotConfigured = errors.New("run store is not configured")
	// ErrEmptyReport is returned when saving a report without rows.
	ErrEmptyReport = errors.New("report has no rows")
	// ErrRunNotFound is returned when a run does not exist for the caller.
	ErrRunNotFound = errors.New("run not found")
	// ErrMissingUser is returned when no identity accompanies a run operation.
	ErrMissingUser = errors.New("user id is required")
)

// RunStore defines the saved-run operations.
type RunStore interface {
	Save(ctx context.Context, userID, label string, report *model.PortfolioReport) (*model.Run, error)
	List(ctx context.Context, userID string, limit int) ([]model.Run, error)
	Get(ctx context.Context, userID, id string) (*model.Run, error)
}

// RunService persists portfolio reports per user.
type RunService struct {
	repo repository.RunsRepositoryInterface
	now  func() time.Time
}

// NewRunService creates a RunService. A nil repo yields ErrRepositoryNotConfigured on every call.
func NewRunService(repo repository.RunsRepositoryInterface) *RunService {
	return &RunService{repo: repo, now: time.Now}
}

// Save stores report for userID. An empty label defaults to "Portfolio run – <time>".
func (s *RunService) Save(ctx context.Context, userID, label string, report *model.PortfolioReport) (*model.Run, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingUser
	}
	if report == nil || len(report.Rows) == 0 {
		return nil, ErrEmptyReport
	}

	now := s.now().UTC()
	label = strings.TrimSpace(label)
	if label == "" {
		label = "Portfolio run – " + now.Format(time.RFC1123)
	}
	if report.CreatedAt.IsZero() {
		report.CreatedAt = now
	}

	run := &model.Run{
		ID:               primitive.NewObjectID(),
		UserID:           userID,
		Label:            label,
		SKUCount:         len(report.Rows),
		EstimatedSavings: report.TotalSavings,
		Payload:          *report,
		CreatedAt:        now,
	}
	if err := s.repo.Create(ctx, run); err != nil {
		return nil, fmt.Errorf("save run: %w", err)
	}
	return run, nil
}

// List returns the user's runs, newest first.
func (s *RunService) List(ctx context.Context, userID string, limit int) ([]model.Run, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingUser
	}
	runs, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	return runs, nil
}

// Get returns one run owned by userID.
func (s *RunService) Get(ctx context.Context, userID, id string) (*model.Run, error) {
	if s.repo == nil {
		return nil, ErrRepositoryNotConfigured
	}
	if strings.TrimSpace(userID) == "" {
		return nil, ErrMissingUser
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrRunNotFound
	}
	run, err := s.repo.GetByID(ctx, userID, oid)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrRunNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("get run: %w", err)
	}
	return run, nil
}
