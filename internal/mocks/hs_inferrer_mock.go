// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/sourcing-lens/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

type MockHSInferrer struct {
	mock.Mock
}

func (m *MockHSInferrer) Infer(ctx context.Context, productName, description string) (model.HSCodeSuggestion, error) {
	args := m.Called(ctx, productName, description)
	return args.Get(0).(model.HSCodeSuggestion), args.Error(1)
}
