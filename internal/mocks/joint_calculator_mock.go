// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/guttosm/boltjoint-service/internal/domain/model"
	"github.com/guttosm/boltjoint-service/internal/joint"
	"github.com/guttosm/boltjoint-service/internal/service"
	"github.com/stretchr/testify/mock"
)

type MockJointCalculator struct {
	mock.Mock
}

func (m *MockJointCalculator) Calculate(design joint.Design) (model.DesignResult, error) {
	args := m.Called(design)
	return args.Get(0).(model.DesignResult), args.Error(1)
}

func (m *MockJointCalculator) CalculateBatch(ctx context.Context, sources []service.DesignSource) (model.BatchResult, error) {
	args := m.Called(ctx, sources)
	return args.Get(0).(model.BatchResult), args.Error(1)
}

func (m *MockJointCalculator) ResolveGeometry(d int, edgeDistance, pitch float64) (model.GeometryResult, error) {
	args := m.Called(d, edgeDistance, pitch)
	return args.Get(0).(model.GeometryResult), args.Error(1)
}

func (m *MockJointCalculator) InvalidateCache() {
	m.Called()
}
