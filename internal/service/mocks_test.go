package service

import (
	"context"

	"github.com/osu-mist/game-curator-api/internal/domain"
	"github.com/osu-mist/game-curator-api/internal/query"
	"github.com/osu-mist/game-curator-api/internal/store"
	"github.com/stretchr/testify/mock"
)

// MockDeveloperStore mocks the store.DeveloperStore interface
type MockDeveloperStore struct {
	mock.Mock
}

func (m *MockDeveloperStore) List(ctx context.Context, pred query.Predicate) ([]store.DeveloperRow, error) {
	args := m.Called(ctx, pred)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.DeveloperRow), args.Error(1)
}

func (m *MockDeveloperStore) GetByID(ctx context.Context, id int64) (*store.DeveloperRow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.DeveloperRow), args.Error(1)
}

func (m *MockDeveloperStore) Create(ctx context.Context, d domain.NewDeveloper) (*store.DeveloperRow, error) {
	args := m.Called(ctx, d)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.DeveloperRow), args.Error(1)
}

func (m *MockDeveloperStore) Update(ctx context.Context, id int64, patch domain.DeveloperPatch) (int64, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDeveloperStore) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockDeveloperStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockGameStore mocks the store.GameStore interface
type MockGameStore struct {
	mock.Mock
}

func (m *MockGameStore) List(ctx context.Context, pred query.Predicate) ([]store.GameRow, error) {
	args := m.Called(ctx, pred)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.GameRow), args.Error(1)
}

func (m *MockGameStore) GetByID(ctx context.Context, id int64) (*store.GameRow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.GameRow), args.Error(1)
}

func (m *MockGameStore) Create(ctx context.Context, g domain.NewGame) (*store.GameRow, error) {
	args := m.Called(ctx, g)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.GameRow), args.Error(1)
}

func (m *MockGameStore) Update(ctx context.Context, id int64, patch domain.GamePatch) (int64, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGameStore) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockGameStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// MockReviewStore mocks the store.ReviewStore interface
type MockReviewStore struct {
	mock.Mock
}

func (m *MockReviewStore) List(ctx context.Context, pred query.Predicate) ([]store.ReviewRow, error) {
	args := m.Called(ctx, pred)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]store.ReviewRow), args.Error(1)
}

func (m *MockReviewStore) GetByID(ctx context.Context, id int64) (*store.ReviewRow, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.ReviewRow), args.Error(1)
}

func (m *MockReviewStore) Create(ctx context.Context, r domain.NewReview) (*store.ReviewRow, error) {
	args := m.Called(ctx, r)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*store.ReviewRow), args.Error(1)
}

func (m *MockReviewStore) Update(ctx context.Context, id int64, patch domain.ReviewPatch) (int64, error) {
	args := m.Called(ctx, id, patch)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReviewStore) Delete(ctx context.Context, id int64) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReviewStore) ExistsByID(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
