package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sitekit-io/sitekit/internal/infra/blob"
	"github.com/sitekit-io/sitekit/internal/modules/model"
	"github.com/stretchr/testify/mock"
)

// MockPublisher is a mock implementation of EventPublisher
type MockPublisher struct {
	mock.Mock
}

func (m *MockPublisher) PublishJSON(ctx context.Context, routingKey string, data any) error {
	args := m.Called(ctx, routingKey, data)
	return args.Error(0)
}

// MockRevisions is a mock implementation of RevisionCounter
type MockRevisions struct {
	mock.Mock
}

func (m *MockRevisions) Bump(ctx context.Context, projectID uuid.UUID) (int64, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRevisions) Current(ctx context.Context, projectID uuid.UUID) (int64, error) {
	args := m.Called(ctx, projectID)
	return args.Get(0).(int64), args.Error(1)
}

// MockStore is a mock implementation of blob.Store
type MockStore struct {
	mock.Mock
}

func (m *MockStore) Put(ctx context.Context, keyPrefix string, filename string, contentType string, body []byte) (*blob.UploadedMeta, error) {
	args := m.Called(ctx, keyPrefix, filename, contentType, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*blob.UploadedMeta), args.Error(1)
}

// MockProjectRepo is a mock implementation of repo.ProjectRepo
type MockProjectRepo struct {
	mock.Mock
}

func (m *MockProjectRepo) Create(ctx context.Context, p *model.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) GetByToken(ctx context.Context, token string) (*model.Project, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectRepo) ListByOwner(ctx context.Context, ownerID string) ([]model.Project, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectRepo) Update(ctx context.Context, p *model.Project) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProjectRepo) UpdateToken(ctx context.Context, id uuid.UUID, token string, baseURL string) error {
	args := m.Called(ctx, id, token, baseURL)
	return args.Error(0)
}

func (m *MockProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockModuleRepo is a mock implementation of repo.ModuleRepo
type MockModuleRepo struct {
	mock.Mock
}

func (m *MockModuleRepo) List(ctx context.Context) ([]model.Module, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Module), args.Error(1)
}

func (m *MockModuleRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Module, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Module), args.Error(1)
}

func (m *MockModuleRepo) GetBySlug(ctx context.Context, slug string) (*model.Module, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Module), args.Error(1)
}

func (m *MockModuleRepo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Module, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Module), args.Error(1)
}

func (m *MockModuleRepo) Upsert(ctx context.Context, mod *model.Module) (bool, error) {
	args := m.Called(ctx, mod)
	return args.Bool(0), args.Error(1)
}

// MockProjectModuleRepo is a mock implementation of repo.ProjectModuleRepo
type MockProjectModuleRepo struct {
	mock.Mock
}

func (m *MockProjectModuleRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.ProjectModule, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProjectModule), args.Error(1)
}

func (m *MockProjectModuleRepo) Exists(ctx context.Context, projectID uuid.UUID, moduleID uuid.UUID) (bool, error) {
	args := m.Called(ctx, projectID, moduleID)
	return args.Bool(0), args.Error(1)
}

func (m *MockProjectModuleRepo) Create(ctx context.Context, pm *model.ProjectModule) error {
	args := m.Called(ctx, pm)
	return args.Error(0)
}

func (m *MockProjectModuleRepo) Delete(ctx context.Context, projectID uuid.UUID, moduleID uuid.UUID) error {
	args := m.Called(ctx, projectID, moduleID)
	return args.Error(0)
}
