package handler

import (
	"context"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sitekit-io/sitekit/internal/middleware"
	"github.com/sitekit-io/sitekit/internal/modules/model"
	"github.com/sitekit-io/sitekit/internal/modules/serializer"
	"github.com/sitekit-io/sitekit/internal/modules/service"
)

type MockDynamicService struct {
	mock.Mock
}

func (m *MockDynamicService) List(ctx context.Context, p *model.Project, slug string) ([]model.DynamicData, error) {
	args := m.Called(ctx, p, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DynamicData), args.Error(1)
}

func (m *MockDynamicService) Create(ctx context.Context, p *model.Project, slug string, payload map[string]any) (*model.DynamicData, error) {
	args := m.Called(ctx, p, slug, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DynamicData), args.Error(1)
}

func (m *MockDynamicService) Get(ctx context.Context, p *model.Project, slug string, recordID string) (*model.DynamicData, error) {
	args := m.Called(ctx, p, slug, recordID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DynamicData), args.Error(1)
}

func (m *MockDynamicService) Replace(ctx context.Context, p *model.Project, slug string, recordID string, payload map[string]any) (*model.DynamicData, error) {
	args := m.Called(ctx, p, slug, recordID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DynamicData), args.Error(1)
}

func (m *MockDynamicService) Delete(ctx context.Context, p *model.Project, slug string, recordID string) error {
	args := m.Called(ctx, p, slug, recordID)
	return args.Error(0)
}

func (m *MockDynamicService) Manifest(ctx context.Context, p *model.Project) (*service.SiteManifest, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SiteManifest), args.Error(1)
}

type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) Create(ctx context.Context, ownerID string, in service.ProjectInput) (*model.Project, error) {
	args := m.Called(ctx, ownerID, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) List(ctx context.Context, ownerID string) ([]model.Project, error) {
	args := m.Called(ctx, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Project), args.Error(1)
}

func (m *MockProjectService) GetOwned(ctx context.Context, ownerID string, projectID uuid.UUID) (*model.Project, error) {
	args := m.Called(ctx, ownerID, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Update(ctx context.Context, p *model.Project, in service.ProjectInput) (*model.Project, error) {
	args := m.Called(ctx, p, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) Delete(ctx context.Context, projectID uuid.UUID) error {
	args := m.Called(ctx, projectID)
	return args.Error(0)
}

func (m *MockProjectService) RegenerateToken(ctx context.Context, p *model.Project) (*model.Project, error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockProjectService) ListModules(ctx context.Context, projectID uuid.UUID) ([]model.ProjectModule, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.ProjectModule), args.Error(1)
}

func (m *MockProjectService) EnableModule(ctx context.Context, projectID uuid.UUID, moduleID uuid.UUID, configuration map[string]interface{}) (*model.ProjectModule, error) {
	args := m.Called(ctx, projectID, moduleID, configuration)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.ProjectModule), args.Error(1)
}

func (m *MockProjectService) DisableModule(ctx context.Context, projectID uuid.UUID, moduleID uuid.UUID) error {
	args := m.Called(ctx, projectID, moduleID)
	return args.Error(0)
}

type MockModuleService struct {
	mock.Mock
}

func (m *MockModuleService) List(ctx context.Context) ([]model.Module, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Module), args.Error(1)
}

func (m *MockModuleService) GetByID(ctx context.Context, id uuid.UUID) (*model.Module, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Module), args.Error(1)
}

func (m *MockModuleService) GetBySlug(ctx context.Context, slug string) (*model.Module, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Module), args.Error(1)
}

func (m *MockModuleService) Seed(ctx context.Context, defs []service.ModuleDefinition) (*service.SeedResult, error) {
	args := m.Called(ctx, defs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.SeedResult), args.Error(1)
}

type MockAdminDataService struct {
	mock.Mock
}

func (m *MockAdminDataService) List(ctx context.Context, projectID uuid.UUID, dataType string) ([]model.DynamicData, error) {
	args := m.Called(ctx, projectID, dataType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.DynamicData), args.Error(1)
}

func (m *MockAdminDataService) Get(ctx context.Context, projectID uuid.UUID, itemID string) (*model.DynamicData, error) {
	args := m.Called(ctx, projectID, itemID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DynamicData), args.Error(1)
}

func (m *MockAdminDataService) Create(ctx context.Context, projectID uuid.UUID, dataType string, payload map[string]any) (*model.DynamicData, error) {
	args := m.Called(ctx, projectID, dataType, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DynamicData), args.Error(1)
}

func (m *MockAdminDataService) Replace(ctx context.Context, projectID uuid.UUID, dataType string, itemID string, payload map[string]any) (*model.DynamicData, error) {
	args := m.Called(ctx, projectID, dataType, itemID, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DynamicData), args.Error(1)
}

func (m *MockAdminDataService) Delete(ctx context.Context, projectID uuid.UUID, itemID string) error {
	args := m.Called(ctx, projectID, itemID)
	return args.Error(0)
}

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) UploadImage(ctx context.Context, projectID uuid.UUID, fh *multipart.FileHeader) (*service.UploadResult, error) {
	args := m.Called(ctx, projectID, fh)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadResult), args.Error(1)
}

type MockExportService struct {
	mock.Mock
}

func (m *MockExportService) Export(ctx context.Context, projectID uuid.UUID, slug string, format string) (*service.ExportFile, error) {
	args := m.Called(ctx, projectID, slug, format)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.ExportFile), args.Error(1)
}

// setupRouter puts project and owner in the context the way the auth
// middleware does.
func setupRouter(project *model.Project, ownerID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if project != nil {
			c.Set(middleware.CtxProject, project)
		}
		c.Set(middleware.CtxUserID, ownerID)
		c.Next()
	})
	return r
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) serializer.Response {
	t.Helper()
	var res serializer.Response
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &res))
	return res
}
