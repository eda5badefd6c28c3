package handler

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/sitekit-io/sitekit/internal/modules/model"
	"github.com/sitekit-io/sitekit/internal/modules/service"
)

type adminMocks struct {
	data    *MockAdminDataService
	uploads *MockUploadService
	exports *MockExportService
}

func newAdminRouter(project *model.Project) (http.Handler, adminMocks) {
	m := adminMocks{data: &MockAdminDataService{}, uploads: &MockUploadService{}, exports: &MockExportService{}}
	h := NewAdminDataHandler(m.data, m.uploads, m.exports)

	r := setupRouter(project, "owner-1")
	g := r.Group("/api/projects/:project_id")
	g.GET("/admin/data/:data_type", h.ListItems)
	g.POST("/admin/data/:data_type", h.CreateItem)
	g.GET("/admin/data/:data_type/:item_id", h.GetItem)
	g.PUT("/admin/data/:data_type/:item_id", h.UpdateItem)
	g.DELETE("/admin/data/:data_type/:item_id", h.DeleteItem)
	g.POST("/admin/upload", h.UploadImage)
	g.GET("/export/:module_slug", h.ExportModule)
	return r, m
}

func TestAdminDataHandler_Items(t *testing.T) {
	project := &model.Project{ID: uuid.New()}
	id := uuid.New()
	router, m := newAdminRouter(project)
	base := "/api/projects/" + project.ID.String() + "/admin/data/settings"

	m.data.On("Create", mock.Anything, project.ID, "settings", map[string]any{"theme": "dark"}).
		Return(&model.DynamicData{ID: id, Data: datatypes.JSONMap{"theme": "dark", "dataType": "settings"}}, nil)
	m.data.On("List", mock.Anything, project.ID, "settings").
		Return([]model.DynamicData{{ID: id, Data: datatypes.JSONMap{"theme": "dark", "dataType": "settings"}}}, nil)
	m.data.On("Get", mock.Anything, project.ID, "gone").Return(nil, service.ErrRecordNotFound)
	m.data.On("Delete", mock.Anything, project.ID, id.String()).Return(nil)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, base, strings.NewReader(`{"theme":"dark"}`)))
	assert.Equal(t, http.StatusCreated, w.Code)
	res := decodeResponse(t, w)
	assert.Equal(t, "Item created successfully.", res.Message)
	item := res.Data.(map[string]interface{})["item"].(map[string]interface{})
	assert.Equal(t, "settings", item["dataType"])

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, base, nil))
	assert.Equal(t, http.StatusOK, w.Code)
	res = decodeResponse(t, w)
	require.NotNil(t, res.Count)
	assert.Equal(t, 1, *res.Count)
	assert.Len(t, res.Data.(map[string]interface{})["items"], 1)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, base+"/gone", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Item not found.", decodeResponse(t, w).Message)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, base+"/"+id.String(), nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Item deleted successfully.", decodeResponse(t, w).Message)

	m.data.AssertExpectations(t)
}

func TestAdminDataHandler_UploadImage(t *testing.T) {
	project := &model.Project{ID: uuid.New()}
	url := "/api/projects/" + project.ID.String() + "/admin/upload"

	t.Run("no file", func(t *testing.T) {
		router, m := newAdminRouter(project)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodPost, url, nil))

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "No file uploaded.", decodeResponse(t, w).Message)
		m.uploads.AssertNotCalled(t, "UploadImage", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("uploaded", func(t *testing.T) {
		router, m := newAdminRouter(project)
		m.uploads.On("UploadImage", mock.Anything, project.ID, mock.MatchedBy(func(fh *multipart.FileHeader) bool {
			return fh.Filename == "logo.png"
		})).Return(&service.UploadResult{URL: "https://cdn.test/logo.png", Filename: "logo.png", Size: 4, MIME: "image/png"}, nil)

		body := &bytes.Buffer{}
		mw := multipart.NewWriter(body)
		part, err := mw.CreateFormFile("image", "logo.png")
		require.NoError(t, err)
		_, _ = part.Write([]byte{0x89, 'P', 'N', 'G'})
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, url, body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		res := decodeResponse(t, w)
		assert.Equal(t, "Image uploaded successfully.", res.Message)
		assert.Equal(t, "https://cdn.test/logo.png", res.Data.(map[string]interface{})["url"])
		m.uploads.AssertExpectations(t)
	})

	t.Run("storage disabled", func(t *testing.T) {
		router, m := newAdminRouter(project)
		m.uploads.On("UploadImage", mock.Anything, project.ID, mock.Anything).Return(nil, service.ErrBlobDisabled)

		body := &bytes.Buffer{}
		mw := multipart.NewWriter(body)
		part, err := mw.CreateFormFile("image", "logo.png")
		require.NoError(t, err)
		_, _ = part.Write([]byte("x"))
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, url, body)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}

func TestAdminDataHandler_ExportModule(t *testing.T) {
	project := &model.Project{ID: uuid.New()}
	router, m := newAdminRouter(project)
	base := "/api/projects/" + project.ID.String() + "/export/"

	m.exports.On("Export", mock.Anything, project.ID, "products", "").Return(&service.ExportFile{
		Filename:    "products.csv",
		ContentType: "text/csv; charset=utf-8",
		Body:        []byte("id,name\n"),
	}, nil)
	m.exports.On("Export", mock.Anything, project.ID, "products", "pdf").Return(nil, service.ErrUnsupportedFormat)
	m.exports.On("Export", mock.Anything, project.ID, "nope", "").Return(nil, service.ErrModuleNotFound)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, base+"products", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="products.csv"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "text/csv; charset=utf-8", w.Header().Get("Content-Type"))
	assert.Equal(t, "id,name\n", w.Body.String())

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, base+"products?format=pdf", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, base+"nope", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Module 'nope' not found.", decodeResponse(t, w).Message)
}

func TestModuleHandler_GetModule(t *testing.T) {
	id := uuid.New()
	svc := &MockModuleService{}
	svc.On("GetByID", mock.Anything, id).Return(&model.Module{ID: id, Name: "Products", Slug: "products"}, nil)

	h := NewModuleHandler(svc)
	r := setupRouter(nil, "owner-1")
	r.GET("/api/modules/:module_id", h.GetModule)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/modules/"+id.String(), nil))
	assert.Equal(t, http.StatusOK, w.Code)
	mod := decodeResponse(t, w).Data.(map[string]interface{})["module"].(map[string]interface{})
	assert.Equal(t, "products", mod["slug"])

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/modules/not-a-uuid", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Module not found.", decodeResponse(t, w).Message)
}
