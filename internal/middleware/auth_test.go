package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/sitekit-io/sitekit/internal/config"
	"github.com/sitekit-io/sitekit/internal/modules/model"
	"github.com/sitekit-io/sitekit/internal/modules/serializer"
	"github.com/sitekit-io/sitekit/internal/modules/service"
)

type MockTenantGate struct {
	mock.Mock
}

func (m *MockTenantGate) ResolveProjectByToken(ctx context.Context, token string) (*model.Project, error) {
	args := m.Called(ctx, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Project), args.Error(1)
}

func (m *MockTenantGate) ResolveModuleBySlug(ctx context.Context, slug string) (*model.Module, error) {
	args := m.Called(ctx, slug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Module), args.Error(1)
}

func (m *MockTenantGate) IsModuleEnabled(ctx context.Context, projectID uuid.UUID, moduleID uuid.UUID) (bool, error) {
	args := m.Called(ctx, projectID, moduleID)
	return args.Bool(0), args.Error(1)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) serializer.Response {
	t.Helper()
	var res serializer.Response
	require.NoError(t, sonic.Unmarshal(w.Body.Bytes(), &res))
	return res
}

func TestProjectToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	project := &model.Project{ID: uuid.New(), Name: "Shop"}

	gate := &MockTenantGate{}
	gate.On("ResolveProjectByToken", mock.Anything, "good").Return(project, nil)
	gate.On("ResolveProjectByToken", mock.Anything, "bad").Return(nil, service.ErrInvalidToken)

	r := gin.New()
	r.GET("/api/v1/:project_token", ProjectToken(gate), func(c *gin.Context) {
		p := c.MustGet(CtxProject).(*model.Project)
		c.JSON(http.StatusOK, serializer.OK("", p.Name))
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/good", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "Shop", decode(t, w).Data)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/bad", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	res := decode(t, w)
	assert.False(t, res.Success)
	assert.Equal(t, "Invalid API token.", res.Message)
}

func signHS256(t *testing.T, secret string, claims jwt.MapClaims) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func TestOwnerAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.Auth.JWTSecret = "s3cret"

	r := gin.New()
	r.GET("/me", OwnerAuth(cfg), func(c *gin.Context) {
		c.JSON(http.StatusOK, serializer.OK("", c.GetString(CtxUserID)))
	})

	tests := []struct {
		name     string
		header   string
		wantCode int
		wantUser string
		wantMsg  string
	}{
		{
			name:     "userId claim",
			header:   "Bearer " + signHS256(t, "s3cret", jwt.MapClaims{"userId": "u-1", "exp": time.Now().Add(time.Hour).Unix()}),
			wantCode: http.StatusOK,
			wantUser: "u-1",
		},
		{
			name:     "sub claim",
			header:   "Bearer " + signHS256(t, "s3cret", jwt.MapClaims{"sub": "u-2"}),
			wantCode: http.StatusOK,
			wantUser: "u-2",
		},
		{
			name:     "missing header",
			wantCode: http.StatusUnauthorized,
			wantMsg:  "Access denied. No token provided.",
		},
		{
			name:     "wrong secret",
			header:   "Bearer " + signHS256(t, "other", jwt.MapClaims{"userId": "u-1"}),
			wantCode: http.StatusUnauthorized,
			wantMsg:  "Invalid token.",
		},
		{
			name:     "expired",
			header:   "Bearer " + signHS256(t, "s3cret", jwt.MapClaims{"userId": "u-1", "exp": time.Now().Add(-time.Hour).Unix()}),
			wantCode: http.StatusUnauthorized,
			wantMsg:  "Token expired.",
		},
		{
			name:     "no subject",
			header:   "Bearer " + signHS256(t, "s3cret", jwt.MapClaims{"role": "admin"}),
			wantCode: http.StatusUnauthorized,
			wantMsg:  "Invalid token.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			assert.Equal(t, tt.wantCode, w.Code)
			res := decode(t, w)
			if tt.wantUser != "" {
				assert.Equal(t, tt.wantUser, res.Data)
			}
			if tt.wantMsg != "" {
				assert.Equal(t, tt.wantMsg, res.Message)
			}
		})
	}
}
