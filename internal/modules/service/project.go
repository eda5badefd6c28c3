package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/sitekit-io/sitekit/internal/config"
	"github.com/sitekit-io/sitekit/internal/modules/model"
	"github.com/sitekit-io/sitekit/internal/modules/repo"
	"github.com/sitekit-io/sitekit/internal/pkg/utils"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ProjectService interface {
	Create(ctx context.Context, ownerID string, in ProjectInput) (*model.Project, error)
	List(ctx context.Context, ownerID string) ([]model.Project, error)
	GetOwned(ctx context.Context, ownerID string, projectID uuid.UUID) (*model.Project, error)
	Update(ctx context.Context, p *model.Project, in ProjectInput) (*model.Project, error)
	Delete(ctx context.Context, projectID uuid.UUID) error
	RegenerateToken(ctx context.Context, p *model.Project) (*model.Project, error)

	ListModules(ctx context.Context, projectID uuid.UUID) ([]model.ProjectModule, error)
	EnableModule(ctx context.Context, projectID uuid.UUID, moduleID uuid.UUID, configuration map[string]interface{}) (*model.ProjectModule, error)
	DisableModule(ctx context.Context, projectID uuid.UUID, moduleID uuid.UUID) error
}

// ProjectInput carries owner edits. A nil field is left untouched on update.
type ProjectInput struct {
	Name        *string
	Description *string
}

type projectService struct {
	cfg      *config.Config
	projects repo.ProjectRepo
	modules  repo.ModuleRepo
	links    repo.ProjectModuleRepo
}

func NewProjectService(cfg *config.Config, projects repo.ProjectRepo, modules repo.ModuleRepo, links repo.ProjectModuleRepo) ProjectService {
	return &projectService{cfg: cfg, projects: projects, modules: modules, links: links}
}

// BaseURL is the public API root a site uses for the given token.
func BaseURL(publicBaseURL string, token string) string {
	return strings.TrimRight(publicBaseURL, "/") + "/api/v1/" + token
}

func (s *projectService) newToken() (token string, baseURL string, err error) {
	token, err = utils.GenerateAPIToken(s.cfg.Root.ProjectTokenPrefix)
	if err != nil {
		return "", "", fmt.Errorf("generate api token: %w", err)
	}
	return token, BaseURL(s.cfg.App.PublicBaseURL, token), nil
}

func (s *projectService) Create(ctx context.Context, ownerID string, in ProjectInput) (*model.Project, error) {
	if in.Name == nil || strings.TrimSpace(*in.Name) == "" {
		return nil, ErrProjectNameRequired
	}

	token, baseURL, err := s.newToken()
	if err != nil {
		return nil, err
	}

	p := &model.Project{
		OwnerID:  ownerID,
		Name:     *in.Name,
		APIToken: token,
		BaseURL:  baseURL,
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if err := s.projects.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *projectService) List(ctx context.Context, ownerID string) ([]model.Project, error) {
	return s.projects.ListByOwner(ctx, ownerID)
}

func (s *projectService) GetOwned(ctx context.Context, ownerID string, projectID uuid.UUID) (*model.Project, error) {
	p, err := s.projects.GetByID(ctx, projectID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrProjectNotFound
	}
	if err != nil {
		return nil, err
	}
	if p.OwnerID != ownerID {
		return nil, ErrNotProjectOwner
	}
	return p, nil
}

func (s *projectService) Update(ctx context.Context, p *model.Project, in ProjectInput) (*model.Project, error) {
	if in.Name != nil && *in.Name != "" {
		p.Name = *in.Name
	}
	if in.Description != nil {
		p.Description = *in.Description
	}
	if err := s.projects.Update(ctx, p); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	return p, nil
}

func (s *projectService) Delete(ctx context.Context, projectID uuid.UUID) error {
	err := s.projects.Delete(ctx, projectID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrProjectNotFound
	}
	return err
}

// RegenerateToken swaps the token in one UPDATE; the old token stops
// resolving as soon as it commits.
func (s *projectService) RegenerateToken(ctx context.Context, p *model.Project) (*model.Project, error) {
	token, baseURL, err := s.newToken()
	if err != nil {
		return nil, err
	}
	if err := s.projects.UpdateToken(ctx, p.ID, token, baseURL); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, err
	}
	p.APIToken = token
	p.BaseURL = baseURL
	return p, nil
}

func (s *projectService) ListModules(ctx context.Context, projectID uuid.UUID) ([]model.ProjectModule, error) {
	links, err := s.links.ListByProject(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if err := s.attachModules(ctx, links); err != nil {
		return nil, err
	}
	return links, nil
}

// attachModules fills ProjectModule.Module from the registry.
func (s *projectService) attachModules(ctx context.Context, links []model.ProjectModule) error {
	ids := make([]uuid.UUID, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.ModuleID)
	}
	modules, err := s.modules.ListByIDs(ctx, ids)
	if err != nil {
		return err
	}
	byID := make(map[uuid.UUID]*model.Module, len(modules))
	for i := range modules {
		byID[modules[i].ID] = &modules[i]
	}
	for i := range links {
		links[i].Module = byID[links[i].ModuleID]
	}
	return nil
}

func (s *projectService) EnableModule(ctx context.Context, projectID uuid.UUID, moduleID uuid.UUID, configuration map[string]interface{}) (*model.ProjectModule, error) {
	m, err := s.modules.GetByID(ctx, moduleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrModuleNotFound
	}
	if err != nil {
		return nil, err
	}

	exists, err := s.links.Exists(ctx, projectID, moduleID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrModuleAlreadyEnabled
	}

	pm := &model.ProjectModule{
		ProjectID:     projectID,
		ModuleID:      moduleID,
		Configuration: datatypes.JSONMap(configuration),
	}
	if err := s.links.Create(ctx, pm); err != nil {
		// lost a race with a concurrent enable
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrModuleAlreadyEnabled
		}
		return nil, err
	}
	pm.Module = m
	return pm, nil
}

func (s *projectService) DisableModule(ctx context.Context, projectID uuid.UUID, moduleID uuid.UUID) error {
	err := s.links.Delete(ctx, projectID, moduleID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrModuleNotAttached
	}
	return err
}
