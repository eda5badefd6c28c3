package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sitekit-io/sitekit/internal/modules/model"
	"github.com/sitekit-io/sitekit/internal/modules/repo"
	"gorm.io/gorm"
)

// TenantGate turns the public path segments into a project and a module.
// It only reads.
type TenantGate interface {
	ResolveProjectByToken(ctx context.Context, token string) (*model.Project, error)
	ResolveModuleBySlug(ctx context.Context, slug string) (*model.Module, error)
	IsModuleEnabled(ctx context.Context, projectID uuid.UUID, moduleID uuid.UUID) (bool, error)
}

type tenantGate struct {
	projects repo.ProjectRepo
	modules  repo.ModuleRepo
	links    repo.ProjectModuleRepo
}

func NewTenantGate(projects repo.ProjectRepo, modules repo.ModuleRepo, links repo.ProjectModuleRepo) TenantGate {
	return &tenantGate{projects: projects, modules: modules, links: links}
}

func (g *tenantGate) ResolveProjectByToken(ctx context.Context, token string) (*model.Project, error) {
	if token == "" {
		return nil, ErrInvalidToken
	}
	p, err := g.projects.GetByToken(ctx, token)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrInvalidToken
	}
	if err != nil {
		return nil, fmt.Errorf("resolve project: %w", err)
	}
	return p, nil
}

func (g *tenantGate) ResolveModuleBySlug(ctx context.Context, slug string) (*model.Module, error) {
	if slug == "" {
		return nil, ErrModuleNotFound
	}
	m, err := g.modules.GetBySlug(ctx, slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrModuleNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolve module: %w", err)
	}
	return m, nil
}

func (g *tenantGate) IsModuleEnabled(ctx context.Context, projectID uuid.UUID, moduleID uuid.UUID) (bool, error) {
	return g.links.Exists(ctx, projectID, moduleID)
}
