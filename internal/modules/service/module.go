package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sitekit-io/sitekit/internal/modules/model"
	"github.com/sitekit-io/sitekit/internal/modules/repo"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ModuleService is the schema registry.
type ModuleService interface {
	List(ctx context.Context) ([]model.Module, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Module, error)
	GetBySlug(ctx context.Context, slug string) (*model.Module, error)
	Seed(ctx context.Context, defs []ModuleDefinition) (*SeedResult, error)
}

type SeedResult struct {
	Created []string `json:"created"`
	Updated []string `json:"updated"`
}

type moduleService struct {
	r   repo.ModuleRepo
	log *zap.Logger
}

func NewModuleService(r repo.ModuleRepo, log *zap.Logger) ModuleService {
	return &moduleService{r: r, log: log}
}

func (s *moduleService) List(ctx context.Context) ([]model.Module, error) {
	return s.r.List(ctx)
}

func (s *moduleService) GetByID(ctx context.Context, id uuid.UUID) (*model.Module, error) {
	m, err := s.r.GetByID(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrModuleNotFound
	}
	return m, err
}

func (s *moduleService) GetBySlug(ctx context.Context, slug string) (*model.Module, error) {
	m, err := s.r.GetBySlug(ctx, slug)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrModuleNotFound
	}
	return m, err
}

// Seed upserts defs by slug. All definitions are checked before any is written.
func (s *moduleService) Seed(ctx context.Context, defs []ModuleDefinition) (*SeedResult, error) {
	for _, d := range defs {
		if d.Slug == "" || d.Name == "" {
			return nil, fmt.Errorf("module definition %q: name and slug are required", d.Slug)
		}
		if err := d.Schema.Check(); err != nil {
			return nil, fmt.Errorf("module %s: %w", d.Slug, err)
		}
	}

	res := &SeedResult{Created: []string{}, Updated: []string{}}
	for _, d := range defs {
		m := &model.Module{
			Name:        d.Name,
			Slug:        d.Slug,
			Description: d.Description,
			Icon:        d.Icon,
			Schema:      datatypes.NewJSONType(d.Schema),
		}
		created, err := s.r.Upsert(ctx, m)
		if err != nil {
			return nil, fmt.Errorf("seed module %s: %w", d.Slug, err)
		}
		if created {
			res.Created = append(res.Created, m.Slug)
		} else {
			res.Updated = append(res.Updated, m.Slug)
		}
	}

	s.log.Sugar().Infow("module registry seeded", "created", res.Created, "updated", res.Updated)
	return res, nil
}
