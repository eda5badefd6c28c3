package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/sitekit-io/sitekit/internal/modules/model"
	"github.com/sitekit-io/sitekit/internal/modules/repo"
	"github.com/sitekit-io/sitekit/internal/pkg/schema"
	"go.uber.org/zap"
	"gorm.io/datatypes"
)

// DynamicService serves module records to a project resolved from its public
// token. Every call is scoped to that project and to the module named by slug.
type DynamicService interface {
	List(ctx context.Context, p *model.Project, slug string) ([]model.DynamicData, error)
	Create(ctx context.Context, p *model.Project, slug string, payload map[string]any) (*model.DynamicData, error)
	Get(ctx context.Context, p *model.Project, slug string, recordID string) (*model.DynamicData, error)
	Replace(ctx context.Context, p *model.Project, slug string, recordID string, payload map[string]any) (*model.DynamicData, error)
	Delete(ctx context.Context, p *model.Project, slug string, recordID string) error
	Manifest(ctx context.Context, p *model.Project) (*SiteManifest, error)
}

type SiteManifest struct {
	Name     string   `json:"name"`
	BaseURL  string   `json:"baseUrl"`
	Modules  []string `json:"modules"`
	Revision int64    `json:"revision"`
}

type dynamicService struct {
	gate    TenantGate
	records repo.RecordRepo
	links   repo.ProjectModuleRepo
	modules repo.ModuleRepo
	notify  *notifier
}

func NewDynamicService(
	gate TenantGate,
	records repo.RecordRepo,
	links repo.ProjectModuleRepo,
	modules repo.ModuleRepo,
	pub EventPublisher,
	revs RevisionCounter,
	log *zap.Logger,
) DynamicService {
	return &dynamicService{
		gate:    gate,
		records: records,
		links:   links,
		modules: modules,
		notify:  newNotifier(pub, revs, log),
	}
}

func (s *dynamicService) enabledModule(ctx context.Context, p *model.Project, slug string) (*model.Module, error) {
	m, err := s.gate.ResolveModuleBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	ok, err := s.gate.IsModuleEnabled(ctx, p.ID, m.ID)
	if err != nil {
		return nil, fmt.Errorf("check module enablement: %w", err)
	}
	if !ok {
		return nil, ErrModuleNotEnabled
	}
	return m, nil
}

// parseRecordID maps ids that cannot address a record to not-found.
func parseRecordID(raw string) (uuid.UUID, error) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, ErrRecordNotFound
	}
	return id, nil
}

func notFound(err error) error {
	if errors.Is(err, repo.ErrRecordNotFound) {
		return ErrRecordNotFound
	}
	return err
}

func validate(payload map[string]any, fields schema.Schema) error {
	res := schema.Validate(payload, fields)
	if !res.Valid {
		return &ValidationError{Errors: res.Errors}
	}
	return nil
}

func (s *dynamicService) List(ctx context.Context, p *model.Project, slug string) ([]model.DynamicData, error) {
	m, err := s.enabledModule(ctx, p, slug)
	if err != nil {
		return nil, err
	}
	return s.records.List(ctx, p.ID, &m.ID)
}

func (s *dynamicService) Create(ctx context.Context, p *model.Project, slug string, payload map[string]any) (*model.DynamicData, error) {
	m, err := s.enabledModule(ctx, p, slug)
	if err != nil {
		return nil, err
	}
	if payload == nil {
		payload = map[string]any{}
	}
	if err := validate(payload, m.Fields()); err != nil {
		return nil, err
	}

	d := &model.DynamicData{
		ProjectID: p.ID,
		ModuleID:  &m.ID,
		Data:      datatypes.JSONMap(payload),
	}
	if err := s.records.Create(ctx, d); err != nil {
		return nil, err
	}

	s.notify.recordChanged(ctx, RecordEvent{
		Type: EventRecordCreated, ProjectID: p.ID, ModuleID: &m.ID, ModuleSlug: m.Slug,
		RecordID: d.ID, Data: d.Data, At: d.CreatedAt,
	})
	return d, nil
}

func (s *dynamicService) Get(ctx context.Context, p *model.Project, slug string, recordID string) (*model.DynamicData, error) {
	m, err := s.gate.ResolveModuleBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	id, err := parseRecordID(recordID)
	if err != nil {
		return nil, err
	}
	d, err := s.records.Get(ctx, p.ID, &m.ID, id)
	return d, notFound(err)
}

func (s *dynamicService) Replace(ctx context.Context, p *model.Project, slug string, recordID string, payload map[string]any) (*model.DynamicData, error) {
	m, err := s.gate.ResolveModuleBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if payload == nil {
		payload = map[string]any{}
	}
	if err := validate(payload, m.Fields()); err != nil {
		return nil, err
	}
	id, err := parseRecordID(recordID)
	if err != nil {
		return nil, err
	}

	d, err := s.records.Replace(ctx, p.ID, &m.ID, id, payload)
	if err != nil {
		return nil, notFound(err)
	}

	s.notify.recordChanged(ctx, RecordEvent{
		Type: EventRecordUpdated, ProjectID: p.ID, ModuleID: &m.ID, ModuleSlug: m.Slug,
		RecordID: d.ID, Data: d.Data, At: d.UpdatedAt,
	})
	return d, nil
}

func (s *dynamicService) Delete(ctx context.Context, p *model.Project, slug string, recordID string) error {
	m, err := s.gate.ResolveModuleBySlug(ctx, slug)
	if err != nil {
		return err
	}
	id, err := parseRecordID(recordID)
	if err != nil {
		return err
	}
	if err := s.records.Delete(ctx, p.ID, &m.ID, id); err != nil {
		return notFound(err)
	}

	s.notify.recordChanged(ctx, RecordEvent{
		Type: EventRecordDeleted, ProjectID: p.ID, ModuleID: &m.ID, ModuleSlug: m.Slug, RecordID: id,
	})
	return nil
}

func (s *dynamicService) Manifest(ctx context.Context, p *model.Project) (*SiteManifest, error) {
	links, err := s.links.ListByProject(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	ids := make([]uuid.UUID, 0, len(links))
	for _, l := range links {
		ids = append(ids, l.ModuleID)
	}
	modules, err := s.modules.ListByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	slugs := make(map[uuid.UUID]string, len(modules))
	for _, m := range modules {
		slugs[m.ID] = m.Slug
	}
	out := &SiteManifest{
		Name:     p.Name,
		BaseURL:  p.BaseURL,
		Modules:  make([]string, 0, len(links)),
		Revision: s.notify.revision(ctx, p.ID),
	}
	for _, l := range links {
		if slug, ok := slugs[l.ModuleID]; ok {
			out.Modules = append(out.Modules, slug)
		}
	}
	return out, nil
}
