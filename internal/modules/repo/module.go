package repo

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sitekit-io/sitekit/internal/modules/model"
	"gorm.io/gorm"
)

type ModuleRepo interface {
	List(ctx context.Context) ([]model.Module, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Module, error)
	GetBySlug(ctx context.Context, slug string) (*model.Module, error)
	ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Module, error)
	// Upsert inserts m or overwrites the row with the same slug, leaving m
	// holding the stored id.
	Upsert(ctx context.Context, m *model.Module) (created bool, err error)
}

type moduleRepo struct{ db *gorm.DB }

func NewModuleRepo(db *gorm.DB) ModuleRepo {
	return &moduleRepo{db: db}
}

func (r *moduleRepo) List(ctx context.Context) ([]model.Module, error) {
	var modules []model.Module
	return modules, r.db.WithContext(ctx).Order("name ASC").Find(&modules).Error
}

func (r *moduleRepo) GetByID(ctx context.Context, id uuid.UUID) (*model.Module, error) {
	var m model.Module
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *moduleRepo) GetBySlug(ctx context.Context, slug string) (*model.Module, error) {
	var m model.Module
	if err := r.db.WithContext(ctx).Where("slug = ?", slug).First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *moduleRepo) ListByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Module, error) {
	var modules []model.Module
	if len(ids) == 0 {
		return modules, nil
	}
	return modules, r.db.WithContext(ctx).Where("id IN ?", ids).Find(&modules).Error
}

func (r *moduleRepo) Upsert(ctx context.Context, m *model.Module) (bool, error) {
	created := false
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing model.Module
		err := tx.Where("slug = ?", m.Slug).First(&existing).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			created = true
			return tx.Create(m).Error
		}
		if err != nil {
			return err
		}

		m.ID = existing.ID
		m.CreatedAt = existing.CreatedAt
		return tx.Model(&existing).
			Select("name", "description", "icon", "schema", "updated_at").
			Updates(m).Error
	})
	return created, err
}
