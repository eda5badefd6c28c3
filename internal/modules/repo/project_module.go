package repo

import (
	"context"

	"github.com/google/uuid"
	"github.com/sitekit-io/sitekit/internal/modules/model"
	"gorm.io/gorm"
)

type ProjectModuleRepo interface {
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.ProjectModule, error)
	Exists(ctx context.Context, projectID uuid.UUID, moduleID uuid.UUID) (bool, error)
	Create(ctx context.Context, pm *model.ProjectModule) error
	Delete(ctx context.Context, projectID uuid.UUID, moduleID uuid.UUID) error
}

type projectModuleRepo struct{ db *gorm.DB }

func NewProjectModuleRepo(db *gorm.DB) ProjectModuleRepo {
	return &projectModuleRepo{db: db}
}

func (r *projectModuleRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]model.ProjectModule, error) {
	var items []model.ProjectModule
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("created_at ASC").
		Find(&items).Error
	return items, err
}

func (r *projectModuleRepo) Exists(ctx context.Context, projectID uuid.UUID, moduleID uuid.UUID) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).Model(&model.ProjectModule{}).
		Where("project_id = ? AND module_id = ?", projectID, moduleID).
		Count(&n).Error
	return n > 0, err
}

func (r *projectModuleRepo) Create(ctx context.Context, pm *model.ProjectModule) error {
	return r.db.WithContext(ctx).Create(pm).Error
}

func (r *projectModuleRepo) Delete(ctx context.Context, projectID uuid.UUID, moduleID uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("project_id = ? AND module_id = ?", projectID, moduleID).
		Delete(&model.ProjectModule{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
