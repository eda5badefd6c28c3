package repo

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sitekit-io/sitekit/internal/modules/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RecordRepo stores DynamicData documents. Every method is keyed by
// (projectID, moduleID); a nil moduleID addresses admin data only. A record
// id on its own never reaches a row.
type RecordRepo interface {
	List(ctx context.Context, projectID uuid.UUID, moduleID *uuid.UUID) ([]model.DynamicData, error)
	ListByDataType(ctx context.Context, projectID uuid.UUID, dataType string) ([]model.DynamicData, error)
	Get(ctx context.Context, projectID uuid.UUID, moduleID *uuid.UUID, recordID uuid.UUID) (*model.DynamicData, error)
	Create(ctx context.Context, d *model.DynamicData) error
	Replace(ctx context.Context, projectID uuid.UUID, moduleID *uuid.UUID, recordID uuid.UUID, data map[string]any) (*model.DynamicData, error)
	Delete(ctx context.Context, projectID uuid.UUID, moduleID *uuid.UUID, recordID uuid.UUID) error
}

// ErrRecordNotFound is returned for any key that matches no row in scope.
var ErrRecordNotFound = gorm.ErrRecordNotFound

type recordRepo struct{ db *gorm.DB }

func NewRecordRepo(db *gorm.DB) RecordRepo {
	return &recordRepo{db: db}
}

func scope(q *gorm.DB, projectID uuid.UUID, moduleID *uuid.UUID) *gorm.DB {
	q = q.Where("project_id = ?", projectID)
	if moduleID == nil {
		return q.Where("module_id IS NULL")
	}
	return q.Where("module_id = ?", *moduleID)
}

func (r *recordRepo) List(ctx context.Context, projectID uuid.UUID, moduleID *uuid.UUID) ([]model.DynamicData, error) {
	var items []model.DynamicData
	q := scope(r.db.WithContext(ctx), projectID, moduleID)
	return items, q.Order("created_at DESC, id DESC").Find(&items).Error
}

func (r *recordRepo) ListByDataType(ctx context.Context, projectID uuid.UUID, dataType string) ([]model.DynamicData, error) {
	var items []model.DynamicData
	q := scope(r.db.WithContext(ctx), projectID, nil).
		Where(datatypes.JSONQuery("data").Equals(dataType, model.DataTypeKey))
	return items, q.Order("created_at DESC, id DESC").Find(&items).Error
}

func (r *recordRepo) Get(ctx context.Context, projectID uuid.UUID, moduleID *uuid.UUID, recordID uuid.UUID) (*model.DynamicData, error) {
	var d model.DynamicData
	q := scope(r.db.WithContext(ctx), projectID, moduleID).Where("id = ?", recordID)
	if err := q.First(&d).Error; err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *recordRepo) Create(ctx context.Context, d *model.DynamicData) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *recordRepo) Replace(ctx context.Context, projectID uuid.UUID, moduleID *uuid.UUID, recordID uuid.UUID, data map[string]any) (*model.DynamicData, error) {
	if data == nil {
		data = map[string]any{}
	}
	res := scope(r.db.WithContext(ctx).Model(&model.DynamicData{}), projectID, moduleID).
		Where("id = ?", recordID).
		Updates(map[string]any{
			"data":       datatypes.JSONMap(data),
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrRecordNotFound
	}
	return r.Get(ctx, projectID, moduleID, recordID)
}

func (r *recordRepo) Delete(ctx context.Context, projectID uuid.UUID, moduleID *uuid.UUID, recordID uuid.UUID) error {
	res := scope(r.db.WithContext(ctx), projectID, moduleID).
		Where("id = ?", recordID).
		Delete(&model.DynamicData{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	return nil
}
