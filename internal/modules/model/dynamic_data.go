package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// DataTypeKey tags owner-managed records that live outside the module system.
const DataTypeKey = "dataType"

// DynamicData is one tenant-scoped JSON document. A nil ModuleID marks
// admin data keyed only by the DataTypeKey inside Data.
type DynamicData struct {
	ID        uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID uuid.UUID         `gorm:"type:uuid;not null;index:idx_dynamic_data_scope,priority:1" json:"projectId"`
	ModuleID  *uuid.UUID        `gorm:"type:uuid;index:idx_dynamic_data_scope,priority:2" json:"moduleId"`
	Data      datatypes.JSONMap `gorm:"type:jsonb;not null" swaggertype:"object" json:"data"`

	CreatedAt time.Time `gorm:"autoCreateTime;index" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (DynamicData) TableName() string { return "dynamic_data" }

func (d *DynamicData) BeforeCreate(*gorm.DB) error {
	if d.ID == uuid.Nil {
		d.ID = uuid.New()
	}
	if d.Data == nil {
		d.Data = datatypes.JSONMap{}
	}
	return nil
}
