package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ProjectModule records that a Module is enabled for a Project.
type ProjectModule struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey" json:"id"`
	ProjectID     uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_project_module,priority:1" json:"projectId"`
	ModuleID      uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_project_module,priority:2;index" json:"moduleId"`
	Configuration datatypes.JSONMap `gorm:"type:jsonb" swaggertype:"object" json:"configuration"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Filled by the read-side join, never persisted.
	Module *Module `gorm:"-" json:"module,omitempty"`
}

func (ProjectModule) TableName() string { return "project_modules" }

func (pm *ProjectModule) BeforeCreate(*gorm.DB) error {
	if pm.ID == uuid.Nil {
		pm.ID = uuid.New()
	}
	if pm.Configuration == nil {
		pm.Configuration = datatypes.JSONMap{}
	}
	return nil
}
