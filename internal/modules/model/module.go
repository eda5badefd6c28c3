package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sitekit-io/sitekit/internal/pkg/schema"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Module is a global, reusable record schema such as "products" or "blog".
type Module struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name        string    `gorm:"type:varchar(255);uniqueIndex;not null" json:"name"`
	Slug        string    `gorm:"type:varchar(128);uniqueIndex;not null" json:"slug"`
	Description string    `gorm:"type:text;not null" json:"description"`
	Icon        string    `gorm:"type:varchar(64);not null;default:'Box'" json:"icon"`

	// json rather than jsonb keeps the declared field order
	Schema datatypes.JSONType[schema.Schema] `gorm:"type:json;not null" swaggertype:"object" json:"schema"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`

	// Module <-> ProjectModule
	ProjectModules []ProjectModule `gorm:"constraint:OnDelete:CASCADE,OnUpdate:CASCADE;" json:"-"`

	// Module <-> DynamicData
	Records []DynamicData `gorm:"constraint:OnDelete:SET NULL,OnUpdate:CASCADE;" json:"-"`
}

func (Module) TableName() string { return "modules" }

func (m *Module) BeforeCreate(*gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	m.Slug = strings.ToLower(strings.TrimSpace(m.Slug))
	if m.Icon == "" {
		m.Icon = "Box"
	}
	return nil
}

// Fields returns the module's schema.
func (m *Module) Fields() schema.Schema {
	return m.Schema.Data()
}
