// file: internals/features/home/pages/model/layout_template_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: layout_templates

   Reusable page layout; pages reference a template or override
   it with a local config.
========================================================= */

type LayoutTemplateModel struct {
	LayoutTemplateID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:layout_template_id" json:"layout_template_id"`

	LayoutTemplateName        string  `gorm:"type:varchar(100);not null;column:layout_template_name" json:"layout_template_name"`
	LayoutTemplateSlug        string  `gorm:"type:varchar(120);not null;uniqueIndex;column:layout_template_slug" json:"layout_template_slug"`
	LayoutTemplateDescription *string `gorm:"type:text;column:layout_template_description" json:"layout_template_description,omitempty"`

	LayoutTemplatePreviewImageURL *string `gorm:"type:text;column:layout_template_preview_image_url" json:"layout_template_preview_image_url,omitempty"`

	// {"sections": [...], "theme": {...}}
	LayoutTemplateConfig datatypes.JSON `gorm:"type:jsonb;not null;default:'{}';column:layout_template_config" json:"layout_template_config"`

	LayoutTemplateCategory   *string `gorm:"type:varchar(50);column:layout_template_category" json:"layout_template_category,omitempty"`
	LayoutTemplateIsActive   bool    `gorm:"not null;default:true;column:layout_template_is_active" json:"layout_template_is_active"`
	LayoutTemplateIsDefault  bool    `gorm:"not null;default:false;column:layout_template_is_default" json:"layout_template_is_default"`
	LayoutTemplateUsageCount int     `gorm:"not null;default:0;column:layout_template_usage_count" json:"layout_template_usage_count"`

	// Audit
	LayoutTemplateCreatedBy *uuid.UUID     `gorm:"type:uuid;column:layout_template_created_by" json:"layout_template_created_by,omitempty"`
	LayoutTemplateUpdatedBy *uuid.UUID     `gorm:"type:uuid;column:layout_template_updated_by" json:"layout_template_updated_by,omitempty"`
	LayoutTemplateCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:layout_template_created_at" json:"layout_template_created_at"`
	LayoutTemplateUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:layout_template_updated_at" json:"layout_template_updated_at"`
	LayoutTemplateDeletedAt gorm.DeletedAt `gorm:"column:layout_template_deleted_at;index" json:"layout_template_deleted_at,omitempty"`
}

func (LayoutTemplateModel) TableName() string { return "layout_templates" }

func (t *LayoutTemplateModel) SetCreatedBy(actor *uuid.UUID) { t.LayoutTemplateCreatedBy = actor }
func (t *LayoutTemplateModel) SetUpdatedBy(actor *uuid.UUID, at time.Time) {
	t.LayoutTemplateUpdatedBy = actor
	t.LayoutTemplateUpdatedAt = at
}

/* =========================================================
   MODEL: section_types

   Catalog of layout section components the admin can place on
   a page; config_schema drives the admin form.
========================================================= */

type SectionTypeModel struct {
	SectionTypeID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:section_type_id" json:"section_type_id"`

	SectionTypeName string `gorm:"type:varchar(100);not null;column:section_type_name" json:"section_type_name"`
	// Matches the frontend component ("hero", "blog-grid", ...)
	SectionTypeKey string `gorm:"type:varchar(60);not null;uniqueIndex;column:section_type_key" json:"section_type_key"`

	SectionTypeDescription     *string `gorm:"type:text;column:section_type_description" json:"section_type_description,omitempty"`
	SectionTypeIcon            *string `gorm:"type:varchar(100);column:section_type_icon" json:"section_type_icon,omitempty"`
	SectionTypeCategory        *string `gorm:"type:varchar(50);column:section_type_category" json:"section_type_category,omitempty"`
	SectionTypePreviewImageURL *string `gorm:"type:text;column:section_type_preview_image_url" json:"section_type_preview_image_url,omitempty"`

	SectionTypeConfigSchema  datatypes.JSON `gorm:"type:jsonb;not null;default:'{}';column:section_type_config_schema" json:"section_type_config_schema"`
	SectionTypeDefaultConfig datatypes.JSON `gorm:"type:jsonb;not null;default:'{}';column:section_type_default_config" json:"section_type_default_config"`

	SectionTypeIsActive     bool `gorm:"not null;default:true;column:section_type_is_active" json:"section_type_is_active"`
	SectionTypeUsageCount   int  `gorm:"not null;default:0;column:section_type_usage_count" json:"section_type_usage_count"`
	SectionTypeDisplayOrder int  `gorm:"not null;default:0;column:section_type_display_order" json:"section_type_display_order"`

	// Audit
	SectionTypeCreatedBy *uuid.UUID     `gorm:"type:uuid;column:section_type_created_by" json:"section_type_created_by,omitempty"`
	SectionTypeUpdatedBy *uuid.UUID     `gorm:"type:uuid;column:section_type_updated_by" json:"section_type_updated_by,omitempty"`
	SectionTypeCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:section_type_created_at" json:"section_type_created_at"`
	SectionTypeUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:section_type_updated_at" json:"section_type_updated_at"`
	SectionTypeDeletedAt gorm.DeletedAt `gorm:"column:section_type_deleted_at;index" json:"section_type_deleted_at,omitempty"`
}

func (SectionTypeModel) TableName() string { return "section_types" }

func (t *SectionTypeModel) SetCreatedBy(actor *uuid.UUID) { t.SectionTypeCreatedBy = actor }
func (t *SectionTypeModel) SetUpdatedBy(actor *uuid.UUID, at time.Time) {
	t.SectionTypeUpdatedBy = actor
	t.SectionTypeUpdatedAt = at
}
