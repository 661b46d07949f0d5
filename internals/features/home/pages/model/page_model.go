// file: internals/features/home/pages/model/page_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: pages

   Self-referential (adjacency list). Deleting a page cascades
   to its whole subtree. Auditable: created_by / updated_by.
========================================================= */

type PageModel struct {
	PageID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:page_id" json:"page_id"`

	PageTitle   string  `gorm:"type:varchar(255);not null;column:page_title" json:"page_title"`
	PageSlug    string  `gorm:"type:varchar(255);not null;uniqueIndex;column:page_slug" json:"page_slug"`
	PageContent string  `gorm:"type:text;not null;column:page_content" json:"page_content"`
	PageExcerpt *string `gorm:"type:text;column:page_excerpt" json:"page_excerpt,omitempty"`

	// Hierarchy (self-reference; nullable)
	PageParentID     *uuid.UUID `gorm:"type:uuid;column:page_parent_id;index" json:"page_parent_id,omitempty"`
	PageDisplayOrder int        `gorm:"not null;default:0;column:page_display_order" json:"page_display_order"`

	PageFeaturedImageURL *string `gorm:"type:text;column:page_featured_image_url" json:"page_featured_image_url,omitempty"`
	PageBannerImageURL   *string `gorm:"type:text;column:page_banner_image_url" json:"page_banner_image_url,omitempty"`
	PageMetaTitle        *string `gorm:"type:varchar(255);column:page_meta_title" json:"page_meta_title,omitempty"`
	PageMetaDescription  *string `gorm:"type:text;column:page_meta_description" json:"page_meta_description,omitempty"`

	PageIsPublished bool    `gorm:"not null;default:true;column:page_is_published" json:"page_is_published"`
	PageShowInMenu  bool    `gorm:"not null;default:true;column:page_show_in_menu" json:"page_show_in_menu"`
	PageTemplate    *string `gorm:"type:varchar(100);column:page_template" json:"page_template,omitempty"`

	// Custom layout: either a shared template or a page-local JSON config
	// ({"sections": [...], "theme": {...}}) that overrides it.
	PageLayoutTemplateID *uuid.UUID     `gorm:"type:uuid;column:page_layout_template_id" json:"page_layout_template_id,omitempty"`
	PageLayoutConfig     datatypes.JSON `gorm:"type:jsonb;column:page_layout_config" json:"page_layout_config,omitempty"`
	PageLayoutVersion    int            `gorm:"not null;default:1;column:page_layout_version" json:"page_layout_version"`

	// Audit
	PageCreatedBy *uuid.UUID     `gorm:"type:uuid;column:page_created_by" json:"page_created_by,omitempty"`
	PageUpdatedBy *uuid.UUID     `gorm:"type:uuid;column:page_updated_by" json:"page_updated_by,omitempty"`
	PageCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:page_created_at" json:"page_created_at"`
	PageUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:page_updated_at" json:"page_updated_at"`
	PageDeletedAt gorm.DeletedAt `gorm:"column:page_deleted_at;index" json:"page_deleted_at,omitempty"`
}

func (PageModel) TableName() string { return "pages" }

func (p *PageModel) SetCreatedBy(actor *uuid.UUID) { p.PageCreatedBy = actor }
func (p *PageModel) SetUpdatedBy(actor *uuid.UUID, at time.Time) {
	p.PageUpdatedBy = actor
	p.PageUpdatedAt = at
}
