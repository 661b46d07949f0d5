// file: internals/features/home/categories/model/category_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: categories

   Self-referential (adjacency list). Hierarchy invariants are
   enforced by helpers/tree, never by navigation properties.
========================================================= */

type CategoryModel struct {
	CategoryID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:category_id" json:"category_id"`

	CategoryName        string  `gorm:"type:varchar(100);not null;column:category_name" json:"category_name"`
	CategorySlug        string  `gorm:"type:varchar(120);not null;uniqueIndex;column:category_slug" json:"category_slug"`
	CategoryDescription *string `gorm:"type:text;column:category_description" json:"category_description,omitempty"`

	// Hierarchy (self-reference; nullable)
	CategoryParentID     *uuid.UUID `gorm:"type:uuid;column:category_parent_id;index" json:"category_parent_id,omitempty"`
	CategoryDisplayOrder int        `gorm:"not null;default:0;column:category_display_order" json:"category_display_order"`

	CategoryIsActive bool `gorm:"not null;default:true;column:category_is_active" json:"category_is_active"`

	CategoryCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:category_created_at" json:"category_created_at"`
	CategoryUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:category_updated_at" json:"category_updated_at"`
	CategoryDeletedAt gorm.DeletedAt `gorm:"column:category_deleted_at;index" json:"category_deleted_at,omitempty"`
}

func (CategoryModel) TableName() string { return "categories" }
