// file: internals/features/home/menus/model/menu_item_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: menu_items

   Self-referential per menu location ("header", "footer").
   Deleting an item cascades to its submenu.
========================================================= */

type MenuItemModel struct {
	MenuItemID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:menu_item_id" json:"menu_item_id"`

	MenuItemLabel string  `gorm:"type:varchar(100);not null;column:menu_item_label" json:"menu_item_label"`
	MenuItemURL   *string `gorm:"type:text;column:menu_item_url" json:"menu_item_url,omitempty"`

	// Either a free URL or a page link
	MenuItemPageID *uuid.UUID `gorm:"type:uuid;column:menu_item_page_id" json:"menu_item_page_id,omitempty"`

	MenuItemTarget string `gorm:"type:varchar(10);not null;default:'_self';column:menu_item_target" json:"menu_item_target"`

	// Hierarchy (self-reference; nullable)
	MenuItemParentID     *uuid.UUID `gorm:"type:uuid;column:menu_item_parent_id;index" json:"menu_item_parent_id,omitempty"`
	MenuItemDisplayOrder int        `gorm:"not null;default:0;column:menu_item_display_order" json:"menu_item_display_order"`

	MenuItemIconClass *string `gorm:"type:varchar(100);column:menu_item_icon_class" json:"menu_item_icon_class,omitempty"`
	MenuItemLocation  string  `gorm:"type:varchar(20);not null;default:'header';column:menu_item_location;index" json:"menu_item_location"`
	MenuItemIsActive  bool    `gorm:"not null;default:true;column:menu_item_is_active" json:"menu_item_is_active"`

	MenuItemCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:menu_item_created_at" json:"menu_item_created_at"`
	MenuItemUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:menu_item_updated_at" json:"menu_item_updated_at"`
	MenuItemDeletedAt gorm.DeletedAt `gorm:"column:menu_item_deleted_at;index" json:"menu_item_deleted_at,omitempty"`
}

func (MenuItemModel) TableName() string { return "menu_items" }
