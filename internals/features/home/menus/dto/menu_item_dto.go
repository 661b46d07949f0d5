// file: internals/features/home/menus/dto/menu_item_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "nunchakuclub_backend/internals/features/home/menus/model"
)

type CreateMenuItemRequest struct {
	MenuItemLabel  string     `json:"menu_item_label" validate:"required,max=100"`
	MenuItemURL    *string    `json:"menu_item_url" validate:"omitempty,max=2048"`
	MenuItemPageID *uuid.UUID `json:"menu_item_page_id" validate:"omitempty"`

	MenuItemTarget    *string    `json:"menu_item_target" validate:"omitempty,oneof=_self _blank"`
	MenuItemParentID  *uuid.UUID `json:"menu_item_parent_id" validate:"omitempty"`
	MenuItemIconClass *string    `json:"menu_item_icon_class" validate:"omitempty,max=100"`
	MenuItemLocation  *string    `json:"menu_item_location" validate:"omitempty,oneof=header footer sidebar"`
	MenuItemIsActive  *bool      `json:"menu_item_is_active" validate:"omitempty"`
}

func (r *CreateMenuItemRequest) ToModel() *model.MenuItemModel {
	m := &model.MenuItemModel{
		MenuItemLabel:    strings.TrimSpace(r.MenuItemLabel),
		MenuItemPageID:   r.MenuItemPageID,
		MenuItemTarget:   "_self",
		MenuItemLocation: "header",
		MenuItemIsActive: true,
	}
	if r.MenuItemURL != nil {
		u := strings.TrimSpace(*r.MenuItemURL)
		if u != "" {
			m.MenuItemURL = &u
		}
	}
	if r.MenuItemTarget != nil {
		m.MenuItemTarget = *r.MenuItemTarget
	}
	if r.MenuItemIconClass != nil {
		ic := strings.TrimSpace(*r.MenuItemIconClass)
		if ic != "" {
			m.MenuItemIconClass = &ic
		}
	}
	if r.MenuItemLocation != nil {
		m.MenuItemLocation = *r.MenuItemLocation
	}
	if r.MenuItemIsActive != nil {
		m.MenuItemIsActive = *r.MenuItemIsActive
	}
	return m
}

type UpdateMenuItemRequest struct {
	MenuItemLabel     *string    `json:"menu_item_label" validate:"omitempty,max=100"`
	MenuItemURL       *string    `json:"menu_item_url" validate:"omitempty,max=2048"`
	MenuItemPageID    *uuid.UUID `json:"menu_item_page_id" validate:"omitempty"`
	MenuItemTarget    *string    `json:"menu_item_target" validate:"omitempty,oneof=_self _blank"`
	MenuItemIconClass *string    `json:"menu_item_icon_class" validate:"omitempty,max=100"`
	MenuItemIsActive  *bool      `json:"menu_item_is_active" validate:"omitempty"`
}

func (r *UpdateMenuItemRequest) Apply(m *model.MenuItemModel) {
	if r.MenuItemLabel != nil {
		m.MenuItemLabel = strings.TrimSpace(*r.MenuItemLabel)
	}
	if r.MenuItemURL != nil {
		u := strings.TrimSpace(*r.MenuItemURL)
		if u == "" {
			m.MenuItemURL = nil
		} else {
			m.MenuItemURL = &u
		}
	}
	if r.MenuItemPageID != nil {
		m.MenuItemPageID = r.MenuItemPageID
	}
	if r.MenuItemTarget != nil {
		m.MenuItemTarget = *r.MenuItemTarget
	}
	if r.MenuItemIconClass != nil {
		ic := strings.TrimSpace(*r.MenuItemIconClass)
		if ic == "" {
			m.MenuItemIconClass = nil
		} else {
			m.MenuItemIconClass = &ic
		}
	}
	if r.MenuItemIsActive != nil {
		m.MenuItemIsActive = *r.MenuItemIsActive
	}
}
