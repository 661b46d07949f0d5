// file: internals/features/home/categories/dto/category_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "nunchakuclub_backend/internals/features/home/categories/model"
)

/* =========================================================
   CREATE
========================================================= */

type CreateCategoryRequest struct {
	CategoryName        string     `json:"category_name" validate:"required,max=100"`
	CategorySlug        *string    `json:"category_slug" validate:"omitempty,max=120"`
	CategoryDescription *string    `json:"category_description" validate:"omitempty"`
	CategoryParentID    *uuid.UUID `json:"category_parent_id" validate:"omitempty"`
	CategoryIsActive    *bool      `json:"category_is_active" validate:"omitempty"`
}

func (r *CreateCategoryRequest) ToModel() *model.CategoryModel {
	isActive := true
	if r.CategoryIsActive != nil {
		isActive = *r.CategoryIsActive
	}
	m := &model.CategoryModel{
		CategoryName:     strings.TrimSpace(r.CategoryName),
		CategoryIsActive: isActive,
	}
	if r.CategoryDescription != nil {
		d := strings.TrimSpace(*r.CategoryDescription)
		if d != "" {
			m.CategoryDescription = &d
		}
	}
	return m
}

/* =========================================================
   UPDATE
========================================================= */

type UpdateCategoryRequest struct {
	CategoryName        *string `json:"category_name" validate:"omitempty,max=100"`
	CategoryDescription *string `json:"category_description" validate:"omitempty"`
	CategoryIsActive    *bool   `json:"category_is_active" validate:"omitempty"`
}

func (r *UpdateCategoryRequest) Apply(m *model.CategoryModel) {
	if r.CategoryName != nil {
		m.CategoryName = strings.TrimSpace(*r.CategoryName)
	}
	if r.CategoryDescription != nil {
		d := strings.TrimSpace(*r.CategoryDescription)
		if d == "" {
			m.CategoryDescription = nil
		} else {
			m.CategoryDescription = &d
		}
	}
	if r.CategoryIsActive != nil {
		m.CategoryIsActive = *r.CategoryIsActive
	}
}
