// file: internals/features/home/pages/dto/page_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	model "nunchakuclub_backend/internals/features/home/pages/model"
)

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

/* =========================================================
   CREATE
========================================================= */

type CreatePageRequest struct {
	PageTitle   string  `json:"page_title" validate:"required,max=255"`
	PageSlug    *string `json:"page_slug" validate:"omitempty,max=255"`
	PageContent string  `json:"page_content" validate:"required"`
	PageExcerpt *string `json:"page_excerpt" validate:"omitempty"`

	PageParentID *uuid.UUID `json:"page_parent_id" validate:"omitempty"`

	PageFeaturedImageURL *string `json:"page_featured_image_url" validate:"omitempty,url"`
	PageBannerImageURL   *string `json:"page_banner_image_url" validate:"omitempty,url"`
	PageMetaTitle        *string `json:"page_meta_title" validate:"omitempty,max=255"`
	PageMetaDescription  *string `json:"page_meta_description" validate:"omitempty"`

	PageIsPublished *bool   `json:"page_is_published" validate:"omitempty"`
	PageShowInMenu  *bool   `json:"page_show_in_menu" validate:"omitempty"`
	PageTemplate    *string `json:"page_template" validate:"omitempty,max=100"`

	PageLayoutTemplateID *uuid.UUID     `json:"page_layout_template_id" validate:"omitempty"`
	PageLayoutConfig     datatypes.JSON `json:"page_layout_config" validate:"omitempty"`
}

func (r *CreatePageRequest) ToModel() *model.PageModel {
	isPublished, showInMenu := true, true
	if r.PageIsPublished != nil {
		isPublished = *r.PageIsPublished
	}
	if r.PageShowInMenu != nil {
		showInMenu = *r.PageShowInMenu
	}
	return &model.PageModel{
		PageTitle:            strings.TrimSpace(r.PageTitle),
		PageContent:          r.PageContent,
		PageExcerpt:          trimPtr(r.PageExcerpt),
		PageFeaturedImageURL: trimPtr(r.PageFeaturedImageURL),
		PageBannerImageURL:   trimPtr(r.PageBannerImageURL),
		PageMetaTitle:        trimPtr(r.PageMetaTitle),
		PageMetaDescription:  trimPtr(r.PageMetaDescription),
		PageIsPublished:      isPublished,
		PageShowInMenu:       showInMenu,
		PageTemplate:         trimPtr(r.PageTemplate),
		PageLayoutTemplateID: r.PageLayoutTemplateID,
		PageLayoutConfig:     r.PageLayoutConfig,
		PageLayoutVersion:    1,
	}
}

/* =========================================================
   UPDATE
========================================================= */

type UpdatePageRequest struct {
	PageTitle   *string `json:"page_title" validate:"omitempty,max=255"`
	PageContent *string `json:"page_content" validate:"omitempty"`
	PageExcerpt *string `json:"page_excerpt" validate:"omitempty"`

	PageFeaturedImageURL *string `json:"page_featured_image_url" validate:"omitempty,url"`
	PageBannerImageURL   *string `json:"page_banner_image_url" validate:"omitempty,url"`
	PageMetaTitle        *string `json:"page_meta_title" validate:"omitempty,max=255"`
	PageMetaDescription  *string `json:"page_meta_description" validate:"omitempty"`

	PageIsPublished *bool   `json:"page_is_published" validate:"omitempty"`
	PageShowInMenu  *bool   `json:"page_show_in_menu" validate:"omitempty"`
	PageTemplate    *string `json:"page_template" validate:"omitempty,max=100"`
}

func (r *UpdatePageRequest) Apply(m *model.PageModel) {
	if r.PageTitle != nil {
		m.PageTitle = strings.TrimSpace(*r.PageTitle)
	}
	if r.PageContent != nil {
		m.PageContent = *r.PageContent
	}
	if r.PageExcerpt != nil {
		m.PageExcerpt = trimPtr(r.PageExcerpt)
	}
	if r.PageFeaturedImageURL != nil {
		m.PageFeaturedImageURL = trimPtr(r.PageFeaturedImageURL)
	}
	if r.PageBannerImageURL != nil {
		m.PageBannerImageURL = trimPtr(r.PageBannerImageURL)
	}
	if r.PageMetaTitle != nil {
		m.PageMetaTitle = trimPtr(r.PageMetaTitle)
	}
	if r.PageMetaDescription != nil {
		m.PageMetaDescription = trimPtr(r.PageMetaDescription)
	}
	if r.PageIsPublished != nil {
		m.PageIsPublished = *r.PageIsPublished
	}
	if r.PageShowInMenu != nil {
		m.PageShowInMenu = *r.PageShowInMenu
	}
	if r.PageTemplate != nil {
		m.PageTemplate = trimPtr(r.PageTemplate)
	}
}

/* =========================================================
   LAYOUT
========================================================= */

// SetPageLayoutRequest swaps the page onto a shared template and/or a
// page-local config override. Every apply bumps the layout version.
type SetPageLayoutRequest struct {
	PageLayoutTemplateID *uuid.UUID     `json:"page_layout_template_id" validate:"omitempty"`
	PageLayoutConfig     datatypes.JSON `json:"page_layout_config" validate:"omitempty"`
}
