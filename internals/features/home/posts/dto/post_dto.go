// file: internals/features/home/posts/dto/post_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "nunchakuclub_backend/internals/features/home/posts/model"
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

type CreatePostRequest struct {
	PostTitle   string  `json:"post_title" validate:"required,max=255"`
	PostSlug    *string `json:"post_slug" validate:"omitempty,max=255"`
	PostExcerpt *string `json:"post_excerpt" validate:"omitempty"`
	PostContent string  `json:"post_content" validate:"required"`

	PostFeaturedImageURL *string `json:"post_featured_image_url" validate:"omitempty,url"`
	PostThumbnailURL     *string `json:"post_thumbnail_url" validate:"omitempty,url"`
	PostMetaTitle        *string `json:"post_meta_title" validate:"omitempty,max=255"`
	PostMetaDescription  *string `json:"post_meta_description" validate:"omitempty"`
	PostMetaKeywords     *string `json:"post_meta_keywords" validate:"omitempty"`

	PostIsFeatured *bool      `json:"post_is_featured" validate:"omitempty"`
	PostAuthorID   uuid.UUID  `json:"post_author_id" validate:"required"`
	PostCategoryID *uuid.UUID `json:"post_category_id" validate:"omitempty"`

	PostTagNames []string `json:"post_tag_names" validate:"omitempty,dive,max=60"`
}

func (r *CreatePostRequest) ToModel() *model.PostModel {
	m := &model.PostModel{
		PostTitle:            strings.TrimSpace(r.PostTitle),
		PostExcerpt:          trimPtr(r.PostExcerpt),
		PostContent:          r.PostContent,
		PostFeaturedImageURL: trimPtr(r.PostFeaturedImageURL),
		PostThumbnailURL:     trimPtr(r.PostThumbnailURL),
		PostMetaTitle:        trimPtr(r.PostMetaTitle),
		PostMetaDescription:  trimPtr(r.PostMetaDescription),
		PostMetaKeywords:     trimPtr(r.PostMetaKeywords),
		PostStatus:           model.PostStatusDraft,
		PostAuthorID:         r.PostAuthorID,
		PostCategoryID:       r.PostCategoryID,
	}
	if r.PostIsFeatured != nil {
		m.PostIsFeatured = *r.PostIsFeatured
	}
	return m
}

/* =========================================================
   UPDATE
========================================================= */

type UpdatePostRequest struct {
	PostTitle   *string `json:"post_title" validate:"omitempty,max=255"`
	PostExcerpt *string `json:"post_excerpt" validate:"omitempty"`
	PostContent *string `json:"post_content" validate:"omitempty"`

	PostFeaturedImageURL *string `json:"post_featured_image_url" validate:"omitempty,url"`
	PostThumbnailURL     *string `json:"post_thumbnail_url" validate:"omitempty,url"`
	PostMetaTitle        *string `json:"post_meta_title" validate:"omitempty,max=255"`
	PostMetaDescription  *string `json:"post_meta_description" validate:"omitempty"`
	PostMetaKeywords     *string `json:"post_meta_keywords" validate:"omitempty"`

	PostIsFeatured *bool      `json:"post_is_featured" validate:"omitempty"`
	PostCategoryID *uuid.UUID `json:"post_category_id" validate:"omitempty"`
	PostAdminNotes *string    `json:"post_admin_notes" validate:"omitempty"`
}

func (r *UpdatePostRequest) Apply(m *model.PostModel) {
	if r.PostTitle != nil {
		m.PostTitle = strings.TrimSpace(*r.PostTitle)
	}
	if r.PostExcerpt != nil {
		m.PostExcerpt = trimPtr(r.PostExcerpt)
	}
	if r.PostContent != nil {
		m.PostContent = *r.PostContent
	}
	if r.PostFeaturedImageURL != nil {
		m.PostFeaturedImageURL = trimPtr(r.PostFeaturedImageURL)
	}
	if r.PostThumbnailURL != nil {
		m.PostThumbnailURL = trimPtr(r.PostThumbnailURL)
	}
	if r.PostMetaTitle != nil {
		m.PostMetaTitle = trimPtr(r.PostMetaTitle)
	}
	if r.PostMetaDescription != nil {
		m.PostMetaDescription = trimPtr(r.PostMetaDescription)
	}
	if r.PostMetaKeywords != nil {
		m.PostMetaKeywords = trimPtr(r.PostMetaKeywords)
	}
	if r.PostIsFeatured != nil {
		m.PostIsFeatured = *r.PostIsFeatured
	}
	if r.PostCategoryID != nil {
		m.PostCategoryID = r.PostCategoryID
	}
	if r.PostAdminNotes != nil {
		m.PostAdminNotes = trimPtr(r.PostAdminNotes)
	}
}

/* =========================================================
   IMAGES
========================================================= */

type AddPostImageRequest struct {
	PostImageURL          string  `json:"post_image_url" validate:"required,url"`
	PostImageThumbnailURL *string `json:"post_image_thumbnail_url" validate:"omitempty,url"`
	PostImageCaption      *string `json:"post_image_caption" validate:"omitempty"`
	PostImageAltText      *string `json:"post_image_alt_text" validate:"omitempty,max=255"`
	PostImageDisplayOrder *int    `json:"post_image_display_order" validate:"omitempty,gte=0"`
}

func (r *AddPostImageRequest) ToModel(postID uuid.UUID) *model.PostImageModel {
	m := &model.PostImageModel{
		PostImagePostID:       postID,
		PostImageURL:          strings.TrimSpace(r.PostImageURL),
		PostImageThumbnailURL: trimPtr(r.PostImageThumbnailURL),
		PostImageCaption:      trimPtr(r.PostImageCaption),
		PostImageAltText:      trimPtr(r.PostImageAltText),
	}
	if r.PostImageDisplayOrder != nil {
		m.PostImageDisplayOrder = *r.PostImageDisplayOrder
	}
	return m
}
