// file: internals/features/home/posts/model/post_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   ENUM: PostStatus
========================================================= */

type PostStatus string

const (
	PostStatusDraft     PostStatus = "draft"
	PostStatusPublished PostStatus = "published"
	PostStatusArchived  PostStatus = "archived"
)

func (s PostStatus) Valid() bool {
	switch s {
	case PostStatusDraft, PostStatusPublished, PostStatusArchived:
		return true
	default:
		return false
	}
}

/* =========================================================
   MODEL: posts

   Workflow entity: draft -> published -> archived -> draft.
   Counters (view/like/comment) are maintained transactionally
   by the services, never recomputed from navigation slices.
========================================================= */

type PostModel struct {
	PostID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:post_id" json:"post_id"`

	PostTitle   string  `gorm:"type:varchar(255);not null;column:post_title" json:"post_title"`
	PostSlug    string  `gorm:"type:varchar(255);not null;uniqueIndex;column:post_slug" json:"post_slug"`
	PostExcerpt *string `gorm:"type:text;column:post_excerpt" json:"post_excerpt,omitempty"`
	PostContent string  `gorm:"type:text;not null;column:post_content" json:"post_content"`

	PostFeaturedImageURL *string `gorm:"type:text;column:post_featured_image_url" json:"post_featured_image_url,omitempty"`
	PostThumbnailURL     *string `gorm:"type:text;column:post_thumbnail_url" json:"post_thumbnail_url,omitempty"`

	PostMetaTitle       *string `gorm:"type:varchar(255);column:post_meta_title" json:"post_meta_title,omitempty"`
	PostMetaDescription *string `gorm:"type:text;column:post_meta_description" json:"post_meta_description,omitempty"`
	PostMetaKeywords    *string `gorm:"type:text;column:post_meta_keywords" json:"post_meta_keywords,omitempty"`

	PostStatus     PostStatus `gorm:"type:varchar(16);not null;default:'draft';column:post_status;index" json:"post_status"`
	PostIsFeatured bool       `gorm:"not null;default:false;column:post_is_featured" json:"post_is_featured"`

	// Set once on first publish; re-publish after archive keeps it.
	PostPublishedAt *time.Time `gorm:"type:timestamptz;column:post_published_at" json:"post_published_at,omitempty"`

	PostAuthorID   uuid.UUID  `gorm:"type:uuid;not null;column:post_author_id;index" json:"post_author_id"`
	PostCategoryID *uuid.UUID `gorm:"type:uuid;column:post_category_id;index" json:"post_category_id,omitempty"`

	PostViewCount    int `gorm:"not null;default:0;column:post_view_count" json:"post_view_count"`
	PostLikeCount    int `gorm:"not null;default:0;column:post_like_count" json:"post_like_count"`
	PostCommentCount int `gorm:"not null;default:0;column:post_comment_count" json:"post_comment_count"`

	PostAdminNotes *string `gorm:"type:text;column:post_admin_notes" json:"post_admin_notes,omitempty"`

	// Audit
	PostCreatedBy *uuid.UUID     `gorm:"type:uuid;column:post_created_by" json:"post_created_by,omitempty"`
	PostUpdatedBy *uuid.UUID     `gorm:"type:uuid;column:post_updated_by" json:"post_updated_by,omitempty"`
	PostCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:post_created_at" json:"post_created_at"`
	PostUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:post_updated_at" json:"post_updated_at"`
	PostDeletedAt gorm.DeletedAt `gorm:"column:post_deleted_at;index" json:"post_deleted_at,omitempty"`
}

func (PostModel) TableName() string { return "posts" }

func (p *PostModel) SetCreatedBy(actor *uuid.UUID) { p.PostCreatedBy = actor }
func (p *PostModel) SetUpdatedBy(actor *uuid.UUID, at time.Time) {
	p.PostUpdatedBy = actor
	p.PostUpdatedAt = at
}

/* =========================================================
   MODEL: post_images

   Owned by the post; deleted with it.
========================================================= */

type PostImageModel struct {
	PostImageID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:post_image_id" json:"post_image_id"`
	PostImagePostID uuid.UUID `gorm:"type:uuid;not null;column:post_image_post_id;index" json:"post_image_post_id"`

	PostImageURL          string  `gorm:"type:text;not null;column:post_image_url" json:"post_image_url"`
	PostImageThumbnailURL *string `gorm:"type:text;column:post_image_thumbnail_url" json:"post_image_thumbnail_url,omitempty"`
	PostImageCaption      *string `gorm:"type:text;column:post_image_caption" json:"post_image_caption,omitempty"`
	PostImageAltText      *string `gorm:"type:varchar(255);column:post_image_alt_text" json:"post_image_alt_text,omitempty"`
	PostImageDisplayOrder int     `gorm:"not null;default:0;column:post_image_display_order" json:"post_image_display_order"`

	PostImageCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:post_image_created_at" json:"post_image_created_at"`
	PostImageUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:post_image_updated_at" json:"post_image_updated_at"`
}

func (PostImageModel) TableName() string { return "post_images" }

/* =========================================================
   MODEL: tags + post_tags

   Tags are shared; deleting a post (or a tag) only removes
   associations, never the other side.
========================================================= */

type TagModel struct {
	TagID   uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:tag_id" json:"tag_id"`
	TagName string    `gorm:"type:varchar(60);not null;column:tag_name" json:"tag_name"`
	TagSlug string    `gorm:"type:varchar(80);not null;uniqueIndex;column:tag_slug" json:"tag_slug"`

	TagCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:tag_created_at" json:"tag_created_at"`
	TagUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:tag_updated_at" json:"tag_updated_at"`
}

func (TagModel) TableName() string { return "tags" }

type PostTagModel struct {
	PostTagPostID uuid.UUID `gorm:"type:uuid;primaryKey;column:post_tag_post_id" json:"post_tag_post_id"`
	PostTagTagID  uuid.UUID `gorm:"type:uuid;primaryKey;column:post_tag_tag_id" json:"post_tag_tag_id"`
}

func (PostTagModel) TableName() string { return "post_tags" }
