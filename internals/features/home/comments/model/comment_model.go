// file: internals/features/home/comments/model/comment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   ENUM: CommentStatus
========================================================= */

type CommentStatus string

const (
	CommentStatusPending  CommentStatus = "pending"
	CommentStatusApproved CommentStatus = "approved"
	CommentStatusSpam     CommentStatus = "spam"
	CommentStatusTrash    CommentStatus = "trash"
)

func (s CommentStatus) Valid() bool {
	switch s {
	case CommentStatusPending, CommentStatusApproved, CommentStatusSpam, CommentStatusTrash:
		return true
	default:
		return false
	}
}

// Counted reports whether a comment in this status contributes to the
// post's comment counter.
func (s CommentStatus) Counted() bool { return s == CommentStatusApproved }

/* =========================================================
   MODEL: comments

   Both a tree entity (threaded replies; delete policy
   Reparent, replies float up one level) and a workflow
   entity (moderation).
========================================================= */

type CommentModel struct {
	CommentID     uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:comment_id" json:"comment_id"`
	CommentPostID uuid.UUID `gorm:"type:uuid;not null;column:comment_post_id;index" json:"comment_post_id"`

	// Registered author or guest identity
	CommentUserID      *uuid.UUID `gorm:"type:uuid;column:comment_user_id" json:"comment_user_id,omitempty"`
	CommentAuthorName  *string    `gorm:"type:varchar(100);column:comment_author_name" json:"comment_author_name,omitempty"`
	CommentAuthorEmail *string    `gorm:"type:varchar(255);column:comment_author_email" json:"comment_author_email,omitempty"`

	CommentContent string `gorm:"type:text;not null;column:comment_content" json:"comment_content"`

	// Hierarchy (self-reference; nullable; parent must share the post)
	CommentParentID     *uuid.UUID `gorm:"type:uuid;column:comment_parent_id;index" json:"comment_parent_id,omitempty"`
	CommentDisplayOrder int        `gorm:"not null;default:0;column:comment_display_order" json:"comment_display_order"`

	CommentStatus CommentStatus `gorm:"type:varchar(16);not null;default:'pending';column:comment_status;index" json:"comment_status"`

	// Moderation provenance
	CommentProcessedBy *uuid.UUID `gorm:"type:uuid;column:comment_processed_by" json:"comment_processed_by,omitempty"`
	CommentProcessedAt *time.Time `gorm:"type:timestamptz;column:comment_processed_at" json:"comment_processed_at,omitempty"`

	CommentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:comment_created_at" json:"comment_created_at"`
	CommentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:comment_updated_at" json:"comment_updated_at"`
	CommentDeletedAt gorm.DeletedAt `gorm:"column:comment_deleted_at;index" json:"comment_deleted_at,omitempty"`
}

func (CommentModel) TableName() string { return "comments" }
