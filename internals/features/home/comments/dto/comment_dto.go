// file: internals/features/home/comments/dto/comment_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	model "nunchakuclub_backend/internals/features/home/comments/model"
)

type AddCommentRequest struct {
	CommentPostID  uuid.UUID  `json:"comment_post_id" validate:"required"`
	CommentContent string     `json:"comment_content" validate:"required,max=5000"`
	CommentParentID *uuid.UUID `json:"comment_parent_id" validate:"omitempty"`

	// Either a registered user or a guest name/email pair
	CommentUserID      *uuid.UUID `json:"comment_user_id" validate:"omitempty"`
	CommentAuthorName  *string    `json:"comment_author_name" validate:"required_without=CommentUserID,omitempty,max=100"`
	CommentAuthorEmail *string    `json:"comment_author_email" validate:"required_without=CommentUserID,omitempty,email,max=255"`
}

func (r *AddCommentRequest) ToModel() *model.CommentModel {
	m := &model.CommentModel{
		CommentPostID:  r.CommentPostID,
		CommentContent: strings.TrimSpace(r.CommentContent),
		CommentUserID:  r.CommentUserID,
		CommentStatus:  model.CommentStatusPending,
	}
	if r.CommentAuthorName != nil {
		n := strings.TrimSpace(*r.CommentAuthorName)
		if n != "" {
			m.CommentAuthorName = &n
		}
	}
	if r.CommentAuthorEmail != nil {
		e := strings.ToLower(strings.TrimSpace(*r.CommentAuthorEmail))
		if e != "" {
			m.CommentAuthorEmail = &e
		}
	}
	return m
}
