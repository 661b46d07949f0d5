// file: internals/features/home/media/model/media_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: media

   Library of uploaded files. Upload handling itself lives
   outside this module; rows arrive here already stored.
========================================================= */

type MediaModel struct {
	MediaID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:media_id" json:"media_id"`

	MediaFileName     string `gorm:"type:varchar(255);not null;column:media_file_name" json:"media_file_name"`
	MediaOriginalName string `gorm:"type:varchar(255);not null;column:media_original_name" json:"media_original_name"`
	MediaFilePath     string `gorm:"type:text;not null;column:media_file_path" json:"media_file_path"`
	MediaFileURL      string `gorm:"type:text;not null;column:media_file_url" json:"media_file_url"`

	MediaMimeType  string `gorm:"type:varchar(100);not null;column:media_mime_type" json:"media_mime_type"`
	MediaSizeBytes int64  `gorm:"not null;default:0;column:media_size_bytes" json:"media_size_bytes"`

	MediaAltText *string `gorm:"type:varchar(255);column:media_alt_text" json:"media_alt_text,omitempty"`
	MediaCaption *string `gorm:"type:text;column:media_caption" json:"media_caption,omitempty"`

	MediaUploadedBy *uuid.UUID `gorm:"type:uuid;column:media_uploaded_by;index" json:"media_uploaded_by,omitempty"`

	MediaCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:media_created_at" json:"media_created_at"`
	MediaUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:media_updated_at" json:"media_updated_at"`
	MediaDeletedAt gorm.DeletedAt `gorm:"column:media_deleted_at;index" json:"media_deleted_at,omitempty"`
}

func (MediaModel) TableName() string { return "media" }
