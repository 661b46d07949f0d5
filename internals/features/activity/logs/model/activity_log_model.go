// file: internals/features/activity/logs/model/activity_log_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   ENUM: EntityKind

   Closed set of entity kinds the log can reference. Keeps the
   log type-checkable instead of free-text.
========================================================= */

type EntityKind string

const (
	EntityUser              EntityKind = "user"
	EntityPost              EntityKind = "post"
	EntityTag               EntityKind = "tag"
	EntityCategory          EntityKind = "category"
	EntityPage              EntityKind = "page"
	EntityMenuItem          EntityKind = "menu_item"
	EntityComment           EntityKind = "comment"
	EntityCourse            EntityKind = "course"
	EntityCourseEnrollment  EntityKind = "course_enrollment"
	EntityContactSubmission EntityKind = "contact_submission"
	EntityCoach             EntityKind = "coach"
	EntityAchievement       EntityKind = "achievement"
	EntityMedia             EntityKind = "media"
	EntitySetting           EntityKind = "setting"
)

func (k EntityKind) Valid() bool {
	switch k {
	case EntityUser, EntityPost, EntityTag, EntityCategory, EntityPage,
		EntityMenuItem, EntityComment, EntityCourse, EntityCourseEnrollment,
		EntityContactSubmission, EntityCoach, EntityAchievement,
		EntityMedia, EntitySetting:
		return true
	default:
		return false
	}
}

/* =========================================================
   MODEL: activity_logs

   Append-only. Rows are never updated or deleted by this
   module; retention is an operational concern.
========================================================= */

type ActivityLogModel struct {
	ActivityLogID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:activity_log_id" json:"activity_log_id"`

	// Acting user; nil for anonymous/system actions
	ActivityLogUserID *uuid.UUID `gorm:"type:uuid;column:activity_log_user_id;index" json:"activity_log_user_id,omitempty"`

	ActivityLogAction     string     `gorm:"type:varchar(100);not null;column:activity_log_action" json:"activity_log_action"`
	ActivityLogEntityType EntityKind `gorm:"type:varchar(32);not null;column:activity_log_entity_type;index:idx_activity_logs_entity" json:"activity_log_entity_type"`
	ActivityLogEntityID   *uuid.UUID `gorm:"type:uuid;column:activity_log_entity_id;index:idx_activity_logs_entity" json:"activity_log_entity_id,omitempty"`
	ActivityLogDetails    *string    `gorm:"type:text;column:activity_log_details" json:"activity_log_details,omitempty"`

	// Request provenance
	ActivityLogIPAddress *string `gorm:"type:varchar(45);column:activity_log_ip_address" json:"activity_log_ip_address,omitempty"`
	ActivityLogUserAgent *string `gorm:"type:text;column:activity_log_user_agent" json:"activity_log_user_agent,omitempty"`

	ActivityLogCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:activity_log_created_at" json:"activity_log_created_at"`
}

func (ActivityLogModel) TableName() string { return "activity_logs" }
