// file: internals/features/club/courses/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =========================================================
   ENUM: CourseLevel
========================================================= */

type CourseLevel string

const (
	CourseLevelBeginner     CourseLevel = "beginner"
	CourseLevelIntermediate CourseLevel = "intermediate"
	CourseLevelAdvanced     CourseLevel = "advanced"
	CourseLevelProfessional CourseLevel = "professional"
)

func (l CourseLevel) Valid() bool {
	switch l {
	case CourseLevelBeginner, CourseLevelIntermediate, CourseLevelAdvanced, CourseLevelProfessional:
		return true
	default:
		return false
	}
}

/* =========================================================
   MODEL: courses
========================================================= */

type CourseModel struct {
	CourseID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_id" json:"course_id"`

	CourseName        string  `gorm:"type:varchar(150);not null;column:course_name" json:"course_name"`
	CourseSlug        string  `gorm:"type:varchar(170);not null;uniqueIndex;column:course_slug" json:"course_slug"`
	CourseDescription *string `gorm:"type:text;column:course_description" json:"course_description,omitempty"`

	CourseLevel           CourseLevel `gorm:"type:varchar(16);not null;default:'beginner';column:course_level" json:"course_level"`
	CourseDurationMonths  int         `gorm:"not null;default:0;column:course_duration_months" json:"course_duration_months"`
	CourseSessionsPerWeek int         `gorm:"not null;default:0;column:course_sessions_per_week" json:"course_sessions_per_week"`

	CoursePrice  float64 `gorm:"type:numeric(12,2);not null;default:0;column:course_price" json:"course_price"`
	CourseIsFree bool    `gorm:"not null;default:false;column:course_is_free" json:"course_is_free"`

	CourseFeatures pq.StringArray `gorm:"type:text[];column:course_features" json:"course_features,omitempty"`

	CourseDisplayOrder int  `gorm:"not null;default:0;column:course_display_order" json:"course_display_order"`
	CourseIsFeatured   bool `gorm:"not null;default:false;column:course_is_featured" json:"course_is_featured"`
	CourseIsActive     bool `gorm:"not null;default:true;column:course_is_active" json:"course_is_active"`

	CourseThumbnailURL  *string `gorm:"type:text;column:course_thumbnail_url" json:"course_thumbnail_url,omitempty"`
	CourseCoverImageURL *string `gorm:"type:text;column:course_cover_image_url" json:"course_cover_image_url,omitempty"`

	CourseCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:course_created_at" json:"course_created_at"`
	CourseUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:course_updated_at" json:"course_updated_at"`
	CourseDeletedAt gorm.DeletedAt `gorm:"column:course_deleted_at;index" json:"course_deleted_at,omitempty"`
}

func (CourseModel) TableName() string { return "courses" }

/* =========================================================
   ENUM: EnrollmentStatus
========================================================= */

type EnrollmentStatus string

const (
	EnrollmentStatusPending   EnrollmentStatus = "pending"
	EnrollmentStatusApproved  EnrollmentStatus = "approved"
	EnrollmentStatusRejected  EnrollmentStatus = "rejected"
	EnrollmentStatusCompleted EnrollmentStatus = "completed"
)

func (s EnrollmentStatus) Valid() bool {
	switch s {
	case EnrollmentStatusPending, EnrollmentStatusApproved, EnrollmentStatusRejected, EnrollmentStatusCompleted:
		return true
	default:
		return false
	}
}

/* =========================================================
   MODEL: course_enrollments

   Workflow entity: pending -> approved | rejected,
   approved -> completed. Approve/reject require a processing
   actor on record.
========================================================= */

type CourseEnrollmentModel struct {
	CourseEnrollmentID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:course_enrollment_id" json:"course_enrollment_id"`
	CourseEnrollmentCourseID uuid.UUID `gorm:"type:uuid;not null;column:course_enrollment_course_id;index" json:"course_enrollment_course_id"`

	// Registered member or walk-in contact details
	CourseEnrollmentUserID   *uuid.UUID `gorm:"type:uuid;column:course_enrollment_user_id" json:"course_enrollment_user_id,omitempty"`
	CourseEnrollmentFullName string     `gorm:"type:varchar(150);not null;column:course_enrollment_full_name" json:"course_enrollment_full_name"`
	CourseEnrollmentPhone    string     `gorm:"type:varchar(30);not null;column:course_enrollment_phone" json:"course_enrollment_phone"`
	CourseEnrollmentEmail    string     `gorm:"type:varchar(255);not null;column:course_enrollment_email" json:"course_enrollment_email"`

	CourseEnrollmentStatus  EnrollmentStatus `gorm:"type:varchar(16);not null;default:'pending';column:course_enrollment_status;index" json:"course_enrollment_status"`
	CourseEnrollmentMessage *string          `gorm:"type:text;column:course_enrollment_message" json:"course_enrollment_message,omitempty"`

	CourseEnrollmentAdminNotes *string `gorm:"type:text;column:course_enrollment_admin_notes" json:"course_enrollment_admin_notes,omitempty"`

	CourseEnrollmentEnrolledAt  time.Time  `gorm:"type:timestamptz;not null;default:now();column:course_enrollment_enrolled_at" json:"course_enrollment_enrolled_at"`
	CourseEnrollmentProcessedAt *time.Time `gorm:"type:timestamptz;column:course_enrollment_processed_at" json:"course_enrollment_processed_at,omitempty"`
	CourseEnrollmentProcessedBy *uuid.UUID `gorm:"type:uuid;column:course_enrollment_processed_by" json:"course_enrollment_processed_by,omitempty"`

	CourseEnrollmentCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:course_enrollment_created_at" json:"course_enrollment_created_at"`
	CourseEnrollmentUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:course_enrollment_updated_at" json:"course_enrollment_updated_at"`
}

func (CourseEnrollmentModel) TableName() string { return "course_enrollments" }
