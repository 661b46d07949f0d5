// file: internals/features/home/contact/model/contact_submission_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   ENUM: ContactStatus
========================================================= */

type ContactStatus string

const (
	ContactStatusNew      ContactStatus = "new"
	ContactStatusRead     ContactStatus = "read"
	ContactStatusReplied  ContactStatus = "replied"
	ContactStatusArchived ContactStatus = "archived"
)

func (s ContactStatus) Valid() bool {
	switch s {
	case ContactStatusNew, ContactStatusRead, ContactStatusReplied, ContactStatusArchived:
		return true
	default:
		return false
	}
}

/* =========================================================
   MODEL: contact_submissions

   Inbox workflow: new -> read -> replied, archive from
   anywhere. Submissions record the sender's IP and user agent
   for abuse handling.
========================================================= */

type ContactSubmissionModel struct {
	ContactSubmissionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:contact_submission_id" json:"contact_submission_id"`

	ContactSubmissionName    string  `gorm:"type:varchar(150);not null;column:contact_submission_name" json:"contact_submission_name"`
	ContactSubmissionEmail   string  `gorm:"type:varchar(255);not null;column:contact_submission_email" json:"contact_submission_email"`
	ContactSubmissionPhone   *string `gorm:"type:varchar(30);column:contact_submission_phone" json:"contact_submission_phone,omitempty"`
	ContactSubmissionSubject *string `gorm:"type:varchar(200);column:contact_submission_subject" json:"contact_submission_subject,omitempty"`
	ContactSubmissionMessage string  `gorm:"type:text;not null;column:contact_submission_message" json:"contact_submission_message"`

	// Optional link to the course the sender is asking about
	ContactSubmissionCourseID *uuid.UUID `gorm:"type:uuid;column:contact_submission_course_id" json:"contact_submission_course_id,omitempty"`

	ContactSubmissionStatus ContactStatus `gorm:"type:varchar(16);not null;default:'new';column:contact_submission_status;index" json:"contact_submission_status"`

	ContactSubmissionIPAddress *string `gorm:"type:varchar(45);column:contact_submission_ip_address" json:"contact_submission_ip_address,omitempty"`
	ContactSubmissionUserAgent *string `gorm:"type:text;column:contact_submission_user_agent" json:"contact_submission_user_agent,omitempty"`

	ContactSubmissionAdminNotes *string `gorm:"type:text;column:contact_submission_admin_notes" json:"contact_submission_admin_notes,omitempty"`

	ContactSubmissionHandledBy *uuid.UUID `gorm:"type:uuid;column:contact_submission_handled_by" json:"contact_submission_handled_by,omitempty"`
	ContactSubmissionHandledAt *time.Time `gorm:"type:timestamptz;column:contact_submission_handled_at" json:"contact_submission_handled_at,omitempty"`

	ContactSubmissionCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:contact_submission_created_at" json:"contact_submission_created_at"`
	ContactSubmissionUpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:contact_submission_updated_at" json:"contact_submission_updated_at"`
}

func (ContactSubmissionModel) TableName() string { return "contact_submissions" }
