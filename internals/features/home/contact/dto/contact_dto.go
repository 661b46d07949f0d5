// file: internals/features/home/contact/dto/contact_dto.go
package dto

type SubmitContactRequest struct {
	ContactSubmissionName    string  `json:"contact_submission_name" validate:"required,min=2,max=150"`
	ContactSubmissionEmail   string  `json:"contact_submission_email" validate:"required,email,max=255"`
	ContactSubmissionPhone   *string `json:"contact_submission_phone" validate:"omitempty,min=6,max=30"`
	ContactSubmissionSubject *string `json:"contact_submission_subject" validate:"omitempty,max=200"`
	ContactSubmissionMessage string  `json:"contact_submission_message" validate:"required,min=5,max=5000"`

	ContactSubmissionCourseID *string `json:"contact_submission_course_id" validate:"omitempty,uuid"`
}
