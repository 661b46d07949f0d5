// file: internals/features/club/courses/dto/course_dto.go
package dto

/* =========================================================
   REQUEST DTO
========================================================= */

type CreateCourseRequest struct {
	CourseName        string  `json:"course_name" validate:"required,min=3,max=150"`
	CourseSlug        string  `json:"course_slug" validate:"omitempty,max=170"`
	CourseDescription *string `json:"course_description" validate:"omitempty"`

	CourseLevel           string `json:"course_level" validate:"omitempty,oneof=beginner intermediate advanced professional"`
	CourseDurationMonths  int    `json:"course_duration_months" validate:"omitempty,min=0"`
	CourseSessionsPerWeek int    `json:"course_sessions_per_week" validate:"omitempty,min=0"`

	CoursePrice  float64 `json:"course_price" validate:"omitempty,min=0"`
	CourseIsFree bool    `json:"course_is_free"`

	CourseFeatures []string `json:"course_features" validate:"omitempty,dive,min=1,max=200"`

	CourseDisplayOrder int  `json:"course_display_order" validate:"omitempty,min=0"`
	CourseIsFeatured   bool `json:"course_is_featured"`

	CourseThumbnailURL  *string `json:"course_thumbnail_url" validate:"omitempty,url"`
	CourseCoverImageURL *string `json:"course_cover_image_url" validate:"omitempty,url"`
}

type UpdateCourseRequest struct {
	CourseName        *string `json:"course_name" validate:"omitempty,min=3,max=150"`
	CourseDescription *string `json:"course_description" validate:"omitempty"`

	CourseLevel           *string `json:"course_level" validate:"omitempty,oneof=beginner intermediate advanced professional"`
	CourseDurationMonths  *int    `json:"course_duration_months" validate:"omitempty,min=0"`
	CourseSessionsPerWeek *int    `json:"course_sessions_per_week" validate:"omitempty,min=0"`

	CoursePrice  *float64 `json:"course_price" validate:"omitempty,min=0"`
	CourseIsFree *bool    `json:"course_is_free"`

	CourseFeatures []string `json:"course_features" validate:"omitempty,dive,min=1,max=200"`

	CourseDisplayOrder *int  `json:"course_display_order" validate:"omitempty,min=0"`
	CourseIsFeatured   *bool `json:"course_is_featured"`
	CourseIsActive     *bool `json:"course_is_active"`

	CourseThumbnailURL  *string `json:"course_thumbnail_url" validate:"omitempty,url"`
	CourseCoverImageURL *string `json:"course_cover_image_url" validate:"omitempty,url"`
}

type EnrollRequest struct {
	CourseEnrollmentCourseID string  `json:"course_enrollment_course_id" validate:"required,uuid"`
	CourseEnrollmentUserID   *string `json:"course_enrollment_user_id" validate:"omitempty,uuid"`
	CourseEnrollmentFullName string  `json:"course_enrollment_full_name" validate:"required,min=2,max=150"`
	CourseEnrollmentPhone    string  `json:"course_enrollment_phone" validate:"required,min=6,max=30"`
	CourseEnrollmentEmail    string  `json:"course_enrollment_email" validate:"required,email,max=255"`
	CourseEnrollmentMessage  *string `json:"course_enrollment_message" validate:"omitempty,max=2000"`
}
