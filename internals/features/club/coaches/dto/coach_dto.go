// file: internals/features/club/coaches/dto/coach_dto.go
package dto

type CreateCoachRequest struct {
	CoachFullName string  `json:"coach_full_name" validate:"required,min=2,max=150"`
	CoachSlug     string  `json:"coach_slug" validate:"omitempty,max=170"`
	CoachTitle    *string `json:"coach_title" validate:"omitempty,max=150"`
	CoachBio      *string `json:"coach_bio" validate:"omitempty"`

	CoachPhotoURL *string `json:"coach_photo_url" validate:"omitempty,url"`

	CoachCertifications []string `json:"coach_certifications" validate:"omitempty,dive,min=1,max=200"`
	CoachAchievements   []string `json:"coach_achievements" validate:"omitempty,dive,min=1,max=200"`

	CoachYearsExperience int `json:"coach_years_experience" validate:"omitempty,min=0,max=80"`
	CoachDisplayOrder    int `json:"coach_display_order" validate:"omitempty,min=0"`
}

type UpdateCoachRequest struct {
	CoachFullName *string `json:"coach_full_name" validate:"omitempty,min=2,max=150"`
	CoachTitle    *string `json:"coach_title" validate:"omitempty,max=150"`
	CoachBio      *string `json:"coach_bio" validate:"omitempty"`

	CoachPhotoURL *string `json:"coach_photo_url" validate:"omitempty,url"`

	CoachCertifications []string `json:"coach_certifications" validate:"omitempty,dive,min=1,max=200"`
	CoachAchievements   []string `json:"coach_achievements" validate:"omitempty,dive,min=1,max=200"`

	CoachYearsExperience *int  `json:"coach_years_experience" validate:"omitempty,min=0,max=80"`
	CoachDisplayOrder    *int  `json:"coach_display_order" validate:"omitempty,min=0"`
	CoachIsActive        *bool `json:"coach_is_active"`
}

type CreateAchievementRequest struct {
	AchievementTitle       string  `json:"achievement_title" validate:"required,min=3,max=200"`
	AchievementDescription *string `json:"achievement_description" validate:"omitempty"`
	AchievementType        string  `json:"achievement_type" validate:"omitempty,oneof=competition certification milestone"`

	AchievementYear     int     `json:"achievement_year" validate:"omitempty,min=1900,max=2100"`
	AchievementImageURL *string `json:"achievement_image_url" validate:"omitempty,url"`

	AchievementCoachID *string `json:"achievement_coach_id" validate:"omitempty,uuid"`

	AchievementDisplayOrder int  `json:"achievement_display_order" validate:"omitempty,min=0"`
	AchievementIsFeatured   bool `json:"achievement_is_featured"`
}
