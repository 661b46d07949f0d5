// file: internals/features/club/coaches/model/coach_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

/* =========================================================
   MODEL: coaches
========================================================= */

type CoachModel struct {
	CoachID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:coach_id" json:"coach_id"`

	CoachFullName string  `gorm:"type:varchar(150);not null;column:coach_full_name" json:"coach_full_name"`
	CoachSlug     string  `gorm:"type:varchar(170);not null;uniqueIndex;column:coach_slug" json:"coach_slug"`
	CoachTitle    *string `gorm:"type:varchar(150);column:coach_title" json:"coach_title,omitempty"`
	CoachBio      *string `gorm:"type:text;column:coach_bio" json:"coach_bio,omitempty"`

	CoachPhotoURL *string `gorm:"type:text;column:coach_photo_url" json:"coach_photo_url,omitempty"`

	CoachCertifications pq.StringArray `gorm:"type:text[];column:coach_certifications" json:"coach_certifications,omitempty"`
	CoachAchievements   pq.StringArray `gorm:"type:text[];column:coach_achievements" json:"coach_achievements,omitempty"`

	CoachYearsExperience int  `gorm:"not null;default:0;column:coach_years_experience" json:"coach_years_experience"`
	CoachDisplayOrder    int  `gorm:"not null;default:0;column:coach_display_order" json:"coach_display_order"`
	CoachIsActive        bool `gorm:"not null;default:true;column:coach_is_active" json:"coach_is_active"`

	CoachCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:coach_created_at" json:"coach_created_at"`
	CoachUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:coach_updated_at" json:"coach_updated_at"`
	CoachDeletedAt gorm.DeletedAt `gorm:"column:coach_deleted_at;index" json:"coach_deleted_at,omitempty"`
}

func (CoachModel) TableName() string { return "coaches" }

/* =========================================================
   ENUM: AchievementType
========================================================= */

type AchievementType string

const (
	AchievementTypeCompetition   AchievementType = "competition"
	AchievementTypeCertification AchievementType = "certification"
	AchievementTypeMilestone     AchievementType = "milestone"
)

func (t AchievementType) Valid() bool {
	switch t {
	case AchievementTypeCompetition, AchievementTypeCertification, AchievementTypeMilestone:
		return true
	default:
		return false
	}
}

/* =========================================================
   MODEL: achievements

   Club trophy cabinet. Optionally tied to a coach.
========================================================= */

type AchievementModel struct {
	AchievementID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:achievement_id" json:"achievement_id"`

	AchievementTitle       string          `gorm:"type:varchar(200);not null;column:achievement_title" json:"achievement_title"`
	AchievementDescription *string         `gorm:"type:text;column:achievement_description" json:"achievement_description,omitempty"`
	AchievementType        AchievementType `gorm:"type:varchar(20);not null;default:'milestone';column:achievement_type" json:"achievement_type"`

	AchievementYear     int     `gorm:"not null;default:0;column:achievement_year" json:"achievement_year"`
	AchievementImageURL *string `gorm:"type:text;column:achievement_image_url" json:"achievement_image_url,omitempty"`

	AchievementCoachID *uuid.UUID `gorm:"type:uuid;column:achievement_coach_id;index" json:"achievement_coach_id,omitempty"`

	AchievementDisplayOrder int  `gorm:"not null;default:0;column:achievement_display_order" json:"achievement_display_order"`
	AchievementIsFeatured   bool `gorm:"not null;default:false;column:achievement_is_featured" json:"achievement_is_featured"`

	AchievementCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoCreateTime;column:achievement_created_at" json:"achievement_created_at"`
	AchievementUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:achievement_updated_at" json:"achievement_updated_at"`
	AchievementDeletedAt gorm.DeletedAt `gorm:"column:achievement_deleted_at;index" json:"achievement_deleted_at,omitempty"`
}

func (AchievementModel) TableName() string { return "achievements" }
