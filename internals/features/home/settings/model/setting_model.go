// file: internals/features/home/settings/model/setting_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =========================================================
   ENUM: SettingType
========================================================= */

type SettingType string

const (
	SettingTypeString SettingType = "string"
	SettingTypeInt    SettingType = "int"
	SettingTypeBool   SettingType = "bool"
	SettingTypeJSON   SettingType = "json"
)

func (t SettingType) Valid() bool {
	switch t {
	case SettingTypeString, SettingTypeInt, SettingTypeBool, SettingTypeJSON:
		return true
	default:
		return false
	}
}

/* =========================================================
   MODEL: settings

   Site-wide key/value store. The key is the primary key;
   values are stored as text with a declared type, plus a
   jsonb column for structured values.
========================================================= */

type SettingModel struct {
	SettingKey string `gorm:"type:varchar(100);primaryKey;column:setting_key" json:"setting_key"`

	SettingValue string         `gorm:"type:text;not null;default:'';column:setting_value" json:"setting_value"`
	SettingType  SettingType    `gorm:"type:varchar(10);not null;default:'string';column:setting_type" json:"setting_type"`
	SettingJSON  datatypes.JSON `gorm:"type:jsonb;column:setting_json" json:"setting_json,omitempty"`

	SettingDescription *string `gorm:"type:varchar(255);column:setting_description" json:"setting_description,omitempty"`

	SettingUpdatedBy *uuid.UUID `gorm:"type:uuid;column:setting_updated_by" json:"setting_updated_by,omitempty"`
	SettingUpdatedAt time.Time  `gorm:"type:timestamptz;not null;default:now();autoUpdateTime;column:setting_updated_at" json:"setting_updated_at"`
}

func (SettingModel) TableName() string { return "settings" }
