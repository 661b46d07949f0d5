// file: internals/features/home/settings/service/setting_service.go
package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	logModel "nunchakuclub_backend/internals/features/activity/logs/model"
	logSvc "nunchakuclub_backend/internals/features/activity/logs/service"
	model "nunchakuclub_backend/internals/features/home/settings/model"
	"nunchakuclub_backend/internals/helpers/errs"
)

/* =========================================================
   SETTING SERVICE

   Typed accessors over the settings table. Set is an upsert
   keyed on setting_key; readers get the zero value plus
   ErrNotFound when a key is absent.
========================================================= */

type Service struct {
	DB       *gorm.DB
	Recorder *logSvc.Recorder
	Log      *zap.SugaredLogger
}

func New(db *gorm.DB, rec *logSvc.Recorder, log *zap.SugaredLogger) *Service {
	if log == nil {
		log = zap.S()
	}
	return &Service{DB: db, Recorder: rec, Log: log}
}

func (s *Service) get(ctx context.Context, key string) (*model.SettingModel, error) {
	var m model.SettingModel
	if err := s.DB.WithContext(ctx).First(&m, "setting_key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("setting %q", key)
		}
		return nil, err
	}
	return &m, nil
}

func (s *Service) set(ctx context.Context, m *model.SettingModel, actor *uuid.UUID, prov logSvc.Provenance) error {
	m.SettingUpdatedBy = actor
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "setting_key"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"setting_value", "setting_type", "setting_json",
				"setting_updated_by", "setting_updated_at",
			}),
		}).Create(m).Error
	})
	if err != nil {
		return err
	}
	// Settings are keyed by string; there is no uuid to attach.
	return s.Recorder.Record(ctx, actor, "setting.set", logModel.EntitySetting, nil, m.SettingKey, prov)
}

/* =========================================================
   TYPED ACCESSORS
========================================================= */

func (s *Service) GetString(ctx context.Context, key string) (string, error) {
	m, err := s.get(ctx, key)
	if err != nil {
		return "", err
	}
	return m.SettingValue, nil
}

func (s *Service) SetString(ctx context.Context, key, value string, actor *uuid.UUID, prov logSvc.Provenance) error {
	return s.set(ctx, &model.SettingModel{
		SettingKey:   key,
		SettingValue: value,
		SettingType:  model.SettingTypeString,
	}, actor, prov)
}

func (s *Service) GetInt(ctx context.Context, key string) (int, error) {
	m, err := s.get(ctx, key)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(m.SettingValue)
	if err != nil {
		return 0, errs.GuardViolationf("setting %q holds %q, not an int", key, m.SettingValue)
	}
	return n, nil
}

func (s *Service) SetInt(ctx context.Context, key string, value int, actor *uuid.UUID, prov logSvc.Provenance) error {
	return s.set(ctx, &model.SettingModel{
		SettingKey:   key,
		SettingValue: strconv.Itoa(value),
		SettingType:  model.SettingTypeInt,
	}, actor, prov)
}

func (s *Service) GetBool(ctx context.Context, key string) (bool, error) {
	m, err := s.get(ctx, key)
	if err != nil {
		return false, err
	}
	b, err := strconv.ParseBool(m.SettingValue)
	if err != nil {
		return false, errs.GuardViolationf("setting %q holds %q, not a bool", key, m.SettingValue)
	}
	return b, nil
}

func (s *Service) SetBool(ctx context.Context, key string, value bool, actor *uuid.UUID, prov logSvc.Provenance) error {
	return s.set(ctx, &model.SettingModel{
		SettingKey:   key,
		SettingValue: strconv.FormatBool(value),
		SettingType:  model.SettingTypeBool,
	}, actor, prov)
}

// GetJSON unmarshals the jsonb column into out.
func (s *Service) GetJSON(ctx context.Context, key string, out any) error {
	m, err := s.get(ctx, key)
	if err != nil {
		return err
	}
	if len(m.SettingJSON) == 0 {
		return errs.NotFoundf("setting %q has no json value", key)
	}
	return json.Unmarshal(m.SettingJSON, out)
}

func (s *Service) SetJSON(ctx context.Context, key string, value any, actor *uuid.UUID, prov logSvc.Provenance) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	return s.set(ctx, &model.SettingModel{
		SettingKey:  key,
		SettingType: model.SettingTypeJSON,
		SettingJSON: datatypes.JSON(raw),
	}, actor, prov)
}

// All returns every setting, keyed for template rendering.
func (s *Service) All(ctx context.Context) (map[string]model.SettingModel, error) {
	var rows []model.SettingModel
	if err := s.DB.WithContext(ctx).Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make(map[string]model.SettingModel, len(rows))
	for _, r := range rows {
		out[r.SettingKey] = r
	}
	return out, nil
}

func (s *Service) Delete(ctx context.Context, key string, actor *uuid.UUID, prov logSvc.Provenance) error {
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Delete(&model.SettingModel{}, "setting_key = ?", key)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errs.NotFoundf("setting %q", key)
		}
		return nil
	})
	if err != nil {
		return err
	}
	return s.Recorder.Record(ctx, actor, "setting.delete", logModel.EntitySetting, nil, key, prov)
}
