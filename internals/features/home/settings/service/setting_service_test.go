// file: internals/features/home/settings/service/setting_service_test.go
package service

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	model "nunchakuclub_backend/internals/features/home/settings/model"
	"nunchakuclub_backend/internals/helpers/errs"
)

func newMockService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	return New(db, nil, zap.NewNop().Sugar()), mock
}

func settingRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"setting_key", "setting_value", "setting_type"})
}

func TestGetString(t *testing.T) {
	s, mock := newMockService(t)

	mock.ExpectQuery(`SELECT .+ FROM "settings" WHERE setting_key = \$1`).
		WithArgs("site_name", 1).
		WillReturnRows(settingRows().AddRow("site_name", "Nunchaku Club", "string"))

	got, err := s.GetString(context.Background(), "site_name")
	require.NoError(t, err)
	assert.Equal(t, "Nunchaku Club", got)
}

func TestGetMissingKey(t *testing.T) {
	s, mock := newMockService(t)

	mock.ExpectQuery(`SELECT .+ FROM "settings"`).
		WillReturnRows(settingRows())

	_, err := s.GetString(context.Background(), "nope")
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestGetIntParses(t *testing.T) {
	s, mock := newMockService(t)

	mock.ExpectQuery(`SELECT .+ FROM "settings"`).
		WillReturnRows(settingRows().AddRow("max_upload_mb", "25", "int"))

	got, err := s.GetInt(context.Background(), "max_upload_mb")
	require.NoError(t, err)
	assert.Equal(t, 25, got)
}

func TestGetIntTypeMismatch(t *testing.T) {
	s, mock := newMockService(t)

	mock.ExpectQuery(`SELECT .+ FROM "settings"`).
		WillReturnRows(settingRows().AddRow("site_name", "Nunchaku Club", "string"))

	_, err := s.GetInt(context.Background(), "site_name")
	assert.ErrorIs(t, err, errs.ErrGuardViolation)
}

func TestGetBoolParses(t *testing.T) {
	s, mock := newMockService(t)

	mock.ExpectQuery(`SELECT .+ FROM "settings"`).
		WillReturnRows(settingRows().AddRow("maintenance_mode", "true", "bool"))

	got, err := s.GetBool(context.Background(), "maintenance_mode")
	require.NoError(t, err)
	assert.True(t, got)
}

func TestSettingTypeEnum(t *testing.T) {
	for _, st := range []model.SettingType{
		model.SettingTypeString, model.SettingTypeInt,
		model.SettingTypeBool, model.SettingTypeJSON,
	} {
		assert.True(t, st.Valid(), "type %q", st)
	}
	assert.False(t, model.SettingType("float").Valid())
}
