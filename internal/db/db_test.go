package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recordsettings/recordsettings/internal/config"
	"github.com/recordsettings/recordsettings/internal/db/models"
)

func TestDialector(t *testing.T) {
	for _, engine := range []string{config.EngineMySQL, config.EnginePostgres, config.EngineSQLite} {
		cfg := &config.Config{DB: config.DB{GormEngine: engine, Name: "x"}}

		d, err := Dialector(cfg)
		require.NoError(t, err, engine)
		assert.Equal(t, engine, d.Name())
	}

	_, err := Dialector(&config.Config{DB: config.DB{GormEngine: "oracle"}})
	require.ErrorIs(t, err, config.ErrUnknownDBEngine)
}

func TestOpenSQLite(t *testing.T) {
	cfg := &config.Config{DB: config.DB{
		GormEngine: config.EngineSQLite,
		Name:       filepath.Join(t.TempDir(), "test.db"),
	}}

	conn, err := Open(cfg)
	require.NoError(t, err)

	assert.True(t, conn.Migrator().HasTable(&models.Record{}))
	assert.True(t, conn.Migrator().HasTable(&models.DefaultOverride{}))

	rec := models.Record{Type: "Page", ArbitrarySettings: models.SettingsColumn{"theme": "dark"}}
	require.NoError(t, conn.Create(&rec).Error)

	var loaded models.Record
	require.NoError(t, conn.First(&loaded, rec.ID).Error)
	assert.Equal(t, models.SettingsColumn{"theme": "dark"}, loaded.ArbitrarySettings)
}
