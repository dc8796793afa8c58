package daemon

import (
	"github.com/rs/zerolog/log"

	"github.com/recordsettings/recordsettings/internal/config"
	"github.com/recordsettings/recordsettings/internal/i18n"
	"github.com/recordsettings/recordsettings/internal/settings"
)

// LoadSettings reads the settings schema and the translation catalogs and
// validates every record type. The first configuration error is returned.
func LoadSettings(cfg *config.Config) (*settings.Registry, *i18n.Catalog, error) {
	registry, err := settings.LoadRegistry(cfg.Settings.SchemaFile)
	if err != nil {
		return nil, nil, err
	}

	if err = registry.ValidateAll(); err != nil {
		return nil, nil, err
	}

	// translations are optional
	var catalog *i18n.Catalog
	if cfg.Settings.LangDir != "" {
		if catalog, err = i18n.LoadDir(cfg.Settings.LangDir, cfg.Settings.DefaultLanguage); err != nil {
			return nil, nil, err
		}
	}

	log.Info().
		Strs("types", registry.Types()).
		Str("schema", cfg.Settings.SchemaFile).
		Msg("settings schema loaded")

	return registry, catalog, nil
}
