// Package editor ties the settings registry, the translation catalog and the
// database together: it builds the settings field of a record, stores what
// was submitted and answers setting lookups.
package editor

import (
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/recordsettings/recordsettings/internal/db/controller/override"
	"github.com/recordsettings/recordsettings/internal/db/controller/record"
	"github.com/recordsettings/recordsettings/internal/db/models"
	"github.com/recordsettings/recordsettings/internal/i18n"
	"github.com/recordsettings/recordsettings/internal/settings"
)

// Service provides settings editing for stored records.
type Service struct {
	db       *gorm.DB
	registry *settings.Registry
	catalog  *i18n.Catalog
}

// NewService creates a new editor service. catalog may be nil, labels are
// then left untranslated.
func NewService(db *gorm.DB, registry *settings.Registry, catalog *i18n.Catalog) *Service {
	return &Service{db: db, registry: registry, catalog: catalog}
}

// Types returns the record types that have settings configured.
func (s *Service) Types() []string {
	return s.registry.Types()
}

// Languages returns the available catalog languages.
func (s *Service) Languages() []string {
	if s.catalog == nil {
		return nil
	}

	return s.catalog.Languages()
}

// Language returns the catalog language chosen for the given preferences.
func (s *Service) Language(lang ...string) string {
	if s.catalog == nil {
		return ""
	}

	tag, _ := s.catalog.Match(lang...)

	return tag
}

func (s *Service) translator(lang []string) settings.Translator {
	if s.catalog == nil {
		return nil
	}

	return s.catalog.Translator(lang...)
}

// field resolves recordType and applies the stored default overrides.
func (s *Service) field(recordType string, tr settings.Translator) (*settings.Field, error) {
	if !s.registry.HasType(recordType) {
		return nil, errors.Wrapf(ErrUnknownRecordType, "record type [%s]", recordType)
	}

	f, err := s.registry.FieldFor(recordType, tr)
	if err != nil {
		return nil, err
	}

	overrides, err := override.List(s.db, recordType)
	if err != nil {
		return nil, err
	}

	for _, o := range overrides {
		f.UpdateDefaultForKey(o.SettingKey, o.Option)
	}

	return f, nil
}

// Field returns the localized settings field of recordType with the
// administrator's default overrides applied. lang holds language
// preferences, best first.
func (s *Service) Field(recordType string, lang ...string) (*settings.Field, error) {
	return s.field(recordType, s.translator(lang))
}

// Schema returns the localized effective schema of recordType.
func (s *Service) Schema(recordType string, lang ...string) (settings.Schema, error) {
	f, err := s.Field(recordType, lang...)
	if err != nil {
		return nil, err
	}

	return f.Source(), nil
}

// Overrides returns the default overrides stored for recordType.
func (s *Service) Overrides(recordType string) ([]models.DefaultOverride, error) {
	if !s.registry.HasType(recordType) {
		return nil, errors.Wrapf(ErrUnknownRecordType, "record type [%s]", recordType)
	}

	return override.List(s.db, recordType)
}

// Load returns record id and its settings field seeded with the stored values.
func (s *Service) Load(id uint64, lang ...string) (*models.Record, *settings.Field, error) {
	rec, err := record.Get(s.db, id)
	if err != nil {
		return nil, nil, err
	}

	f, err := s.Field(rec.Type, lang...)
	if err != nil {
		return nil, nil, err
	}

	if err = f.SetValue(settings.FromMultiValue(rec.ArbitrarySettings)); err != nil {
		return nil, nil, err
	}

	return rec, f, nil
}

// check rejects values that the schema cannot render.
func check(schema settings.Schema, values settings.Values) error {
	for key, val := range values {
		d, ok := schema.Get(key)
		if !ok {
			return errors.Wrapf(ErrUnknownSetting, "setting [%s]", key)
		}

		if !d.HasOption(val) {
			return errors.Wrapf(ErrUnknownOption, "setting [%s] option '%s'", key, val)
		}
	}

	return nil
}

// Save collapses in, checks it against the record's schema and replaces the
// stored settings. It returns the stored values.
func (s *Service) Save(id uint64, in settings.Input) (settings.Values, error) {
	rec, err := record.Get(s.db, id)
	if err != nil {
		return nil, err
	}

	values, err := settings.Collapse(in)
	if err != nil {
		savesTotal.WithLabelValues(rec.Type, resultRejected).Inc()
		return nil, err
	}

	f, err := s.field(rec.Type, nil)
	if err != nil {
		savesTotal.WithLabelValues(rec.Type, resultError).Inc()
		return nil, err
	}

	if err = check(f.Source(), values); err != nil {
		savesTotal.WithLabelValues(rec.Type, resultRejected).Inc()
		return nil, err
	}

	saved, err := record.SaveSettings(s.db, id, values)
	if err != nil {
		savesTotal.WithLabelValues(rec.Type, resultError).Inc()
		return nil, err
	}

	savesTotal.WithLabelValues(rec.Type, resultOK).Inc()
	log.Debug().Uint64("record", id).Str("type", rec.Type).Int("values", len(values)).Msg("record settings saved")

	return saved.ArbitrarySettings.Values(), nil
}

// SettingByName returns the value of setting name on record id. Without a
// stored value the effective default is returned when returnDefault is set.
func (s *Service) SettingByName(id uint64, name string, returnDefault bool) (string, bool, error) {
	rec, err := record.Get(s.db, id)
	if err != nil {
		return "", false, err
	}

	f, err := s.field(rec.Type, nil)
	if err != nil {
		return "", false, err
	}

	val, found := settings.SettingByName(rec.ArbitrarySettings.Values(), f.Source(), name, returnDefault)

	return val, found, nil
}

// Effective returns the value of every setting of record id, stored values
// over effective defaults.
func (s *Service) Effective(id uint64) (settings.Values, error) {
	rec, err := record.Get(s.db, id)
	if err != nil {
		return nil, err
	}

	f, err := s.field(rec.Type, nil)
	if err != nil {
		return nil, err
	}

	return settings.Effective(rec.ArbitrarySettings.Values(), f.Source()), nil
}

// SetDefault overrides the configured default of key for recordType.
func (s *Service) SetDefault(recordType, key, option string) error {
	if !s.registry.HasType(recordType) {
		return errors.Wrapf(ErrUnknownRecordType, "record type [%s]", recordType)
	}

	schema, err := s.registry.Resolve(recordType)
	if err != nil {
		return err
	}

	d, ok := schema.Get(key)
	if !ok {
		return errors.Wrapf(ErrUnknownSetting, "setting [%s]", key)
	}
	if !d.HasOption(option) {
		return errors.Wrapf(ErrUnknownOption, "setting [%s] option '%s'", key, option)
	}

	if _, err = override.Set(s.db, recordType, key, option); err != nil {
		return err
	}

	defaultChangesTotal.WithLabelValues(recordType, "set").Inc()
	log.Info().Str("type", recordType).Str("key", key).Str("option", option).Msg("default override set")

	return nil
}

// ClearDefault removes the default override of key for recordType.
func (s *Service) ClearDefault(recordType, key string) error {
	if err := override.Delete(s.db, recordType, key); err != nil {
		return err
	}

	defaultChangesTotal.WithLabelValues(recordType, "clear").Inc()
	log.Info().Str("type", recordType).Str("key", key).Msg("default override cleared")

	return nil
}

// CreateRecord stores a new record of a configured record type.
func (s *Service) CreateRecord(recordType, title string) (*models.Record, error) {
	if !s.registry.HasType(recordType) {
		return nil, errors.Wrapf(ErrUnknownRecordType, "record type [%s]", recordType)
	}

	return record.Create(s.db, recordType, title, nil)
}

// Record returns record id.
func (s *Service) Record(id uint64) (*models.Record, error) {
	return record.Get(s.db, id)
}

// Records returns all records, optionally limited to recordType.
func (s *Service) Records(recordType string) ([]models.Record, error) {
	return record.GetAll(s.db, recordType)
}

// DeleteRecord deletes record id.
func (s *Service) DeleteRecord(id uint64) error {
	return record.Delete(s.db, id)
}
