package models

import (
	"database/sql/driver"
	"fmt"

	json "github.com/goccy/go-json"

	"github.com/recordsettings/recordsettings/internal/settings"
)

// SettingsColumn is the stored key/value map of a record's settings,
// persisted as a JSON object in a single text column.
type SettingsColumn map[string]string

// GormDataType tells gorm which column type to migrate.
func (SettingsColumn) GormDataType() string {
	return "text"
}

// Value implements driver.Valuer.
func (c SettingsColumn) Value() (driver.Value, error) {
	if c == nil {
		return nil, nil
	}

	out, err := json.Marshal(map[string]string(c))
	if err != nil {
		return nil, err
	}

	return string(out), nil
}

// Scan implements sql.Scanner.
func (c *SettingsColumn) Scan(src any) error {
	var data []byte

	switch v := src.(type) {
	case nil:
		*c = nil
		return nil
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedColumnType, src)
	}

	if len(data) == 0 {
		*c = nil
		return nil
	}

	m := map[string]string{}
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}

	*c = m

	return nil
}

// MultiValues implements settings.MultiValuer.
func (c SettingsColumn) MultiValues() map[string]string {
	return c
}

// Values returns the stored map as settings values.
func (c SettingsColumn) Values() settings.Values {
	return settings.Values(c).Clone()
}
