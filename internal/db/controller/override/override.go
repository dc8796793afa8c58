// Package override stores per record type replacements of setting defaults.
package override

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/recordsettings/recordsettings/internal/db/models"
)

const (
	typeQueryPattern    = "record_type = ?"
	typeKeyQueryPattern = "record_type = ? AND setting_key = ?"
)

var (
	// ErrOverrideNotFound is returned when no override exists for a setting.
	ErrOverrideNotFound = errors.New("default override not found")
	// ErrKeyEmpty is returned when the record type or setting key is empty.
	ErrKeyEmpty = errors.New("record type and setting key cannot be empty")
	// ErrOptionEmpty is returned when the overriding option is empty.
	ErrOptionEmpty = errors.New("default override option cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// List returns the overrides of a record type ordered by setting key.
func List(db *gorm.DB, recordType string) ([]models.DefaultOverride, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	overrides := []models.DefaultOverride{}
	result := db.Where(typeQueryPattern, recordType).Order("setting_key").Find(&overrides)
	if result.Error != nil {
		return nil, result.Error
	}

	return overrides, nil
}

// Set creates or replaces the default override of one setting.
func Set(db *gorm.DB, recordType, key, option string) (*models.DefaultOverride, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if recordType == "" || key == "" {
		return nil, ErrKeyEmpty
	}
	if option == "" {
		return nil, ErrOptionEmpty
	}

	o := &models.DefaultOverride{
		RecordType: recordType,
		SettingKey: key,
		Option:     option,
	}

	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "record_type"}, {Name: "setting_key"}},
		DoUpdates: clause.AssignmentColumns([]string{"option"}),
	}).Create(o)
	if result.Error != nil {
		return nil, result.Error
	}

	return o, nil
}

// Delete removes the default override of one setting.
func Delete(db *gorm.DB, recordType, key string) error {
	if db == nil {
		return ErrDBNil
	}
	if recordType == "" || key == "" {
		return ErrKeyEmpty
	}

	result := db.Where(typeKeyQueryPattern, recordType, key).Delete(&models.DefaultOverride{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOverrideNotFound
	}

	return nil
}
