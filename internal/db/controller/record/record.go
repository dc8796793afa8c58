// Package record provides CRUD operations for records and their settings column.
package record

import (
	"errors"

	"gorm.io/gorm"

	"github.com/recordsettings/recordsettings/internal/db/models"
	"github.com/recordsettings/recordsettings/internal/settings"
)

const (
	typeQueryPattern = "type = ?"
)

var (
	// ErrRecordNotFound is returned when a record is not found.
	ErrRecordNotFound = errors.New("record not found")
	// ErrRecordTypeEmpty is returned when creating a record without a type.
	ErrRecordTypeEmpty = errors.New("record type cannot be empty")
	// ErrDBNil is returned when the database connection is nil.
	ErrDBNil = errors.New("database connection is nil")
)

// PersistedValue is the pre-save transform from any settings input to the
// stored column value.
func PersistedValue(in settings.Input) (models.SettingsColumn, error) {
	v, err := settings.Collapse(in)
	if err != nil {
		return nil, err
	}

	return models.SettingsColumn(v), nil
}

// Get retrieves a record by its ID.
func Get(db *gorm.DB, id uint64) (*models.Record, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	var rec models.Record
	result := db.First(&rec, id)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, result.Error
	}

	return &rec, nil
}

// GetAll retrieves all records, optionally limited to one record type.
func GetAll(db *gorm.DB, recordType string) ([]models.Record, error) {
	if db == nil {
		return nil, ErrDBNil
	}

	query := db.Order("id")
	if recordType != "" {
		query = query.Where(typeQueryPattern, recordType)
	}

	records := []models.Record{}
	if result := query.Find(&records); result.Error != nil {
		return nil, result.Error
	}

	return records, nil
}

// Create creates a new record. in may be nil for a record without stored settings.
func Create(db *gorm.DB, recordType, title string, in settings.Input) (*models.Record, error) {
	if db == nil {
		return nil, ErrDBNil
	}
	if recordType == "" {
		return nil, ErrRecordTypeEmpty
	}

	column, err := PersistedValue(in)
	if err != nil {
		return nil, err
	}

	rec := &models.Record{
		Type:              recordType,
		Title:             title,
		ArbitrarySettings: column,
	}

	if result := db.Create(rec); result.Error != nil {
		return nil, result.Error
	}

	return rec, nil
}

// SaveSettings collapses in and overwrites the settings column of record id.
func SaveSettings(db *gorm.DB, id uint64, in settings.Input) (*models.Record, error) {
	rec, err := Get(db, id)
	if err != nil {
		return nil, err
	}

	column, err := PersistedValue(in)
	if err != nil {
		return nil, err
	}

	rec.ArbitrarySettings = column
	if result := db.Save(rec); result.Error != nil {
		return nil, result.Error
	}

	return rec, nil
}

// Delete deletes a record by ID.
func Delete(db *gorm.DB, id uint64) error {
	if db == nil {
		return ErrDBNil
	}

	result := db.Delete(&models.Record{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}

	return nil
}
