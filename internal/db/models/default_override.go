package models

// DefaultOverride replaces the configured default of one setting for a record type.
type DefaultOverride struct {
	ID         uint64 `gorm:"primaryKey"                                       json:"-"`
	RecordType string `gorm:"size:100;not null;uniqueIndex:idx_override_type_key" json:"recordType"`
	SettingKey string `gorm:"size:100;not null;uniqueIndex:idx_override_type_key" json:"key"`
	Option     string `gorm:"size:255;not null"                                json:"option"`
}
