package models

import (
	"time"
)

// Record is a persisted item of some record type carrying arbitrary settings.
type Record struct {
	// ID is the unique identifier of the record.
	ID uint64 `gorm:"primaryKey" json:"id"`
	// Type selects the settings schema, e.g. "Page" or "Article".
	Type string `gorm:"size:100;not null;index" json:"type"`
	// Title is a human readable name.
	Title string `gorm:"size:255" json:"title"`
	// ArbitrarySettings holds the chosen option per setting key.
	ArbitrarySettings SettingsColumn `json:"settings"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
