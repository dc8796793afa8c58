package i18n

import "errors"

var (
	// ErrNoCatalogs is returned when a directory holds no catalog files.
	ErrNoCatalogs = errors.New("no translation catalogs found")
	// ErrInvalidCatalogValue is returned for sequences inside a catalog.
	ErrInvalidCatalogValue = errors.New("catalog values must be strings or mappings")
	// ErrUnknownDefaultLanguage is returned when no catalog matches the default language.
	ErrUnknownDefaultLanguage = errors.New("no catalog for default language")
)
