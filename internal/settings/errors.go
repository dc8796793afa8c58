package settings

import "errors"

var (
	// ErrSettingsNotArray is returned when a record type's settings are neither
	// a list of preset names nor a mapping of definitions.
	ErrSettingsNotArray = errors.New("settings source should be a list or a mapping")

	// ErrNoPresets is returned when settings name presets but no preset table is configured.
	ErrNoPresets = errors.New("settings reference presets but no presets are defined")

	// ErrNoOptions is returned when a setting has no options.
	ErrNoOptions = errors.New("no options defined")

	// ErrNoDefault is returned when a setting has no default value.
	ErrNoDefault = errors.New("no default value defined")

	// ErrDefaultNotInOptions is returned when a setting's default is not one of its options.
	ErrDefaultNotInOptions = errors.New("default value not found in options")

	// ErrDuplicateSetting is returned when a schema declares the same setting key twice.
	ErrDuplicateSetting = errors.New("setting defined more than once")

	// ErrDuplicateOption is returned when a setting declares the same option key twice.
	ErrDuplicateOption = errors.New("option defined more than once")

	// ErrEmptySettingKey is returned when a setting has an empty key.
	ErrEmptySettingKey = errors.New("setting key can not be empty")

	// ErrPayloadLengthMismatch is returned when submitted key and value rows differ in count.
	ErrPayloadLengthMismatch = errors.New("submitted keys and values differ in length")
)

var (
	// ErrMalformedDefinition is returned when a definition in the schema file is not a mapping.
	ErrMalformedDefinition = errors.New("setting definition should be a mapping")

	// ErrMalformedSchemaFile is returned when the schema file root is not a mapping.
	ErrMalformedSchemaFile = errors.New("settings schema file should be a mapping")
)
