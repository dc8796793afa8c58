package editor

import "errors"

var (
	// ErrUnknownRecordType is returned for record types without settings configuration.
	ErrUnknownRecordType = errors.New("unknown record type")
	// ErrUnknownSetting is returned when a value names a setting the schema does not define.
	ErrUnknownSetting = errors.New("unknown setting")
	// ErrUnknownOption is returned when a value is not one of the setting's options.
	ErrUnknownOption = errors.New("unknown option")
)
