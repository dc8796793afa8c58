package models

import "errors"

// ErrUnsupportedColumnType is returned when a settings column is scanned from an unexpected type.
var ErrUnsupportedColumnType = errors.New("unsupported settings column type")
