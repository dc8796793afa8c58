package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("config webserver.port listening port can not be 0")

	// ErrEmptySchemaFile error if config settings.schemaFile is empty.
	ErrEmptySchemaFile = errors.New("config settings.schemaFile can not be empty")

	// ErrUnknownDBEngine error if config db.gormEngine is not supported.
	ErrUnknownDBEngine = errors.New("config db.gormEngine must be one of mysql, postgres, sqlite")
)
