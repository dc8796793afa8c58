package config

import (
	"github.com/recordsettings/recordsettings/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Settings  Settings
}

// Webserver implement webserver settings.
type Webserver struct {
	DisableRecover bool   // disable recover middleware
	Port           int    // listening port for the webserver
	ShutDownTime   int    // wait time for shutdown
	URL            string // base url for the webserver
	CheckAliveURI  string // path answering load balancer health checks
}

// Settings locates the record settings schema and its translations.
type Settings struct {
	SchemaFile      string // yaml file with presets and per record type settings
	LangDir         string // directory holding <lang>.yaml catalogs
	DefaultLanguage string // catalog used when the client does not ask for one
}
