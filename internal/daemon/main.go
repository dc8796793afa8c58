// Package daemon wires configuration, settings schema, translations,
// database and web service into the running application.
package daemon

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/recordsettings/recordsettings/internal/config"
	"github.com/recordsettings/recordsettings/internal/db"
	"github.com/recordsettings/recordsettings/internal/editor"
	"github.com/recordsettings/recordsettings/internal/web"
)

// ErrConfigNil is returned when the daemon is created without configuration.
var ErrConfigNil = errors.New("config is nil")

// Daemon represents the main application daemon.
type Daemon struct {
	cfg        *config.Config
	editor     *editor.Service
	webService *web.Service
}

// Start runs the web service until a shutdown signal arrives.
func (d *Daemon) Start() error {
	addr := ":" + strconv.Itoa(d.cfg.Webserver.Port)
	done := make(chan error, 1)

	go func() {
		done <- d.webService.Start(addr)
	}()

	log.Info().Str("addr", addr).Str("url", d.cfg.Webserver.URL).Msg("web service started")

	d.webService.WaitShutdown()

	return <-done
}

// New creates a new Daemon instance with the provided configuration.
// Settings configuration errors abort the start.
func New(cfg *config.Config) (*Daemon, error) {
	if cfg == nil {
		return nil, ErrConfigNil
	}

	registry, catalog, err := LoadSettings(cfg)
	if err != nil {
		return nil, err
	}

	conn, err := db.Open(cfg)
	if err != nil {
		return nil, err
	}

	editorService := editor.NewService(conn, registry, catalog)

	if cfg.DevMode {
		if err = seed(editorService); err != nil {
			return nil, err
		}
	}

	return &Daemon{
		cfg:        cfg,
		editor:     editorService,
		webService: web.New(cfg, editorService),
	}, nil
}
