// Package records serves the json api of records and their settings.
package records

import (
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/recordsettings/recordsettings/internal/config"
	"github.com/recordsettings/recordsettings/internal/editor"
	"github.com/recordsettings/recordsettings/internal/settings"
	"github.com/recordsettings/recordsettings/internal/web/handler"
)

const (
	// Path is the base path of the records api.
	Path = "/api/records"

	paramName    = "name"
	queryType    = "type"
	queryDefault = "default"
)

// Service is the records api handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	editor    *editor.Service
	validator *validator.Validate
}

// CreateInput is the body of a record creation request.
type CreateInput struct {
	Type  string `json:"type"  validate:"required,max=100"`
	Title string `json:"title" validate:"max=255"`
}

// SettingResponse answers a single setting lookup.
type SettingResponse struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
	Found bool   `json:"found"`
}

var (
	// Handler is the records api handler.
	Handler = Service{}
)

// Init initializes the records api handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, editorService *editor.Service) {
	if app == nil || cfg == nil || editorService == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.editor = editorService
	s.validator = validator.New()

	api := app.Group(Path)
	api.Get(handler.RootPath, s.List)
	api.Post(handler.RootPath, s.Create)
	api.Get("/:id", s.Get)
	api.Delete("/:id", s.Delete)
	api.Get("/:id/settings", s.Settings)
	api.Put("/:id/settings", s.SaveSettings)
	api.Get("/:id/settings/:"+paramName, s.Setting)
}

// List returns all records, optionally filtered by ?type=.
func (s *Service) List(c *fiber.Ctx) error {
	recs, err := s.editor.Records(c.Query(queryType))
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(recs)
}

// Create stores a new record of a configured record type.
func (s *Service) Create(c *fiber.Ctx) error {
	var in CreateInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := s.validator.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	rec, err := s.editor.CreateRecord(in.Type, in.Title)
	if err != nil {
		return handler.JSONError(c, err)
	}

	log.Info().Uint64("record", rec.ID).Str("type", rec.Type).Msg("record created")

	return c.Status(fiber.StatusCreated).JSON(rec)
}

// Get returns one record.
func (s *Service) Get(c *fiber.Ctx) error {
	id, err := handler.RecordID(c)
	if err != nil {
		return handler.JSONError(c, err)
	}

	rec, err := s.editor.Record(id)
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(rec)
}

// Delete removes one record.
func (s *Service) Delete(c *fiber.Ctx) error {
	id, err := handler.RecordID(c)
	if err != nil {
		return handler.JSONError(c, err)
	}

	if err = s.editor.DeleteRecord(id); err != nil {
		return handler.JSONError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// Settings returns the effective value of every setting of a record.
func (s *Service) Settings(c *fiber.Ctx) error {
	id, err := handler.RecordID(c)
	if err != nil {
		return handler.JSONError(c, err)
	}

	values, err := s.editor.Effective(id)
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(values)
}

// SaveSettings replaces the stored settings with a json object of key/option pairs.
func (s *Service) SaveSettings(c *fiber.Ctx) error {
	id, err := handler.RecordID(c)
	if err != nil {
		return handler.JSONError(c, err)
	}

	in := settings.Values{}
	if err = c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	saved, err := s.editor.Save(id, in)
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(saved)
}

// Setting looks up a single setting. ?default=false disables the fallback
// to the effective default.
func (s *Service) Setting(c *fiber.Ctx) error {
	id, err := handler.RecordID(c)
	if err != nil {
		return handler.JSONError(c, err)
	}

	returnDefault := true
	if raw := c.Query(queryDefault); raw != "" {
		if returnDefault, err = strconv.ParseBool(raw); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid default flag"})
		}
	}

	name := c.Params(paramName)

	val, found, err := s.editor.SettingByName(id, name, returnDefault)
	if err != nil {
		return handler.JSONError(c, err)
	}

	resp := SettingResponse{Name: name, Value: val, Found: found}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(resp)
	}

	return c.JSON(resp)
}
