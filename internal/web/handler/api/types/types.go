// Package types serves the settings schema of each record type and the
// administration of default overrides.
package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/recordsettings/recordsettings/internal/config"
	"github.com/recordsettings/recordsettings/internal/editor"
	"github.com/recordsettings/recordsettings/internal/settings"
	"github.com/recordsettings/recordsettings/internal/web/handler"
)

const (
	// Path is the base path of the record types api.
	Path = "/api/types"

	paramType = "type"
	paramKey  = "key"
)

// Service is the record types api handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	editor    *editor.Service
	validator *validator.Validate
}

// DefaultInput is the body of a default override request.
type DefaultInput struct {
	Option string `json:"option" validate:"required,max=255"`
}

// OptionResponse is one option of a setting.
type OptionResponse struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Selected bool   `json:"default"`
}

// SettingResponse is one setting of a schema.
type SettingResponse struct {
	Key         string           `json:"key"`
	Label       string           `json:"label"`
	Description string           `json:"description,omitempty"`
	Default     string           `json:"default"`
	Options     []OptionResponse `json:"options"`
}

// SchemaResponse is the localized schema of a record type.
type SchemaResponse struct {
	Type     string            `json:"type"`
	Language string            `json:"language,omitempty"`
	Title    string            `json:"title"`
	Field    string            `json:"field"`
	Settings []SettingResponse `json:"settings"`
}

var (
	// Handler is the record types api handler.
	Handler = Service{}
)

// Init initializes the record types api handler.
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
	api.Get("/:"+paramType+"/schema", s.Schema)
	api.Get("/:"+paramType+"/defaults", s.Defaults)
	api.Put("/:"+paramType+"/defaults/:"+paramKey, s.SetDefault)
	api.Delete("/:"+paramType+"/defaults/:"+paramKey, s.ClearDefault)
}

// List returns the configured record types.
func (s *Service) List(c *fiber.Ctx) error {
	return c.JSON(s.editor.Types())
}

// Schema returns the localized schema of a record type, defaults overridden.
func (s *Service) Schema(c *fiber.Ctx) error {
	recordType := c.Params(paramType)
	langs := handler.Languages(c)

	f, err := s.editor.Field(recordType, langs...)
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(SchemaResponse{
		Type:     recordType,
		Language: s.editor.Language(langs...),
		Title:    f.Title(),
		Field:    f.Name(),
		Settings: toResponse(f.Source()),
	})
}

func toResponse(schema settings.Schema) []SettingResponse {
	out := make([]SettingResponse, 0, len(schema))
	for _, d := range schema {
		opts := make([]OptionResponse, 0, len(d.Options))
		for _, o := range d.Options {
			opts = append(opts, OptionResponse{Key: o.Key, Label: o.Label, Selected: o.Key == d.Default})
		}

		out = append(out, SettingResponse{
			Key:         d.Key,
			Label:       d.Label,
			Description: d.Description,
			Default:     d.Default,
			Options:     opts,
		})
	}

	return out
}

// Defaults lists the default overrides of a record type.
func (s *Service) Defaults(c *fiber.Ctx) error {
	overrides, err := s.editor.Overrides(c.Params(paramType))
	if err != nil {
		return handler.JSONError(c, err)
	}

	return c.JSON(overrides)
}

// SetDefault overrides the default option of one setting.
func (s *Service) SetDefault(c *fiber.Ctx) error {
	var in DefaultInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	if err := s.validator.Struct(in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := s.editor.SetDefault(c.Params(paramType), c.Params(paramKey), in.Option); err != nil {
		return handler.JSONError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ClearDefault restores the configured default of one setting.
func (s *Service) ClearDefault(c *fiber.Ctx) error {
	if err := s.editor.ClearDefault(c.Params(paramType), c.Params(paramKey)); err != nil {
		return handler.JSONError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}
