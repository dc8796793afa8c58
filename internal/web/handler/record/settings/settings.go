// Package recordsettings renders the settings form of a record and stores
// the submitted rows.
package recordsettings

import (
	"errors"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/recordsettings/recordsettings/internal/config"
	"github.com/recordsettings/recordsettings/internal/db/models"
	"github.com/recordsettings/recordsettings/internal/editor"
	"github.com/recordsettings/recordsettings/internal/settings"
	"github.com/recordsettings/recordsettings/internal/web/handler"
	"github.com/recordsettings/recordsettings/internal/web/navigation"
)

const (
	// Path is the base path of the record pages.
	Path = "/records"

	// TemplateList is the name of the record list template.
	TemplateList = "records/list"

	// TemplateName is the name of the record settings template.
	TemplateName = "records/settings"

	navSection = "records"
)

// Service is the record settings form handler service.
type Service struct {
	handler.Service
	cfg       *config.Config
	editor    *editor.Service
	validator *validator.Validate
}

var (
	// Handler is the record settings form handler.
	Handler = Service{}
)

// Init initializes the record settings form handler.
func (s *Service) Init(app *fiber.App, cfg *config.Config, editorService *editor.Service) {
	if app == nil || cfg == nil || editorService == nil {
		log.Fatal().Msg(handler.ErrNilACDFatalLogMsg)
		return
	}

	s.cfg = cfg
	s.editor = editorService
	s.validator = validator.New()

	app.Get(Path, s.List)
	app.Get(Path+"/:id/settings", s.Get)
	app.Post(Path+"/:id/settings", s.Post)
}

// List renders all records with links to their settings.
func (s *Service) List(c *fiber.Ctx) error {
	nav := navigation.NewContext("Records", navSection, "list").
		AddBreadcrumb("Records", Path, true)

	recs, err := s.editor.Records(c.Query("type"))
	if err != nil {
		log.Error().Err(err).Msg("failed to list records")

		return c.Status(fiber.StatusInternalServerError).Render(TemplateList, fiber.Map{
			"Navigation": nav,
			"Error":      "Failed to load records",
		}, handler.BaseLayout)
	}

	return c.Render(TemplateList, fiber.Map{
		"Navigation": nav,
		"Records":    recs,
		"Types":      s.editor.Types(),
	}, handler.BaseLayout)
}

func settingsPath(id uint64) string {
	return Path + "/" + strconv.FormatUint(id, 10) + "/settings"
}

func newNavigation(rec *models.Record, f *settings.Field) *navigation.Context {
	title := rec.Title
	if title == "" {
		title = rec.Type + " #" + strconv.FormatUint(rec.ID, 10)
	}

	return navigation.NewContext(f.Title(), navSection, "settings").
		AddBreadcrumb("Records", Path, false).
		AddBreadcrumb(title, "#", false).
		AddBreadcrumb(f.Title(), settingsPath(rec.ID), true)
}

// page builds the template data of the settings form.
func page(rec *models.Record, f *settings.Field, lang string) fiber.Map {
	return fiber.Map{
		"Navigation": newNavigation(rec, f),
		"Record":     rec,
		"Field":      f,
		"Settings":   f.Settings(),
		"Action":     settingsPath(rec.ID),
		"Language":   lang,
	}
}

// load renders the error page itself and returns ok=false when the record
// or its field cannot be built.
func (s *Service) load(c *fiber.Ctx) (*models.Record, *settings.Field, bool, error) {
	id, err := handler.RecordID(c)
	if err == nil {
		var (
			rec *models.Record
			f   *settings.Field
		)

		rec, f, err = s.editor.Load(id, handler.Languages(c)...)
		if err == nil {
			return rec, f, true, nil
		}
	}

	status := handler.Status(err)
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Msg("failed to load record settings")
	}

	nav := navigation.NewContext("Settings", navSection, "settings").
		AddBreadcrumb("Records", Path, false)

	return nil, nil, false, c.Status(status).Render(TemplateName, fiber.Map{
		"Navigation": nav,
		"Error":      handler.ErrorMessage(err),
	}, handler.BaseLayout)
}

// Get renders the settings form of a record.
func (s *Service) Get(c *fiber.Ctx) error {
	rec, f, ok, err := s.load(c)
	if !ok {
		return err
	}

	return c.Render(TemplateName, page(rec, f, s.editor.Language(handler.Languages(c)...)), handler.BaseLayout)
}

// submittedRows returns the values posted under name, for url encoded and
// multipart forms.
func submittedRows(c *fiber.Ctx, name string) []string {
	if form, err := c.MultipartForm(); err == nil {
		return form.Value[name]
	}

	raw := c.Request().PostArgs().PeekMulti(name)
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		out = append(out, string(v))
	}

	return out
}

// validationMessages lists one message per failed field of err. Errors that
// are not validation errors get a single generic message.
func validationMessages(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{"Submitted settings are invalid"}
	}

	errorMessages := make([]string, len(validationErrors))
	for i, ve := range validationErrors {
		errorMessages[i] = "Field '" + ve.Field() + "' failed validation tag '" + ve.Tag() + "'"
	}

	return errorMessages
}

// Post stores the submitted settings rows of a record.
func (s *Service) Post(c *fiber.Ctx) error {
	rec, f, ok, err := s.load(c)
	if !ok {
		return err
	}

	lang := s.editor.Language(handler.Languages(c)...)

	payload := settings.Payload{
		Keys: submittedRows(c, f.KeyName()),
		Vals: submittedRows(c, f.ValueName()),
	}

	if err = s.validator.Struct(payload); err != nil {
		log.Warn().Err(err).Uint64("record", rec.ID).Msg("validation failed for record settings")

		data := page(rec, f, lang)
		data["Error"] = validationMessages(err)

		return c.Status(fiber.StatusBadRequest).Render(TemplateName, data, handler.BaseLayout)
	}

	saved, err := s.editor.Save(rec.ID, payload)
	if err != nil {
		status := handler.Status(err)
		if status == fiber.StatusInternalServerError {
			log.Error().Err(err).Uint64("record", rec.ID).Msg("failed to save record settings")
		}

		data := page(rec, f, lang)
		data["Error"] = handler.ErrorMessage(err)

		return c.Status(status).Render(TemplateName, data, handler.BaseLayout)
	}

	if err = f.SetValue(saved); err != nil {
		return err
	}

	log.Info().Uint64("record", rec.ID).Str("type", rec.Type).Msg("record settings saved successfully")

	data := page(rec, f, lang)
	data["Success"] = "Settings saved successfully"

	return c.Render(TemplateName, data, handler.BaseLayout)
}
