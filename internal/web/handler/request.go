package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"github.com/recordsettings/recordsettings/internal/db/controller/override"
	"github.com/recordsettings/recordsettings/internal/db/controller/record"
	"github.com/recordsettings/recordsettings/internal/editor"
	"github.com/recordsettings/recordsettings/internal/settings"
)

// ErrInvalidID is returned for a non numeric record id.
var ErrInvalidID = errors.New("invalid record id")

// RecordID parses the :id route parameter.
func RecordID(c *fiber.Ctx) (uint64, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil || id == 0 {
		return 0, ErrInvalidID
	}

	return id, nil
}

// Languages returns the language preferences of the request, best first:
// the lang query parameter, then the Accept-Language header.
func Languages(c *fiber.Ctx) []string {
	return []string{c.Query(QueryLang), c.Get(fiber.HeaderAcceptLanguage)}
}

// Status maps a service error to its http status code.
func Status(err error) int {
	switch {
	case errors.Is(err, record.ErrRecordNotFound),
		errors.Is(err, override.ErrOverrideNotFound),
		errors.Is(err, editor.ErrUnknownRecordType):
		return fiber.StatusNotFound
	case errors.Is(err, ErrInvalidID),
		errors.Is(err, record.ErrRecordTypeEmpty),
		errors.Is(err, override.ErrKeyEmpty),
		errors.Is(err, override.ErrOptionEmpty),
		errors.Is(err, editor.ErrUnknownSetting),
		errors.Is(err, editor.ErrUnknownOption),
		errors.Is(err, settings.ErrPayloadLengthMismatch):
		return fiber.StatusBadRequest
	default:
		return fiber.StatusInternalServerError
	}
}

// ErrorMessage is the text of err shown to the client. Internal errors are
// replaced by a generic message.
func ErrorMessage(err error) string {
	if Status(err) == fiber.StatusInternalServerError {
		return fiber.ErrInternalServerError.Message
	}

	return err.Error()
}

// JSONError writes err as a json error document with the mapped status code.
// Internal errors are logged and not exposed.
func JSONError(c *fiber.Ctx, err error) error {
	status := Status(err)
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("request failed")
	}

	return c.Status(status).JSON(fiber.Map{"error": ErrorMessage(err)})
}
