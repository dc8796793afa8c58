package handler

import (
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	pkgerrors "github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/recordsettings/recordsettings/internal/db/controller/override"
	"github.com/recordsettings/recordsettings/internal/db/controller/record"
	"github.com/recordsettings/recordsettings/internal/editor"
	"github.com/recordsettings/recordsettings/internal/settings"
)

func TestStatus(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{name: "record not found", err: record.ErrRecordNotFound, expected: fiber.StatusNotFound},
		{name: "wrapped unknown type", err: pkgerrors.Wrap(editor.ErrUnknownRecordType, "x"), expected: fiber.StatusNotFound},
		{name: "override not found", err: override.ErrOverrideNotFound, expected: fiber.StatusNotFound},
		{name: "invalid id", err: ErrInvalidID, expected: fiber.StatusBadRequest},
		{name: "unknown option", err: pkgerrors.Wrap(editor.ErrUnknownOption, "x"), expected: fiber.StatusBadRequest},
		{name: "mismatched rows", err: settings.ErrPayloadLengthMismatch, expected: fiber.StatusBadRequest},
		{name: "anything else", err: errors.New("boom"), expected: fiber.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Status(tc.err))
		})
	}
}

func TestErrorMessage(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected string
	}{
		{name: "client error keeps its text", err: record.ErrRecordNotFound, expected: "record not found"},
		{name: "internal error is hidden", err: errors.New("SQL logic error: no such table: records"), expected: fiber.ErrInternalServerError.Message},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ErrorMessage(tc.err))
		})
	}
}

func TestRecordID(t *testing.T) {
	app := fiber.New()
	app.Get("/:id", func(c *fiber.Ctx) error {
		if _, err := RecordID(c); err != nil {
			return JSONError(c, err)
		}

		return c.SendStatus(fiber.StatusNoContent)
	})

	testCases := map[string]int{
		"/12":  fiber.StatusNoContent,
		"/0":   fiber.StatusBadRequest,
		"/-1":  fiber.StatusBadRequest,
		"/abc": fiber.StatusBadRequest,
		"/1.5": fiber.StatusBadRequest,
	}

	for path, expected := range testCases {
		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, path, http.NoBody), -1)
		require.NoError(t, err)
		assert.Equal(t, expected, resp.StatusCode, path)
		_ = resp.Body.Close()
	}
}

func TestLanguages(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(Languages(c))
	})

	req := httptest.NewRequest(fiber.MethodGet, "/?lang=de", http.NoBody)
	req.Header.Set(fiber.HeaderAcceptLanguage, "en-US,en;q=0.9")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `["de","en-US,en;q=0.9"]`, string(body))
}
