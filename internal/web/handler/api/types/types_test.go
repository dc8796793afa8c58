package types

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	json "github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/recordsettings/recordsettings/internal/config"
	"github.com/recordsettings/recordsettings/internal/db"
	"github.com/recordsettings/recordsettings/internal/editor"
	"github.com/recordsettings/recordsettings/internal/i18n"
	"github.com/recordsettings/recordsettings/internal/settings"
)

const testSchema = `
presets:
  theme:
    label: Theme
    description: Colour scheme
    default: light
    options: {light: Light, dark: Dark}
  layout:
    label: Layout
    default: wide
    options: {wide: Wide, narrow: Narrow}
types:
  Page: [theme, layout]
  Article:
    columns:
      label: Columns
      default: "2"
      options: {"1": One, "2": Two}
`

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Migrate(conn))

	registry, err := settings.ParseRegistry([]byte(testSchema))
	require.NoError(t, err)

	catalog, err := i18n.New("en", map[string]i18n.Messages{
		"en": {},
		"de": {
			settings.FieldLabelKey:                      "Einstellungen",
			settings.LabelKey("Page", "theme"):          "Farbschema",
			settings.DescriptionKey("Page", "theme"):    "Farbschema der Seite",
			settings.OptionKey("Page", "theme", "dark"): "Dunkel",
		},
	})
	require.NoError(t, err)

	app := fiber.New(fiber.Config{JSONEncoder: json.Marshal, JSONDecoder: json.Unmarshal})
	svc := &Service{}
	svc.Init(app, &config.Config{}, editor.NewService(conn, registry, catalog))

	return app
}

func do(t *testing.T, app *fiber.App, req *http.Request) (int, string) {
	t.Helper()

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	defer func() {
		_ = resp.Body.Close()
	}()

	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(out)
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	return req
}

func TestList(t *testing.T) {
	app := newTestApp(t)

	status, body := do(t, app, httptest.NewRequest(fiber.MethodGet, Path, http.NoBody))
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `["Article","Page"]`, body)
}

func TestSchema(t *testing.T) {
	app := newTestApp(t)

	status, body := do(t, app, httptest.NewRequest(fiber.MethodGet, Path+"/Page/schema", http.NoBody))
	require.Equal(t, fiber.StatusOK, status)

	var schema SchemaResponse
	require.NoError(t, json.Unmarshal([]byte(body), &schema))
	assert.Equal(t, "en", schema.Language)
	assert.Equal(t, "Settings", schema.Title)
	assert.Equal(t, settings.DefaultFieldName, schema.Field)
	require.Len(t, schema.Settings, 2)
	assert.Equal(t, "theme", schema.Settings[0].Key)
	assert.Equal(t, "Theme", schema.Settings[0].Label)
	assert.Equal(t, "layout", schema.Settings[1].Key)

	req := httptest.NewRequest(fiber.MethodGet, Path+"/Page/schema", http.NoBody)
	req.Header.Set(fiber.HeaderAcceptLanguage, "de-DE,de;q=0.9")

	status, body = do(t, app, req)
	require.Equal(t, fiber.StatusOK, status)
	require.NoError(t, json.Unmarshal([]byte(body), &schema))
	assert.Equal(t, "de", schema.Language)
	assert.Equal(t, "Einstellungen", schema.Title)
	assert.Equal(t, "Farbschema", schema.Settings[0].Label)
	assert.Equal(t, "Farbschema der Seite", schema.Settings[0].Description)
	assert.Equal(t, []OptionResponse{
		{Key: "light", Label: "Light", Selected: true},
		{Key: "dark", Label: "Dunkel", Selected: false},
	}, schema.Settings[0].Options)

	// the query parameter wins over the header
	req = httptest.NewRequest(fiber.MethodGet, Path+"/Page/schema?lang=en", http.NoBody)
	req.Header.Set(fiber.HeaderAcceptLanguage, "de")

	_, body = do(t, app, req)
	require.NoError(t, json.Unmarshal([]byte(body), &schema))
	assert.Equal(t, "en", schema.Language)

	status, _ = do(t, app, httptest.NewRequest(fiber.MethodGet, Path+"/Nope/schema", http.NoBody))
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestDefaults(t *testing.T) {
	app := newTestApp(t)

	testCases := []struct {
		name     string
		req      *http.Request
		expected int
	}{
		{
			name:     "set",
			req:      jsonRequest(fiber.MethodPut, Path+"/Page/defaults/theme", `{"option":"dark"}`),
			expected: fiber.StatusNoContent,
		},
		{
			name:     "missing option",
			req:      jsonRequest(fiber.MethodPut, Path+"/Page/defaults/theme", `{}`),
			expected: fiber.StatusBadRequest,
		},
		{
			name:     "unknown option",
			req:      jsonRequest(fiber.MethodPut, Path+"/Page/defaults/theme", `{"option":"neon"}`),
			expected: fiber.StatusBadRequest,
		},
		{
			name:     "unknown setting",
			req:      jsonRequest(fiber.MethodPut, Path+"/Page/defaults/nope", `{"option":"dark"}`),
			expected: fiber.StatusBadRequest,
		},
		{
			name:     "unknown type",
			req:      jsonRequest(fiber.MethodPut, Path+"/Nope/defaults/theme", `{"option":"dark"}`),
			expected: fiber.StatusNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, _ := do(t, app, tc.req)
			assert.Equal(t, tc.expected, status)
		})
	}

	status, body := do(t, app, httptest.NewRequest(fiber.MethodGet, Path+"/Page/defaults", http.NoBody))
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `[{"recordType":"Page","key":"theme","option":"dark"}]`, body)

	_, body = do(t, app, httptest.NewRequest(fiber.MethodGet, Path+"/Page/schema", http.NoBody))
	var schema SchemaResponse
	require.NoError(t, json.Unmarshal([]byte(body), &schema))
	assert.Equal(t, "dark", schema.Settings[0].Default)

	status, _ = do(t, app, httptest.NewRequest(fiber.MethodDelete, Path+"/Page/defaults/theme", http.NoBody))
	assert.Equal(t, fiber.StatusNoContent, status)

	status, _ = do(t, app, httptest.NewRequest(fiber.MethodDelete, Path+"/Page/defaults/theme", http.NoBody))
	assert.Equal(t, fiber.StatusNotFound, status)
}
