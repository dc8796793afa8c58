package recordsettings

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/recordsettings/recordsettings/internal/config"
	"github.com/recordsettings/recordsettings/internal/db"
	"github.com/recordsettings/recordsettings/internal/editor"
	"github.com/recordsettings/recordsettings/internal/settings"
)

const testSchema = `
presets:
  theme:
    label: Theme
    default: light
    options: {light: Light, dark: Dark}
  layout:
    label: Layout
    default: wide
    options: {wide: Wide, narrow: Narrow}
types:
  Page: [theme, layout]
`

// noOpViews is a minimal Fiber Views engine used for tests.
// It writes the template name and the "Error" or "Success" entry
// so tests can assert what handlers rendered.
type noOpViews struct{}

func (noOpViews) Load() error { return nil }

func (noOpViews) Render(w io.Writer, name string, data interface{}, _ ...string) error {
	_, _ = io.WriteString(w, name)

	if m, ok := data.(fiber.Map); ok {
		for _, key := range []string{"Error", "Success"} {
			if v, exists := m[key]; exists && v != nil {
				_, _ = io.WriteString(w, "|"+fmt.Sprint(v))
			}
		}
	}

	return nil
}

func newTestApp(t *testing.T) (*fiber.App, *editor.Service, *gorm.DB) {
	t.Helper()

	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err, "failed to create test database")

	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.Migrate(conn))

	registry, err := settings.ParseRegistry([]byte(testSchema))
	require.NoError(t, err)

	ed := editor.NewService(conn, registry, nil)

	app := fiber.New(fiber.Config{Views: noOpViews{}})
	svc := &Service{}
	svc.Init(app, &config.Config{}, ed)

	return app, ed, conn
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

func formRequest(path string, keys, vals []string) *http.Request {
	form := url.Values{}
	for _, k := range keys {
		form.Add(settings.DefaultFieldName+"[key][]", k)
	}
	for _, v := range vals {
		form.Add(settings.DefaultFieldName+"[val][]", v)
	}

	req := httptest.NewRequest(fiber.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)

	return req
}

func TestList(t *testing.T) {
	app, _, _ := newTestApp(t)

	status, body := do(t, app, httptest.NewRequest(fiber.MethodGet, Path, http.NoBody))
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, TemplateList, body)
}

func TestGet(t *testing.T) {
	app, ed, _ := newTestApp(t)

	rec, err := ed.CreateRecord("Page", "Home")
	require.NoError(t, err)

	testCases := []struct {
		name     string
		path     string
		expected int
	}{
		{name: "existing record", path: settingsPath(rec.ID), expected: fiber.StatusOK},
		{name: "missing record", path: Path + "/99/settings", expected: fiber.StatusNotFound},
		{name: "invalid id", path: Path + "/x/settings", expected: fiber.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := do(t, app, httptest.NewRequest(fiber.MethodGet, tc.path, http.NoBody))
			assert.Equal(t, tc.expected, status)
			assert.True(t, strings.HasPrefix(body, TemplateName))
		})
	}
}

func TestPost(t *testing.T) {
	app, ed, _ := newTestApp(t)

	rec, err := ed.CreateRecord("Page", "Home")
	require.NoError(t, err)

	path := settingsPath(rec.ID)

	testCases := []struct {
		name     string
		keys     []string
		vals     []string
		expected int
		stored   settings.Values
	}{
		{
			name:     "valid rows",
			keys:     []string{"theme", "layout"},
			vals:     []string{"dark", "narrow"},
			expected: fiber.StatusOK,
			stored:   settings.Values{"theme": "dark", "layout": "narrow"},
		},
		{
			name:     "empty rows are dropped",
			keys:     []string{"theme", ""},
			vals:     []string{"light", "narrow"},
			expected: fiber.StatusOK,
			stored:   settings.Values{"theme": "light"},
		},
		{
			name:     "mismatched rows",
			keys:     []string{"theme", "layout"},
			vals:     []string{"dark"},
			expected: fiber.StatusBadRequest,
			stored:   settings.Values{"theme": "light"},
		},
		{
			name:     "unknown option",
			keys:     []string{"theme"},
			vals:     []string{"neon"},
			expected: fiber.StatusBadRequest,
			stored:   settings.Values{"theme": "light"},
		},
		{
			name:     "too long value",
			keys:     []string{"theme"},
			vals:     []string{strings.Repeat("x", 256)},
			expected: fiber.StatusBadRequest,
			stored:   settings.Values{"theme": "light"},
		},
		{
			name:     "nothing submitted clears the settings",
			expected: fiber.StatusOK,
			stored:   settings.Values{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := do(t, app, formRequest(path, tc.keys, tc.vals))
			assert.Equal(t, tc.expected, status, body)

			if tc.expected == fiber.StatusOK {
				assert.Contains(t, body, "Settings saved successfully")
			}

			stored, err := ed.Record(rec.ID)
			require.NoError(t, err)
			assert.Equal(t, tc.stored, stored.ArbitrarySettings.Values())
		})
	}

	status, _ := do(t, app, formRequest(Path+"/99/settings", nil, nil))
	assert.Equal(t, fiber.StatusNotFound, status)
}

func TestInternalErrorsAreHidden(t *testing.T) {
	app, ed, conn := newTestApp(t)

	rec, err := ed.CreateRecord("Page", "Home")
	require.NoError(t, err)

	path := settingsPath(rec.ID)

	t.Run("save fails", func(t *testing.T) {
		require.NoError(t, conn.Exec(`CREATE TRIGGER records_read_only BEFORE UPDATE ON records
BEGIN SELECT RAISE(ABORT, 'records are read only'); END`).Error)
		defer func() {
			require.NoError(t, conn.Exec("DROP TRIGGER records_read_only").Error)
		}()

		status, body := do(t, app, formRequest(path, []string{"theme"}, []string{"dark"}))
		assert.Equal(t, fiber.StatusInternalServerError, status)
		assert.Equal(t, TemplateName+"|"+fiber.ErrInternalServerError.Message, body)
		assert.NotContains(t, body, "read only")
	})

	require.NoError(t, conn.Exec("DROP TABLE default_overrides").Error)

	testCases := []struct {
		name string
		req  *http.Request
	}{
		{name: "get", req: httptest.NewRequest(fiber.MethodGet, path, http.NoBody)},
		{name: "post", req: formRequest(path, []string{"theme"}, []string{"dark"})},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := do(t, app, tc.req)
			assert.Equal(t, fiber.StatusInternalServerError, status)
			assert.Equal(t, TemplateName+"|"+fiber.ErrInternalServerError.Message, body)
			assert.NotContains(t, body, "default_overrides")
		})
	}
}

func TestValidationMessages(t *testing.T) {
	assert.Equal(t, []string{"Submitted settings are invalid"}, validationMessages(errors.New("boom")))

	err := validator.New().Struct(settings.Payload{Vals: []string{strings.Repeat("x", 256)}})
	require.Error(t, err)

	msgs := validationMessages(err)
	require.Len(t, msgs, 1)
	assert.Contains(t, msgs[0], "failed validation tag 'max'")
}
