package records

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
	"github.com/recordsettings/recordsettings/internal/db/models"
	"github.com/recordsettings/recordsettings/internal/editor"
	"github.com/recordsettings/recordsettings/internal/settings"
)

const testSchema = `
presets:
  theme:
    label: Theme
    default: light
    options: {light: Light, dark: Dark}
types:
  Page: [theme]
`

func newTestApp(t *testing.T) (*fiber.App, *editor.Service) {
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

	app := fiber.New(fiber.Config{JSONEncoder: json.Marshal, JSONDecoder: json.Unmarshal})
	svc := &Service{}
	svc.Init(app, &config.Config{}, ed)

	return app, ed
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, string) {
	t.Helper()

	var reader io.Reader = http.NoBody
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	defer func() {
		_ = resp.Body.Close()
	}()

	out, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	return resp.StatusCode, string(out)
}

func TestCreate(t *testing.T) {
	app, _ := newTestApp(t)

	testCases := []struct {
		name     string
		body     string
		expected int
	}{
		{name: "valid", body: `{"type":"Page","title":"Home"}`, expected: fiber.StatusCreated},
		{name: "missing type", body: `{"title":"Home"}`, expected: fiber.StatusBadRequest},
		{name: "unknown type", body: `{"type":"Nope"}`, expected: fiber.StatusNotFound},
		{name: "broken json", body: `{"type":`, expected: fiber.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, _ := do(t, app, fiber.MethodPost, Path, tc.body)
			assert.Equal(t, tc.expected, status)
		})
	}

	status, body := do(t, app, fiber.MethodGet, Path+"?type=Page", "")
	assert.Equal(t, fiber.StatusOK, status)

	var recs []models.Record
	require.NoError(t, json.Unmarshal([]byte(body), &recs))
	require.Len(t, recs, 1)
	assert.Equal(t, "Home", recs[0].Title)
}

func TestGetAndDelete(t *testing.T) {
	app, ed := newTestApp(t)

	rec, err := ed.CreateRecord("Page", "Home")
	require.NoError(t, err)

	status, body := do(t, app, fiber.MethodGet, Path+"/1", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.Contains(t, body, `"title":"Home"`)

	status, _ = do(t, app, fiber.MethodGet, Path+"/abc", "")
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = do(t, app, fiber.MethodDelete, Path+"/1", "")
	assert.Equal(t, fiber.StatusNoContent, status)

	status, _ = do(t, app, fiber.MethodGet, Path+"/1", "")
	assert.Equal(t, fiber.StatusNotFound, status)

	status, _ = do(t, app, fiber.MethodDelete, Path+"/1", "")
	assert.Equal(t, fiber.StatusNotFound, status)

	assert.Equal(t, uint64(1), rec.ID)
}

func TestSettings(t *testing.T) {
	app, ed := newTestApp(t)

	_, err := ed.CreateRecord("Page", "Home")
	require.NoError(t, err)

	status, body := do(t, app, fiber.MethodGet, Path+"/1/settings", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"theme":"light"}`, body)

	status, body = do(t, app, fiber.MethodPut, Path+"/1/settings", `{"theme":"dark"}`)
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"theme":"dark"}`, body)

	status, _ = do(t, app, fiber.MethodPut, Path+"/1/settings", `{"theme":"neon"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = do(t, app, fiber.MethodPut, Path+"/1/settings", `{"colour":"red"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)

	status, _ = do(t, app, fiber.MethodPut, Path+"/9/settings", `{}`)
	assert.Equal(t, fiber.StatusNotFound, status)

	status, body = do(t, app, fiber.MethodGet, Path+"/1/settings", "")
	assert.Equal(t, fiber.StatusOK, status)
	assert.JSONEq(t, `{"theme":"dark"}`, body)
}

func TestSetting(t *testing.T) {
	app, ed := newTestApp(t)

	_, err := ed.CreateRecord("Page", "Home")
	require.NoError(t, err)

	testCases := []struct {
		name     string
		path     string
		expected int
		body     string
	}{
		{
			name:     "default value",
			path:     Path + "/1/settings/theme",
			expected: fiber.StatusOK,
			body:     `{"name":"theme","value":"light","found":true}`,
		},
		{
			name:     "default disabled",
			path:     Path + "/1/settings/theme?default=false",
			expected: fiber.StatusNotFound,
			body:     `{"name":"theme","found":false}`,
		},
		{
			name:     "unknown setting",
			path:     Path + "/1/settings/nope",
			expected: fiber.StatusNotFound,
			body:     `{"name":"nope","found":false}`,
		},
		{
			name:     "invalid flag",
			path:     Path + "/1/settings/theme?default=maybe",
			expected: fiber.StatusBadRequest,
			body:     `{"error":"invalid default flag"}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			status, body := do(t, app, fiber.MethodGet, tc.path, "")
			assert.Equal(t, tc.expected, status)
			assert.JSONEq(t, tc.body, body)
		})
	}
}
