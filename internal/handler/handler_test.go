package handler_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"github.com/festivalapp/festival-api/internal/database"
	"github.com/festivalapp/festival-api/internal/handler"
	"github.com/festivalapp/festival-api/internal/repository"
	"github.com/festivalapp/festival-api/internal/router"
)

// newTestAPI wires the full API against a fresh SQLite database and
// returns the Echo instance plus the raw DB handle for fixtures.
func newTestAPI(t *testing.T) (*echo.Echo, *sql.DB) {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "festival.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	users := repository.NewUserRepo(db)
	sets := repository.NewSetRepo(db)
	selections := repository.NewSelectionRepo(db)

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAPI(e,
		handler.NewUserHandler(users),
		handler.NewSetHandler(sets),
		handler.NewSelectionHandler(selections, users, sets),
		nil)
	return e, db
}

// do performs a request against the API and returns the recorder.
// A non-nil body is marshalled as JSON.
func do(t *testing.T, e *echo.Echo, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		req = httptest.NewRequest(method, path, bytes.NewReader(raw))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals the response body into out.
func decode(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), out))
}
