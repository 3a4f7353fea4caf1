package repository

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/festivalapp/festival-api/internal/database"
	"github.com/festivalapp/festival-api/internal/model"
)

// openTestDB creates a fresh SQLite database in a temp dir with the
// full schema and closes it when the test finishes.
func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "festival.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

// mustUser inserts a user and returns it.
func mustUser(t *testing.T, db *sql.DB, name string) *model.User {
	t.Helper()
	u := &model.User{Name: name}
	require.NoError(t, NewUserRepo(db).Create(context.Background(), u))
	return u
}

// mustSet inserts a set with the given artist, stage and wire-form
// times and returns it.
func mustSet(t *testing.T, db *sql.DB, artist, stage, start, end string) *model.Set {
	t.Helper()
	s := &model.Set{Artist: artist, Stage: stage, StartTime: start, EndTime: end}
	require.NoError(t, NewSetRepo(db).Create(context.Background(), s))
	return s
}

// mustSelection inserts a selection for the pair and returns it.
func mustSelection(t *testing.T, db *sql.DB, userID, setID uint64) *model.Selection {
	t.Helper()
	sel := &model.Selection{UserID: userID, SetID: setID}
	require.NoError(t, NewSelectionRepo(db).Create(context.Background(), sel))
	return sel
}
