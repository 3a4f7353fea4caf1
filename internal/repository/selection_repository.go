package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/festivalapp/festival-api/internal/model"
)

// ErrSelectionNotFound indicates that no selection exists for the
// requested (user, set) pair.
var ErrSelectionNotFound = errors.New("selection not found")

// SelectionRepo manages persistence for user selections.
type SelectionRepo struct {
	db *sql.DB
}

// NewSelectionRepo constructs a SelectionRepo with the given DB handle.
func NewSelectionRepo(db *sql.DB) *SelectionRepo {
	return &SelectionRepo{db: db}
}

// Create inserts a selection for the given pair and assigns the
// generated ID.  A lookup rejects duplicates up front so the common
// case reports ErrSelectionExists without touching the unique index;
// the index itself remains the backstop when two concurrent creates
// both pass the lookup.  Referential integrity of user_id/set_id is
// left to the schema's foreign keys.
func (r *SelectionRepo) Create(ctx context.Context, sel *model.Selection) error {
	const check = `SELECT id FROM user_selections WHERE user_id = ? AND set_id = ?`
	var existing uint64
	err := r.db.QueryRowContext(ctx, check, sel.UserID, sel.SetID).Scan(&existing)
	if err == nil {
		return ErrSelectionExists
	}
	if !errors.Is(err, sql.ErrNoRows) {
		return err
	}

	const q = `INSERT INTO user_selections (user_id, set_id) VALUES (?, ?)`
	res, err := r.db.ExecContext(ctx, q, sel.UserID, sel.SetID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrSelectionExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	sel.ID = uint64(id)
	return nil
}

// isUniqueViolation recognizes the duplicate-pair error of either
// backend: SQLite reports "UNIQUE constraint failed", MySQL error 1062.
func isUniqueViolation(err error) bool {
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint failed") || strings.Contains(msg, "1062")
}

// ListAll returns every selection.  No ordering is defined.
func (r *SelectionRepo) ListAll(ctx context.Context) ([]model.Selection, error) {
	const q = `SELECT id, user_id, set_id FROM user_selections`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	sels := []model.Selection{}
	for rows.Next() {
		var s model.Selection
		if err := rows.Scan(&s.ID, &s.UserID, &s.SetID); err != nil {
			return nil, err
		}
		sels = append(sels, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sels, nil
}

// ListSetsByUser returns the sets a user has selected, ordered by
// start time ascending, optionally restricted to one calendar day.
// The caller is responsible for verifying the user exists; an unknown
// user simply yields an empty slice here.
func (r *SelectionRepo) ListSetsByUser(ctx context.Context, userID uint64, day *time.Time) ([]model.Set, error) {
	q := `SELECT s.id, s.artist, s.stage, s.start_time, s.end_time, s.description, s.image_url
          FROM sets s
          JOIN user_selections us ON us.set_id = s.id
          WHERE us.user_id = ?`
	args := []any{userID}
	if day != nil {
		from, to := dayRange(*day)
		q += ` AND s.start_time >= ? AND s.start_time < ?`
		args = append(args, from, to)
	}
	q += ` ORDER BY s.start_time ASC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	sets := []model.Set{}
	for rows.Next() {
		var s model.Set
		if err := rows.Scan(&s.ID, &s.Artist, &s.Stage, &s.StartTime, &s.EndTime, &s.Description, &s.ImageURL); err != nil {
			return nil, err
		}
		s.StartTime = toWireTime(s.StartTime)
		s.EndTime = toWireTime(s.EndTime)
		sets = append(sets, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return sets, nil
}

// ListUsersBySet returns the users who selected a set, in the order
// their selections were created (selection id ascending, i.e. storage
// insertion order).  As with ListSetsByUser, set existence is checked
// by the caller.
func (r *SelectionRepo) ListUsersBySet(ctx context.Context, setID uint64) ([]model.User, error) {
	const q = `SELECT u.id, u.name
               FROM users u
               JOIN user_selections us ON us.user_id = u.id
               WHERE us.set_id = ?
               ORDER BY us.id ASC`
	rows, err := r.db.QueryContext(ctx, q, setID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	users := []model.User{}
	for rows.Next() {
		var u model.User
		if err := rows.Scan(&u.ID, &u.Name); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return users, nil
}

// DeleteByUserAndSet removes the selection for the exact pair.  It
// returns ErrSelectionNotFound when no such selection exists.
func (r *SelectionRepo) DeleteByUserAndSet(ctx context.Context, userID, setID uint64) error {
	const q = `DELETE FROM user_selections WHERE user_id = ? AND set_id = ?`
	res, err := r.db.ExecContext(ctx, q, userID, setID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrSelectionNotFound
	}
	return nil
}
