package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/festivalapp/festival-api/internal/model"
)

// ErrUserNotFound indicates that a user was not located in the DB.
var ErrUserNotFound = errors.New("user not found")

// UserRepo manages persistence for users.
type UserRepo struct {
	db *sql.DB
}

// NewUserRepo constructs a UserRepo with the given DB handle.
func NewUserRepo(db *sql.DB) *UserRepo {
	return &UserRepo{db: db}
}

// Create inserts a new user and assigns the generated ID back to the
// struct.  Name presence is validated at the handler boundary; there
// is deliberately no duplicate-name check.
func (r *UserRepo) Create(ctx context.Context, u *model.User) error {
	const q = `INSERT INTO users (name) VALUES (?)`
	res, err := r.db.ExecContext(ctx, q, u.Name)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	u.ID = uint64(id)
	return nil
}

// GetByID retrieves a user by its ID.  It returns ErrUserNotFound if
// there is no matching row.
func (r *UserRepo) GetByID(ctx context.Context, id uint64) (*model.User, error) {
	const q = `SELECT id, name FROM users WHERE id = ?`
	var u model.User
	err := r.db.QueryRowContext(ctx, q, id).Scan(&u.ID, &u.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &u, nil
}

// ListAll returns every user ordered by name ascending.  Ordering is
// the storage collation, i.e. case-sensitive byte order.  When no
// users exist it returns an empty slice and nil error.
func (r *UserRepo) ListAll(ctx context.Context) ([]model.User, error) {
	const q = `SELECT id, name FROM users ORDER BY name ASC`
	rows, err := r.db.QueryContext(ctx, q)
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

// Delete removes a user.  The schema-level cascade removes all of the
// user's selections in the same statement.  There is no HTTP route
// for this; it exists for the seed tool and for lifecycle tests of
// the cascade.  Returns ErrUserNotFound when no row matches.
func (r *UserRepo) Delete(ctx context.Context, id uint64) error {
	const q = `DELETE FROM users WHERE id = ?`
	res, err := r.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrUserNotFound
	}
	return nil
}
