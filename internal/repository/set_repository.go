// This file defines the Set repository.  A Set is one scheduled
// performance; the interesting queries are the day-filtered listing,
// the distinct-day listing and the per-set attendee counts.  Day
// filtering uses the half-open range [day 00:00:00, nextDay 00:00:00):
// a set starting at 23:59:59 belongs to the day, one starting at the
// next midnight does not.
package repository

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/festivalapp/festival-api/internal/model"
)

// ErrSetNotFound indicates that a set was not located in the DB.
var ErrSetNotFound = errors.New("set not found")

// SetRepo manages persistence for sets.
type SetRepo struct {
	db *sql.DB
}

// NewSetRepo constructs a SetRepo with the given DB handle.
func NewSetRepo(db *sql.DB) *SetRepo {
	return &SetRepo{db: db}
}

// toDBTime and toWireTime convert between the wire form of a set time
// ("2006-01-02T15:04:05") and the stored form ("2006-01-02 15:04:05").
// Only the separator differs; both sort chronologically.
func toDBTime(s string) string   { return strings.Replace(s, "T", " ", 1) }
func toWireTime(s string) string { return strings.Replace(s, " ", "T", 1) }

// dayRange returns the stored-form bounds of the half-open interval
// covering one calendar day.
func dayRange(day time.Time) (from, to string) {
	return day.Format(model.DBTime), day.AddDate(0, 0, 1).Format(model.DBTime)
}

// Create inserts a new set and assigns the generated ID back to the
// struct.  StartTime and EndTime must already be normalized wire-form
// strings; no start/end ordering is enforced here or anywhere else.
func (r *SetRepo) Create(ctx context.Context, s *model.Set) error {
	const q = `INSERT INTO sets (artist, stage, start_time, end_time, description, image_url) VALUES (?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		s.Artist, s.Stage, toDBTime(s.StartTime), toDBTime(s.EndTime), s.Description, s.ImageURL)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	s.ID = uint64(id)
	return nil
}

// GetByID retrieves a set by its ID.  It returns ErrSetNotFound if
// there is no matching row.
func (r *SetRepo) GetByID(ctx context.Context, id uint64) (*model.Set, error) {
	const q = `SELECT id, artist, stage, start_time, end_time, description, image_url FROM sets WHERE id = ?`
	var s model.Set
	err := r.db.QueryRowContext(ctx, q, id).Scan(
		&s.ID, &s.Artist, &s.Stage, &s.StartTime, &s.EndTime, &s.Description, &s.ImageURL)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSetNotFound
		}
		return nil, err
	}
	s.StartTime = toWireTime(s.StartTime)
	s.EndTime = toWireTime(s.EndTime)
	return &s, nil
}

// ListAll returns sets ordered by stage then start time.  When day is
// non-nil only sets starting within that calendar day are returned.
func (r *SetRepo) ListAll(ctx context.Context, day *time.Time) ([]model.Set, error) {
	q := `SELECT id, artist, stage, start_time, end_time, description, image_url FROM sets`
	args := []any{}
	if day != nil {
		from, to := dayRange(*day)
		q += ` WHERE start_time >= ? AND start_time < ?`
		args = append(args, from, to)
	}
	q += ` ORDER BY stage ASC, start_time ASC`

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

// FestivalDays returns the distinct calendar days present among all
// set start times, ascending, each with its human-readable label.
// SUBSTR works on both backends: SQLite stores the time as TEXT and
// MySQL casts DATETIME to its string form.
func (r *SetRepo) FestivalDays(ctx context.Context) ([]model.FestivalDay, error) {
	const q = `SELECT DISTINCT SUBSTR(start_time, 1, 10) AS day FROM sets ORDER BY day ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	days := []model.FestivalDay{}
	for rows.Next() {
		var date string
		if err := rows.Scan(&date); err != nil {
			return nil, err
		}
		day, err := model.ParseDate(date)
		if err != nil {
			return nil, err
		}
		days = append(days, model.FestivalDay{Date: date, Label: model.DayLabel(day)})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return days, nil
}

// AttendeeCounts returns, per set, how many selections reference it.
// Keys are set IDs rendered as strings (JSON object keys); sets with
// no selections are absent rather than present with zero.  A non-nil
// day restricts the counts to sets starting within that day.
func (r *SetRepo) AttendeeCounts(ctx context.Context, day *time.Time) (map[string]int, error) {
	q := `SELECT us.set_id, COUNT(*)
          FROM user_selections us
          JOIN sets s ON s.id = us.set_id`
	args := []any{}
	if day != nil {
		from, to := dayRange(*day)
		q += ` WHERE s.start_time >= ? AND s.start_time < ?`
		args = append(args, from, to)
	}
	q += ` GROUP BY us.set_id`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	counts := map[string]int{}
	for rows.Next() {
		var setID uint64
		var n int
		if err := rows.Scan(&setID, &n); err != nil {
			return nil, err
		}
		counts[strconv.FormatUint(setID, 10)] = n
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return counts, nil
}
