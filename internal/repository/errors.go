// Package repository implements data access for the three festival
// entities over database/sql.  Each entity has its own repository type
// bound to a shared *sql.DB, and failure cases that callers must
// distinguish are reported through sentinel errors so that handlers
// can translate them into HTTP statuses.  Not-found sentinels live
// next to the repository that produces them; this file holds the ones
// shared across repositories.
package repository

import "errors"

// ErrSelectionExists is returned when a selection for the same
// (user, set) pair already exists.  It is produced both by the
// pre-insert lookup and by the storage-level unique constraint, so
// two concurrent creates for the same pair still yield exactly one
// row.  Handlers translate it into HTTP 400.
var ErrSelectionExists = errors.New("selection already exists")
