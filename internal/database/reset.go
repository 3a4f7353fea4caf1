package database

import (
	"database/sql"
	"fmt"
)

// Reset drops and recreates the three tables.  Used by the seed tool
// to start from a clean database, matching the original drop_all /
// create_all seeding flow.  Drop order respects the foreign keys.
func Reset(db *sql.DB, driver string) error {
	for _, table := range []string{"user_selections", "sets", "users"} {
		if _, err := db.Exec("DROP TABLE IF EXISTS " + table); err != nil {
			return fmt.Errorf("drop %s: %w", table, err)
		}
	}
	switch driver {
	case "sqlite":
		if _, err := db.Exec(schemaSQLite); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	case "mysql":
		for _, stmt := range schemaMySQL {
			if _, err := db.Exec(stmt); err != nil {
				return fmt.Errorf("create schema: %w", err)
			}
		}
	default:
		return fmt.Errorf("unknown driver %q", driver)
	}
	return nil
}
