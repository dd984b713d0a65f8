package store

import (
	"github.com/MKhiriev/go-task-keeper/migrations"
)

// Migrate applies every pending server-side schema migration.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}
