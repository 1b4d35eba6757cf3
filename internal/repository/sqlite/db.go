package sqlite

import (
	"database/sql"
	"embed"
	"fmt"

	_ "github.com/mattn/go-sqlite3"

	"github.com/lucasv/prepdeck/internal/logger"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var migrations = []string{
	"migrations/0001_init.sql",
}

// Open opens the local cache database and applies all migrations.
func Open(path string) (*sql.DB, error) {
	log := logger.Default().WithPrefix("sqlite")

	db, err := sql.Open("sqlite3", path+"?_foreign_keys=on&_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	for _, migration := range migrations {
		script, err := migrationsFS.ReadFile(migration)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("read migration %s: %w", migration, err)
		}
		if _, err := db.Exec(string(script)); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply migration %s: %w", migration, err)
		}
		log.Debug("applied migration %s", migration)
	}

	return db, nil
}
