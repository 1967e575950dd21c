package db

import (
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strings"

	"github.com/cradlehq/cradle/migrations"
	"gorm.io/gorm"
)

// Migration files are named NNNN_description.sql and run in numeric order.
var migrationNamePattern = regexp.MustCompile(`^\d{4}_[a-z0-9_]+\.sql$`)

func applyEmbeddedMigrations(database *gorm.DB) error {
	const bookkeeping = `
CREATE TABLE IF NOT EXISTS schema_migrations (
  name TEXT PRIMARY KEY,
  applied_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
);`
	if err := database.Exec(bookkeeping).Error; err != nil {
		return fmt.Errorf("create schema_migrations table: %w", err)
	}

	names, err := embeddedMigrationNames()
	if err != nil {
		return err
	}

	applied, err := appliedMigrationNames(database)
	if err != nil {
		return err
	}

	for _, name := range names {
		if _, done := applied[name]; done {
			continue
		}
		if err := runMigration(database, name); err != nil {
			return err
		}
	}
	return nil
}

func embeddedMigrationNames() ([]string, error) {
	entries, err := fs.ReadDir(migrations.Files, ".")
	if err != nil {
		return nil, fmt.Errorf("read embedded migrations: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !migrationNamePattern.MatchString(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}
	// The four-digit prefix makes lexical order the numeric order.
	sort.Strings(names)
	return names, nil
}

func appliedMigrationNames(database *gorm.DB) (map[string]struct{}, error) {
	rows := make([]string, 0)
	if err := database.Raw(`SELECT name FROM schema_migrations`).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("load applied migrations: %w", err)
	}

	applied := make(map[string]struct{}, len(rows))
	for _, name := range rows {
		applied[name] = struct{}{}
	}
	return applied, nil
}

// runMigration executes one migration file statement by statement inside a
// transaction and records it, so a failed migration leaves no partial state.
func runMigration(database *gorm.DB, name string) error {
	rawSQL, err := fs.ReadFile(migrations.Files, name)
	if err != nil {
		return fmt.Errorf("read migration %s: %w", name, err)
	}

	return database.Transaction(func(tx *gorm.DB) error {
		for _, statement := range strings.Split(string(rawSQL), ";") {
			statement = strings.TrimSpace(statement)
			if statement == "" {
				continue
			}
			if err := tx.Exec(statement).Error; err != nil {
				return fmt.Errorf("migration %s: %w", name, err)
			}
		}
		if err := tx.Exec(`INSERT INTO schema_migrations(name) VALUES (?)`, name).Error; err != nil {
			return fmt.Errorf("record migration %s: %w", name, err)
		}
		return nil
	})
}
