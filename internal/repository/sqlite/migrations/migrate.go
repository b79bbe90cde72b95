// Package migrations brings the schema up to date from the embedded
// versioned SQL files.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"log/slog"
	"sort"
	"strings"

	"punchclock/internal/errors"
)

//go:embed *.sql
var migrationsFS embed.FS

// Migration is one versioned schema change, loaded from an embedded
// NNNNNN_name.up.sql / .down.sql pair.
type Migration struct {
	Version int
	Up      string
	Down    string
}

// RunMigrations applies every pending migration in version order, each in
// its own transaction. Already-applied versions are skipped.
func RunMigrations(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}

	if _, err := db.ExecContext(ctx, `
	CREATE TABLE IF NOT EXISTS migrations (
		version INTEGER PRIMARY KEY,
		applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
	)`); err != nil {
		return errors.NewPersistenceError("create migrations table", err)
	}

	migrations, err := loadMigrations()
	if err != nil {
		return err
	}

	applied, err := appliedVersions(ctx, db)
	if err != nil {
		return err
	}

	for _, m := range migrations {
		if applied[m.Version] {
			continue
		}
		if err := applyMigration(ctx, db, m); err != nil {
			return err
		}
		logger.Debug("applied migration", "version", m.Version)
	}

	return nil
}

func loadMigrations() ([]Migration, error) {
	entries, err := migrationsFS.ReadDir(".")
	if err != nil {
		return nil, errors.NewPersistenceError("read embedded migrations", err)
	}

	var migrations []Migration
	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasSuffix(name, ".up.sql") {
			continue
		}

		version := extractVersion(name)
		if version == 0 {
			continue
		}

		upSQL, err := migrationsFS.ReadFile(name)
		if err != nil {
			return nil, errors.NewPersistenceError("read migration "+name, err)
		}

		downName := strings.Replace(name, ".up.sql", ".down.sql", 1)
		downSQL, err := migrationsFS.ReadFile(downName)
		if err != nil {
			return nil, errors.NewPersistenceError("read migration "+downName, err)
		}

		migrations = append(migrations, Migration{
			Version: version,
			Up:      string(upSQL),
			Down:    string(downSQL),
		})
	}

	sort.Slice(migrations, func(i, j int) bool {
		return migrations[i].Version < migrations[j].Version
	})

	return migrations, nil
}

func appliedVersions(ctx context.Context, db *sql.DB) (map[int]bool, error) {
	rows, err := db.QueryContext(ctx, `SELECT version FROM migrations`)
	if err != nil {
		return nil, errors.NewPersistenceError("list applied migrations", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var version int
		if err := rows.Scan(&version); err != nil {
			return nil, errors.NewPersistenceError("scan migration version", err)
		}
		applied[version] = true
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewPersistenceError("list applied migrations", err)
	}
	return applied, nil
}

func applyMigration(ctx context.Context, db *sql.DB, m Migration) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.NewPersistenceError("begin migration transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, m.Up); err != nil {
		return errors.NewPersistenceError(fmt.Sprintf("apply migration %d", m.Version), err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO migrations (version) VALUES (?)`, m.Version); err != nil {
		return errors.NewPersistenceError(fmt.Sprintf("record migration %d", m.Version), err)
	}
	if err := tx.Commit(); err != nil {
		return errors.NewPersistenceError(fmt.Sprintf("commit migration %d", m.Version), err)
	}
	return nil
}

func extractVersion(filename string) int {
	var version int
	fmt.Sscanf(filename, "%d_", &version)
	return version
}
