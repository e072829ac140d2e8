package postgres

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/jmoiron/sqlx"
)

// Migration is a single schema migration loaded from a SQL file.
type Migration struct {
	Version int
	Name    string
	SQL     string
}

// Migrator reads NNN_name.sql files from a directory and applies the pending
// ones in version order, tracking progress in a _migrations table.
type Migrator struct {
	db  *sqlx.DB
	dir string
}

func NewMigrator(db *sqlx.DB, dir string) *Migrator {
	return &Migrator{db: db, dir: dir}
}

func (m *Migrator) ensureMigrationsTable(ctx context.Context) error {
	query := `
		CREATE TABLE IF NOT EXISTS _migrations (
			version INTEGER PRIMARY KEY,
			name VARCHAR(255) NOT NULL,
			applied_at TIMESTAMPTZ DEFAULT NOW()
		)`
	if _, err := m.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("create _migrations table: %w", err)
	}
	return nil
}

// loadMigrations parses the version from the filename prefix (e.g.
// "001_init.sql" -> 1) and returns migrations sorted by version. Files without
// a numeric prefix are skipped.
func (m *Migrator) loadMigrations() ([]Migration, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, fmt.Errorf("read migrations directory %s: %w", m.dir, err)
	}

	var migrations []Migration
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".sql") {
			continue
		}

		parts := strings.SplitN(strings.TrimSuffix(entry.Name(), ".sql"), "_", 2)
		version, err := strconv.Atoi(parts[0])
		if err != nil {
			continue
		}

		content, err := os.ReadFile(filepath.Join(m.dir, entry.Name()))
		if err != nil {
			return nil, fmt.Errorf("read migration %s: %w", entry.Name(), err)
		}

		name := ""
		if len(parts) == 2 {
			name = parts[1]
		}
		migrations = append(migrations, Migration{Version: version, Name: name, SQL: string(content)})
	}

	sort.Slice(migrations, func(i, j int) bool { return migrations[i].Version < migrations[j].Version })
	return migrations, nil
}

// Up applies all pending migrations.
func (m *Migrator) Up(ctx context.Context) error {
	if err := m.ensureMigrationsTable(ctx); err != nil {
		return err
	}

	migrations, err := m.loadMigrations()
	if err != nil {
		return err
	}

	applied := map[int]bool{}
	var versions []int
	if err := m.db.SelectContext(ctx, &versions, `SELECT version FROM _migrations`); err != nil {
		return fmt.Errorf("read applied migrations: %w", err)
	}
	for _, v := range versions {
		applied[v] = true
	}

	for _, mig := range migrations {
		if applied[mig.Version] {
			continue
		}

		tx, err := m.db.BeginTxx(ctx, nil)
		if err != nil {
			return fmt.Errorf("begin migration %d: %w", mig.Version, err)
		}
		if _, err := tx.ExecContext(ctx, mig.SQL); err != nil {
			tx.Rollback()
			return fmt.Errorf("apply migration %d (%s): %w", mig.Version, mig.Name, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO _migrations (version, name) VALUES ($1, $2)`, mig.Version, mig.Name); err != nil {
			tx.Rollback()
			return fmt.Errorf("record migration %d: %w", mig.Version, err)
		}
		if err := tx.Commit(); err != nil {
			return fmt.Errorf("commit migration %d: %w", mig.Version, err)
		}
	}

	return nil
}
