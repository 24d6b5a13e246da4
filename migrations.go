package forumhub

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
)

// MigrationFiles contains the SQL migrations for every supported driver,
// under migrations/<driver>/. Table names carry a {{prefix}} placeholder.
//
// Use Migrate to apply them, or feed them to your own migration tool after
// substituting the prefix.
//
//go:embed migrations/*/*.sql
var MigrationFiles embed.FS

// Migrate creates the forumhub tables for driver ("sqlite3", "mysql" or
// "postgres") using prefix for every table name. Migrations are idempotent
// and applied in file name order.
func Migrate(ctx context.Context, db *sql.DB, driver, prefix string) error {
	dir := path.Join("migrations", driver)
	entries, err := fs.ReadDir(MigrationFiles, dir)
	if err != nil {
		return NewErrorWithCause(ErrCodeConfiguration, fmt.Sprintf("no migrations for driver %q", driver), err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		raw, err := fs.ReadFile(MigrationFiles, path.Join(dir, name))
		if err != nil {
			return NewErrorWithCause(ErrCodeConfiguration, "failed to read migration "+name, err)
		}

		script := strings.ReplaceAll(string(raw), "{{prefix}}", prefix)
		for _, stmt := range splitStatements(script) {
			if _, err := db.ExecContext(ctx, stmt); err != nil {
				return NewErrorWithCause(ErrCodeDatabase, "failed to apply migration "+name, err)
			}
		}
	}

	return nil
}

func splitStatements(script string) []string {
	parts := strings.Split(script, ";")
	stmts := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			stmts = append(stmts, s)
		}
	}
	return stmts
}
