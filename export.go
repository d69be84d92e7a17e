package bookkeeping

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "modernc.org/sqlite"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// runMigrations brings the export database schema up to date.
func runMigrations(dbPath string) error {
	// Use a separate connection for migrations to avoid interfering with
	// the main connection.
	migrateDB, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open migration database: %w", err)
	}
	defer migrateDB.Close()

	driver, err := sqlite.WithInstance(migrateDB, &sqlite.Config{})
	if err != nil {
		return fmt.Errorf("create sqlite driver: %w", err)
	}

	d, err := iofs.New(migrationsFS, "migrations")
	if err != nil {
		return fmt.Errorf("create iofs source: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", d, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

// ExportSQLite writes the accounts, the validated ledger and the final
// balances to a SQLite database for ad-hoc querying with plain SQL.
// Amounts are stored as text so they stay exact.
func ExportSQLite(dbPath string, accounts *Accounts, ledger *Ledger, summary *Summary) error {
	if err := runMigrations(dbPath); err != nil {
		return err
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return fmt.Errorf("open export database: %w", err)
	}
	defer db.Close()

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("begin export transaction: %w", err)
	}
	defer tx.Rollback()

	// The export is a full snapshot; a previous export is replaced.
	for _, table := range []string{"postings", "transfers", "accounts"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clear table %q: %w", table, err)
		}
	}

	for name := range accounts.Names() {
		kind, err := accounts.KindOf(name)
		if err != nil {
			return err
		}
		if _, err := tx.Exec(
			"INSERT INTO accounts (name, kind, balance) VALUES (?, ?, ?)",
			name, kind.String(), summary.Balance(name).String(),
		); err != nil {
			return fmt.Errorf("insert account %q: %w", name, err)
		}
	}

	for i, t := range ledger.Transfers() {
		if _, err := tx.Exec(
			"INSERT INTO transfers (id, label, date, grouping) VALUES (?, ?, ?, ?)",
			i, t.Label, t.Date.String(), t.Source(),
		); err != nil {
			return fmt.Errorf("insert transfer %q: %w", t.Label, err)
		}
		for account := range t.Accounts() {
			if _, err := tx.Exec(
				"INSERT INTO postings (transfer_id, account, amount) VALUES (?, ?, ?)",
				i, account, t.Amounts[account].String(),
			); err != nil {
				return fmt.Errorf("insert posting %q/%q: %w", t.Label, account, err)
			}
		}
	}

	return tx.Commit()
}
