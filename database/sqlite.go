package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// dsnOptions are applied to every pooled connection. Immediate transactions take
// the write lock at BEGIN so read-modify-write transactions serialize across
// processes sharing the file.
var dsnOptions = url.Values{
	"_foreign_keys": {"on"},
	"_busy_timeout": {"5000"},
	"_journal_mode": {"WAL"},
	"_txlock":       {"immediate"},
}

// DataSourceName builds the sqlite3 DSN for a database file path
func DataSourceName(path string) string {
	return "file:" + path + "?" + dsnOptions.Encode()
}

// OpenDB opens the SQLite database file and verifies the connection
func OpenDB(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite3", DataSourceName(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

// InitializeDatabase opens the database connection and runs migrations
func InitializeDatabase(path string) (*sql.DB, error) {
	db, err := OpenDB(path)
	if err != nil {
		return nil, err
	}

	// Run migrations
	if err := RunMigrations(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return db, nil
}

// Backup writes a consistent copy of the database to destPath
func Backup(ctx context.Context, db *sql.DB, destPath string) error {
	if destPath == "" {
		return fmt.Errorf("backup path is required")
	}
	if _, err := os.Stat(destPath); err == nil {
		return fmt.Errorf("backup target %s already exists", destPath)
	}

	if _, err := db.ExecContext(ctx, "VACUUM INTO ?", destPath); err != nil {
		return fmt.Errorf("failed to back up database: %w", err)
	}
	return nil
}

// DefaultBackupPath returns a timestamped backup file name next to the database
func DefaultBackupPath(dbPath string, now time.Time) string {
	return fmt.Sprintf("%s.backup_%s", dbPath, now.Format("20060102_150405"))
}

// Info summarizes the contents of the database
type Info struct {
	TableCounts      map[string]int `json:"table_counts"`
	ActiveZones      int            `json:"active_zones"`
	LatestAttendance string         `json:"latest_attendance"`
	SizeBytes        int64          `json:"size_bytes"`
}

var infoTables = []string{"identities", "zones", "presence_records", "presence_images", "audit_entries"}

// GetInfo gathers row counts and the latest attendance timestamp
func GetInfo(ctx context.Context, db *sql.DB, dbPath string) (*Info, error) {
	info := &Info{TableCounts: make(map[string]int, len(infoTables))}

	for _, table := range infoTables {
		var count int
		// Table names come from the fixed list above
		if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&count); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		info.TableCounts[table] = count
	}

	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM zones WHERE active = 1").Scan(&info.ActiveZones); err != nil {
		return nil, fmt.Errorf("failed to count active zones: %w", err)
	}

	var latest sql.NullString
	if err := db.QueryRowContext(ctx, "SELECT MAX(date || ' ' || time) FROM presence_records").Scan(&latest); err != nil {
		return nil, fmt.Errorf("failed to get latest attendance: %w", err)
	}
	info.LatestAttendance = "None"
	if latest.Valid {
		info.LatestAttendance = latest.String
	}

	if stat, err := os.Stat(dbPath); err == nil {
		info.SizeBytes = stat.Size()
	}

	return info, nil
}
