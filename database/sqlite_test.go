package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeDatabaseRunsMigrationsOnce(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "attendance.db")

	db, err := InitializeDatabase(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	// Running again must be a no-op
	require.NoError(t, RunMigrations(db))

	versions, err := getAppliedMigrations(db)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_initial_schema", "002_audit_entries_no_delete"}, versions)

	var fk int
	require.NoError(t, db.QueryRow("PRAGMA foreign_keys").Scan(&fk))
	assert.Equal(t, 1, fk)
}

func TestSingleActiveZoneIndex(t *testing.T) {
	db, err := InitializeDatabase(filepath.Join(t.TempDir(), "attendance.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	insert := `INSERT INTO zones (name, latitude, longitude, radius_meters, active) VALUES (?, 10.6785, 77.0321, 50, ?)`
	_, err = db.Exec(insert, "Library", 1)
	require.NoError(t, err)
	_, err = db.Exec(insert, "Computer Lab", 0)
	require.NoError(t, err)

	_, err = db.Exec(insert, "Auditorium", 1)
	assert.Error(t, err, "a second active zone must violate the unique index")
}

func TestAuditEntriesAreAppendOnly(t *testing.T) {
	db, err := InitializeDatabase(filepath.Join(t.TempDir(), "attendance.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`INSERT INTO identities (canonical_name) VALUES ('john doe')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO presence_images (reference, content_type, data) VALUES ('img-1', 'image/png', x'00')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO presence_records (identity_id, date, time, latitude, longitude, distance_meters, image_reference)
		VALUES (1, '2025-10-06', '09:00:00', 10.6785, 77.0321, 12.5, 'img-1')`)
	require.NoError(t, err)
	_, err = db.Exec(`INSERT INTO audit_entries (presence_record_id, action, new_values, actor) VALUES (1, 'CREATE', '{}', 'system')`)
	require.NoError(t, err)

	_, err = db.Exec(`UPDATE audit_entries SET actor = 'mallory' WHERE id = 1`)
	assert.ErrorContains(t, err, "append-only")

	_, err = db.Exec(`DELETE FROM audit_entries WHERE id = 1`)
	assert.ErrorContains(t, err, "append-only")

	// Removing the identity still cascades through its records to their history
	_, err = db.Exec(`DELETE FROM identities WHERE id = 1`)
	require.NoError(t, err)

	var entries int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM audit_entries`).Scan(&entries))
	assert.Equal(t, 0, entries)
}

func TestBackupAndInfo(t *testing.T) {
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "attendance.db")
	db, err := InitializeDatabase(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	ctx := context.Background()
	_, err = db.Exec(`INSERT INTO zones (name, latitude, longitude, radius_meters, active) VALUES ('Library', 10.6785, 77.0321, 50, 1)`)
	require.NoError(t, err)

	info, err := GetInfo(ctx, db, dbPath)
	require.NoError(t, err)
	assert.Equal(t, 1, info.TableCounts["zones"])
	assert.Equal(t, 0, info.TableCounts["presence_records"])
	assert.Equal(t, 1, info.ActiveZones)
	assert.Equal(t, "None", info.LatestAttendance)

	backupPath := DefaultBackupPath(dbPath, time.Date(2025, 10, 6, 9, 30, 0, 0, time.UTC))
	assert.Equal(t, dbPath+".backup_20251006_093000", backupPath)
	require.NoError(t, Backup(ctx, db, backupPath))
	assert.Error(t, Backup(ctx, db, backupPath), "existing backup must not be overwritten")

	restored, err := OpenDB(backupPath)
	require.NoError(t, err)
	defer restored.Close()

	var zones int
	require.NoError(t, restored.QueryRow("SELECT COUNT(*) FROM zones").Scan(&zones))
	assert.Equal(t, 1, zones)
}
