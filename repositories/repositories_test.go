package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blogem/geoattend/database"
	"github.com/blogem/geoattend/models"
)

var testNow = time.Date(2025, 10, 6, 9, 15, 0, 0, time.UTC)

func setupTestDB(t *testing.T) *sql.DB {
	// Create a temporary database for testing
	dbPath := filepath.Join(t.TempDir(), "test.db")

	// Initialize test database using the actual migration system
	db, err := database.InitializeDatabase(dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	return db
}

func createTestZone(t *testing.T, repo ZoneRepository, name string, active bool) *models.Zone {
	zone := &models.Zone{
		Name:         name,
		Latitude:     10.6785,
		Longitude:    77.0321,
		RadiusMeters: 50,
		Active:       active,
		CreatedBy:    "admin",
		CreatedAt:    testNow,
		UpdatedAt:    testNow,
	}
	if err := repo.Create(context.Background(), zone); err != nil {
		t.Fatalf("Failed to create zone %s: %v", name, err)
	}
	return zone
}

func newTestRecord(identityID, zoneID int) (*models.PresenceRecord, *models.PresenceImage) {
	record := &models.PresenceRecord{
		IdentityID:     identityID,
		Date:           "2025-10-06",
		Time:           "09:15:00",
		Status:         models.StatusPresent,
		Latitude:       10.67886,
		Longitude:      77.0321,
		DistanceMeters: 40,
		ZoneID:         &zoneID,
		AccuracyMeters: 12,
		CreatedAt:      testNow,
	}
	image := &models.PresenceImage{
		Reference:   fmt.Sprintf("img-%d-%d", identityID, time.Now().UnixNano()),
		ContentType: "image/png",
		Data:        []byte{0x89, 0x50, 0x4e, 0x47},
	}
	return record, image
}

func TestIdentityRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIdentityRepository(db)
	ctx := context.Background()

	// Test FindOrCreate registers a new identity
	identity, err := repo.FindOrCreate(ctx, "john doe", testNow)
	if err != nil {
		t.Fatalf("Failed to create identity: %v", err)
	}

	if identity.ID == 0 {
		t.Error("Expected identity ID to be set after creation")
	}

	// Test FindOrCreate returns the same identity
	again, err := repo.FindOrCreate(ctx, "john doe", testNow.Add(time.Hour))
	if err != nil {
		t.Fatalf("Failed to resolve identity: %v", err)
	}

	if again.ID != identity.ID {
		t.Errorf("Expected identity ID %d, got %d", identity.ID, again.ID)
	}

	// Test GetByID
	retrieved, err := repo.GetByID(ctx, identity.ID)
	if err != nil {
		t.Fatalf("Failed to get identity by ID: %v", err)
	}

	if retrieved.CanonicalName != "john doe" || !retrieved.Active {
		t.Errorf("Expected active identity 'john doe', got %+v", retrieved)
	}

	// Test GetAll
	if _, err := repo.FindOrCreate(ctx, "anna maria", testNow); err != nil {
		t.Fatalf("Failed to create identity: %v", err)
	}

	identities, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("Failed to get all identities: %v", err)
	}

	if len(identities) != 2 || identities[0].CanonicalName != "anna maria" {
		t.Errorf("Expected 2 identities ordered by name, got %+v", identities)
	}

	// Test Deactivate and CountActive
	if err := repo.Deactivate(ctx, identity.ID); err != nil {
		t.Fatalf("Failed to deactivate identity: %v", err)
	}

	count, err := repo.CountActive(ctx)
	if err != nil {
		t.Fatalf("Failed to count active identities: %v", err)
	}

	if count != 1 {
		t.Errorf("Expected 1 active identity, got %d", count)
	}

	// Test missing identities
	if _, err := repo.GetByID(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	if err := repo.Deactivate(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound when deactivating missing identity, got %v", err)
	}
}

func TestIdentityRepository_ConcurrentFindOrCreate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewIdentityRepository(db)
	ctx := context.Background()

	const workers = 8
	ids := make([]int, workers)
	errs := make([]error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			identity, err := repo.FindOrCreate(ctx, "li wei", testNow)
			errs[i] = err
			if identity != nil {
				ids[i] = identity.ID
			}
		}(i)
	}
	wg.Wait()

	for i := 0; i < workers; i++ {
		require.NoError(t, errs[i])
		assert.Equal(t, ids[0], ids[i], "every caller must resolve to the same identity")
	}

	identities, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, identities, 1)
}

func TestZoneRepository(t *testing.T) {
	db := setupTestDB(t)
	repo := NewZoneRepository(db)
	ctx := context.Background()

	// No zone is active initially
	if _, err := repo.GetActive(ctx); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Expected ErrNotFound for active zone, got %v", err)
	}

	library := createTestZone(t, repo, "Library", true)
	lab := createTestZone(t, repo, "Computer Lab", false)

	if library.ID == 0 || lab.ID == 0 {
		t.Fatal("Expected zone IDs to be set after creation")
	}

	active, err := repo.GetActive(ctx)
	if err != nil {
		t.Fatalf("Failed to get active zone: %v", err)
	}

	if active.ID != library.ID {
		t.Errorf("Expected Library to be active, got %s", active.Name)
	}

	// Creating an active zone deactivates the previous one
	auditorium := createTestZone(t, repo, "Auditorium", true)

	active, err = repo.GetActive(ctx)
	if err != nil {
		t.Fatalf("Failed to get active zone: %v", err)
	}

	if active.ID != auditorium.ID {
		t.Errorf("Expected Auditorium to be active, got %s", active.Name)
	}

	// Test Activate switches the active zone
	later := testNow.Add(time.Minute)
	if err := repo.Activate(ctx, lab.ID, later); err != nil {
		t.Fatalf("Failed to activate zone: %v", err)
	}

	zones, err := repo.GetAll(ctx)
	if err != nil {
		t.Fatalf("Failed to get all zones: %v", err)
	}

	activeCount := 0
	for _, zone := range zones {
		if zone.Active {
			activeCount++
			if zone.ID != lab.ID {
				t.Errorf("Expected Computer Lab to be the active zone, got %s", zone.Name)
			}
		}
	}

	if activeCount != 1 {
		t.Errorf("Expected exactly 1 active zone, got %d", activeCount)
	}

	// Test Delete refuses the active zone
	if err := repo.Delete(ctx, lab.ID); !errors.Is(err, ErrZoneActive) {
		t.Errorf("Expected ErrZoneActive, got %v", err)
	}

	// Test Deactivate then Delete
	if err := repo.Deactivate(ctx, lab.ID, later); err != nil {
		t.Fatalf("Failed to deactivate zone: %v", err)
	}

	if err := repo.Delete(ctx, lab.ID); err != nil {
		t.Fatalf("Failed to delete zone: %v", err)
	}

	if _, err := repo.GetByID(ctx, lab.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound for deleted zone, got %v", err)
	}

	// Test missing zones
	if err := repo.Activate(ctx, 999, later); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound when activating missing zone, got %v", err)
	}

	if err := repo.Delete(ctx, 999); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound when deleting missing zone, got %v", err)
	}

	// Failed activation leaves no zone active
	if _, err := repo.GetActive(ctx); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected no active zone, got %v", err)
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Failed to count zones: %v", err)
	}

	if count != 2 {
		t.Errorf("Expected 2 zones, got %d", count)
	}
}

func TestZoneRepository_ConcurrentActivation(t *testing.T) {
	db := setupTestDB(t)
	repo := NewZoneRepository(db)
	ctx := context.Background()

	var zoneIDs []int
	for i := 0; i < 6; i++ {
		zone := createTestZone(t, repo, fmt.Sprintf("Zone %d", i), false)
		zoneIDs = append(zoneIDs, zone.ID)
	}

	var wg sync.WaitGroup
	errs := make(chan error, len(zoneIDs))
	for _, id := range zoneIDs {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			errs <- repo.Activate(ctx, id, testNow)
		}(id)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	var active int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM zones WHERE active = 1`).Scan(&active))
	assert.Equal(t, 1, active)
}

func TestPresenceRepository(t *testing.T) {
	db := setupTestDB(t)
	repos := NewRepositories(db)
	ctx := context.Background()

	identity, err := repos.Identity.FindOrCreate(ctx, "john doe", testNow)
	if err != nil {
		t.Fatalf("Failed to create identity: %v", err)
	}
	zone := createTestZone(t, repos.Zone, "Library", true)

	// Test Admit
	record, image := newTestRecord(identity.ID, zone.ID)
	if err := repos.Presence.Admit(ctx, identity, record, image, "system"); err != nil {
		t.Fatalf("Failed to admit presence record: %v", err)
	}

	if record.ID == 0 {
		t.Error("Expected record ID to be set after admission")
	}

	// Test GetByID joins names
	retrieved, err := repos.Presence.GetByID(ctx, record.ID)
	if err != nil {
		t.Fatalf("Failed to get presence record: %v", err)
	}

	if retrieved.IdentityName != "john doe" || retrieved.ZoneName != "Library" {
		t.Errorf("Expected joined names, got %q and %q", retrieved.IdentityName, retrieved.ZoneName)
	}

	if retrieved.ZoneID == nil || *retrieved.ZoneID != zone.ID {
		t.Errorf("Expected zone ID %d, got %v", zone.ID, retrieved.ZoneID)
	}

	if retrieved.ImageReference != image.Reference {
		t.Errorf("Expected image reference %s, got %s", image.Reference, retrieved.ImageReference)
	}

	// Test a second admission on the same day is rejected with the original record
	duplicate, duplicateImage := newTestRecord(identity.ID, zone.ID)
	duplicate.Time = "10:30:00"
	err = repos.Presence.Admit(ctx, identity, duplicate, duplicateImage, "system")

	var dupErr *DuplicateRecordError
	if !errors.As(err, &dupErr) {
		t.Fatalf("Expected DuplicateRecordError, got %v", err)
	}

	if dupErr.Existing.Time != "09:15:00" {
		t.Errorf("Expected existing time 09:15:00, got %s", dupErr.Existing.Time)
	}

	if !errors.Is(err, ErrConflict) {
		t.Error("Expected DuplicateRecordError to match ErrConflict")
	}

	// The rejected attempt left no image behind
	var images int
	if err := db.QueryRow(`SELECT COUNT(*) FROM presence_images`).Scan(&images); err != nil {
		t.Fatalf("Failed to count images: %v", err)
	}

	if images != 1 {
		t.Errorf("Expected 1 stored image, got %d", images)
	}

	// Test GetByDate
	records, err := repos.Presence.GetByDate(ctx, "2025-10-06")
	if err != nil {
		t.Fatalf("Failed to get records by date: %v", err)
	}

	if len(records) != 1 {
		t.Errorf("Expected 1 record, got %d", len(records))
	}

	// Test CountPresent and GetAbsentIdentities
	if _, err := repos.Identity.FindOrCreate(ctx, "anna maria", testNow); err != nil {
		t.Fatalf("Failed to create identity: %v", err)
	}

	present, err := repos.Presence.CountPresent(ctx, "2025-10-06")
	if err != nil {
		t.Fatalf("Failed to count present: %v", err)
	}

	if present != 1 {
		t.Errorf("Expected 1 present, got %d", present)
	}

	absent, err := repos.Presence.GetAbsentIdentities(ctx, "2025-10-06")
	if err != nil {
		t.Fatalf("Failed to get absent identities: %v", err)
	}

	if len(absent) != 1 || absent[0].CanonicalName != "anna maria" {
		t.Errorf("Expected 'anna maria' to be absent, got %+v", absent)
	}
}

func TestPresenceRepository_ReviewWritesAudit(t *testing.T) {
	db := setupTestDB(t)
	repos := NewRepositories(db)
	ctx := context.Background()

	identity, err := repos.Identity.FindOrCreate(ctx, "john doe", testNow)
	require.NoError(t, err)
	zone := createTestZone(t, repos.Zone, "Library", true)

	record, image := newTestRecord(identity.ID, zone.ID)
	require.NoError(t, repos.Presence.Admit(ctx, identity, record, image, "system"))

	late := models.StatusLate
	notes := "bus delayed"
	updated, err := repos.Presence.Review(ctx, record.ID, models.AuditUpdate,
		models.ReviewFields{Status: &late, Notes: &notes}, "admin", testNow.Add(time.Hour))
	require.NoError(t, err)
	assert.Equal(t, models.StatusLate, updated.Status)
	assert.Equal(t, "bus delayed", updated.Notes)

	verifier := "admin"
	_, err = repos.Presence.Review(ctx, record.ID, models.AuditVerify,
		models.ReviewFields{VerifiedBy: &verifier}, "admin", testNow.Add(2*time.Hour))
	require.NoError(t, err)

	entries, err := repos.Audit.GetByRecord(ctx, record.ID)
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, models.AuditCreate, entries[0].Action)
	assert.Equal(t, "system", entries[0].Actor)
	assert.Empty(t, entries[0].OldValues)

	assert.Equal(t, models.AuditUpdate, entries[1].Action)
	var oldValues, newValues map[string]any
	require.NoError(t, json.Unmarshal([]byte(entries[1].OldValues), &oldValues))
	require.NoError(t, json.Unmarshal([]byte(entries[1].NewValues), &newValues))
	assert.Equal(t, map[string]any{"status": "Present", "notes": "", "verified_by": ""}, oldValues)
	assert.Equal(t, map[string]any{"status": "Late", "notes": "bus delayed", "verified_by": ""}, newValues)

	assert.Equal(t, models.AuditVerify, entries[2].Action)
	assert.Contains(t, entries[2].NewValues, `"verified_by":"admin"`)

	// Reviewing a missing record writes nothing
	_, err = repos.Presence.Review(ctx, 999, models.AuditUpdate,
		models.ReviewFields{Notes: &notes}, "admin", testNow)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestPresenceRepository_ConcurrentAdmission(t *testing.T) {
	db := setupTestDB(t)
	repos := NewRepositories(db)
	ctx := context.Background()

	identity, err := repos.Identity.FindOrCreate(ctx, "john doe", testNow)
	require.NoError(t, err)
	zone := createTestZone(t, repos.Zone, "Library", true)

	const workers = 6
	results := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			record, image := newTestRecord(identity.ID, zone.ID)
			image.Reference = fmt.Sprintf("img-concurrent-%d", i)
			results <- repos.Presence.Admit(ctx, identity, record, image, "system")
		}(i)
	}
	wg.Wait()
	close(results)

	committed, duplicates := 0, 0
	for err := range results {
		var dupErr *DuplicateRecordError
		switch {
		case err == nil:
			committed++
		case errors.As(err, &dupErr):
			duplicates++
		default:
			t.Errorf("Unexpected admission error: %v", err)
		}
	}

	assert.Equal(t, 1, committed)
	assert.Equal(t, workers-1, duplicates)

	var records, audits int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM presence_records`).Scan(&records))
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM audit_entries`).Scan(&audits))
	assert.Equal(t, 1, records)
	assert.Equal(t, 1, audits)
}

func TestPresenceRepository_AdmitRegistersNewIdentity(t *testing.T) {
	db := setupTestDB(t)
	repos := NewRepositories(db)
	ctx := context.Background()
	zone := createTestZone(t, repos.Zone, "Library", true)

	identity := &models.Identity{CanonicalName: "john doe", Active: true, RegisteredAt: testNow}
	record, image := newTestRecord(0, zone.ID)
	require.NoError(t, repos.Presence.Admit(ctx, identity, record, image, "system"))

	assert.NotZero(t, identity.ID)
	assert.Equal(t, identity.ID, record.IdentityID)

	stored, err := repos.Identity.GetByName(ctx, "john doe")
	require.NoError(t, err)
	assert.Equal(t, identity.ID, stored.ID)
}

func TestPresenceRepository_FailedAdmitLeavesNoIdentity(t *testing.T) {
	db := setupTestDB(t)
	repos := NewRepositories(db)
	ctx := context.Background()
	zone := createTestZone(t, repos.Zone, "Library", true)

	identity := &models.Identity{CanonicalName: "john doe", Active: true, RegisteredAt: testNow}
	record, image := newTestRecord(0, zone.ID)
	record.DistanceMeters = -1 // rejected by the distance check constraint

	err := repos.Presence.Admit(ctx, identity, record, image, "system")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConflict)
	assert.Zero(t, identity.ID)

	_, err = repos.Identity.GetByName(ctx, "john doe")
	assert.ErrorIs(t, err, ErrNotFound)

	total, err := repos.Identity.CountActive(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, total)

	var images int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM presence_images`).Scan(&images))
	assert.Equal(t, 0, images)
}

func TestPresenceRepository_ConcurrentAdmissionOfNewIdentity(t *testing.T) {
	db := setupTestDB(t)
	repos := NewRepositories(db)
	ctx := context.Background()
	zone := createTestZone(t, repos.Zone, "Library", true)

	const workers = 4
	results := make(chan error, workers)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			identity := &models.Identity{CanonicalName: "li wei", Active: true, RegisteredAt: testNow}
			record, image := newTestRecord(0, zone.ID)
			image.Reference = fmt.Sprintf("img-new-identity-%d", i)
			results <- repos.Presence.Admit(ctx, identity, record, image, "system")
		}(i)
	}
	wg.Wait()
	close(results)

	committed := 0
	for err := range results {
		var dupErr *DuplicateRecordError
		switch {
		case err == nil:
			committed++
		case errors.As(err, &dupErr):
		default:
			t.Errorf("Unexpected admission error: %v", err)
		}
	}
	assert.Equal(t, 1, committed)

	identities, err := repos.Identity.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, identities, 1)
}

func TestPresenceRepository_AdmitRollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewPresenceRepository(db)
	record, image := newTestRecord(1, 1)

	mock.ExpectBegin()
	mock.ExpectQuery("FROM presence_records p").WillReturnRows(sqlmock.NewRows([]string{"id"}))
	mock.ExpectExec("INSERT INTO presence_images").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO presence_records").WillReturnError(errors.New("disk I/O error"))
	mock.ExpectRollback()

	err = repo.Admit(context.Background(), &models.Identity{ID: 1, CanonicalName: "john doe"}, record, image, "system")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrConflict)
	assert.Contains(t, err.Error(), "failed to create presence record")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestZoneRepository_ActivateRollsBackOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewZoneRepository(db)

	columns := []string{"id", "name", "description", "latitude", "longitude", "radius_meters",
		"active", "created_by", "created_at", "updated_at"}

	mock.ExpectBegin()
	mock.ExpectQuery("FROM zones WHERE id = ?").
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(2, "Library", "", 10.6785, 77.0321, 50.0, false, "admin", testNow, testNow))
	mock.ExpectExec("UPDATE zones SET active = 0").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE zones SET active = 1").WillReturnError(errors.New("database is locked"))
	mock.ExpectRollback()

	err = repo.Activate(context.Background(), 2, testNow)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to activate zone 2")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestIsUniqueViolation(t *testing.T) {
	db := setupTestDB(t)

	_, err := db.Exec(`INSERT INTO identities (canonical_name) VALUES ('john doe')`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO identities (canonical_name) VALUES ('john doe')`)
	assert.True(t, isUniqueViolation(err))
	assert.True(t, isUniqueViolation(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, isUniqueViolation(errors.New("disk I/O error")))
	assert.False(t, isUniqueViolation(nil))
}
