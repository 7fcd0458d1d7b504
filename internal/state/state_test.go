package state

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// setupTestDB creates an in-memory SQLite database with the schema initialized.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open db: %v", err)
	}

	// Configure SQLite
	pragmas := []string{
		"PRAGMA foreign_keys = ON",
		"PRAGMA journal_mode = WAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			t.Fatalf("failed to set pragma: %v", err)
		}
	}

	if err := initSchema(db); err != nil {
		db.Close()
		t.Fatalf("failed to init schema: %v", err)
	}

	return db
}

// TestGetLayoutValue_Missing tests that an absent key is not an error.
func TestGetLayoutValue_Missing(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	value, err := getLayoutValue(db, "conversation_width")
	if err != nil {
		t.Fatalf("getLayoutValue failed: %v", err)
	}
	if value != "" {
		t.Errorf("expected empty value for missing key, got %q", value)
	}
}

// TestSetAndGetLayoutValue tests the basic write/read round trip.
func TestSetAndGetLayoutValue(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := setLayoutValue(db, "sidebar_width", "288"); err != nil {
		t.Fatalf("setLayoutValue failed: %v", err)
	}

	value, err := getLayoutValue(db, "sidebar_width")
	if err != nil {
		t.Fatalf("getLayoutValue failed: %v", err)
	}
	if value != "288" {
		t.Errorf("value = %q, want %q", value, "288")
	}
}

// TestSetLayoutValue_Overwrite tests that writing an existing key replaces it.
func TestSetLayoutValue_Overwrite(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	if err := setLayoutValue(db, "sidebar_width", "288"); err != nil {
		t.Fatalf("setLayoutValue failed: %v", err)
	}
	if err := setLayoutValue(db, "sidebar_width", "350"); err != nil {
		t.Fatalf("setLayoutValue failed: %v", err)
	}

	value, err := getLayoutValue(db, "sidebar_width")
	if err != nil {
		t.Fatalf("getLayoutValue failed: %v", err)
	}
	if value != "350" {
		t.Errorf("value = %q, want %q", value, "350")
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM layout_state`).Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("row count = %d, want 1", count)
	}
}

// TestRemoveLayoutValue tests key deletion, including deleting an absent key.
func TestRemoveLayoutValue(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	m := &Manager{db: db}

	if err := m.Set("manager_collapsed", "true"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := m.Remove("manager_collapsed"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}

	value, err := m.Get("manager_collapsed")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != "" {
		t.Errorf("value after remove = %q, want empty", value)
	}

	// Removing an absent key is a no-op
	if err := m.Remove("manager_collapsed"); err != nil {
		t.Errorf("Remove of absent key failed: %v", err)
	}
}

// TestClearLayout tests that all layout keys are wiped in one call.
func TestClearLayout(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	m := &Manager{db: db}

	keys := []string{"sidebar_width", "conversation_width", "main_collapsed"}
	for _, k := range keys {
		if err := m.Set(k, "42"); err != nil {
			t.Fatalf("Set(%q) failed: %v", k, err)
		}
	}

	if err := m.ClearLayout(); err != nil {
		t.Fatalf("ClearLayout failed: %v", err)
	}

	for _, k := range keys {
		value, err := m.Get(k)
		if err != nil {
			t.Fatalf("Get(%q) failed: %v", k, err)
		}
		if value != "" {
			t.Errorf("value for %q after clear = %q, want empty", k, value)
		}
	}
}

// TestGetWorkspace_Empty tests getting workspace state from empty database.
func TestGetWorkspace_Empty(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ws, err := getWorkspace(db)
	if err != nil {
		t.Fatalf("getWorkspace failed: %v", err)
	}
	if ws != nil {
		t.Errorf("expected nil workspace on empty db, got %+v", ws)
	}
}

// TestSaveAndGetWorkspace tests saving and retrieving workspace state.
func TestSaveAndGetWorkspace(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	state := WorkspaceState{
		Root:         "/home/user/projects/demo",
		FocusedPanel: "conversation",
	}

	if err := saveWorkspace(db, state); err != nil {
		t.Fatalf("saveWorkspace failed: %v", err)
	}

	retrieved, err := getWorkspace(db)
	if err != nil {
		t.Fatalf("getWorkspace failed: %v", err)
	}
	if retrieved == nil {
		t.Fatal("expected non-nil workspace")
	}
	if retrieved.Root != state.Root {
		t.Errorf("Root = %q, want %q", retrieved.Root, state.Root)
	}
	if retrieved.FocusedPanel != state.FocusedPanel {
		t.Errorf("FocusedPanel = %q, want %q", retrieved.FocusedPanel, state.FocusedPanel)
	}
}

// TestSaveWorkspace_Upsert tests that saving twice keeps a single row.
func TestSaveWorkspace_Upsert(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	first := WorkspaceState{Root: "/a", FocusedPanel: "sidebar"}
	second := WorkspaceState{Root: "/b", FocusedPanel: "manager"}

	if err := saveWorkspace(db, first); err != nil {
		t.Fatalf("saveWorkspace failed: %v", err)
	}
	if err := saveWorkspace(db, second); err != nil {
		t.Fatalf("saveWorkspace failed: %v", err)
	}

	retrieved, err := getWorkspace(db)
	if err != nil {
		t.Fatalf("getWorkspace failed: %v", err)
	}
	if retrieved.Root != "/b" {
		t.Errorf("Root = %q, want %q", retrieved.Root, "/b")
	}
	if retrieved.FocusedPanel != "manager" {
		t.Errorf("FocusedPanel = %q, want %q", retrieved.FocusedPanel, "manager")
	}

	var count int
	if err := db.QueryRow(`SELECT COUNT(*) FROM workspace_state`).Scan(&count); err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Errorf("row count = %d, want 1", count)
	}
}

// TestSchemaVersion tests that the schema version is recorded once.
func TestSchemaVersion(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	// Re-running init must not duplicate the version row
	if err := initSchema(db); err != nil {
		t.Fatalf("initSchema failed: %v", err)
	}

	var version int
	if err := db.QueryRow(`SELECT version FROM schema_version`).Scan(&version); err != nil {
		t.Fatalf("version query failed: %v", err)
	}
	if version != currentSchemaVersion {
		t.Errorf("version = %d, want %d", version, currentSchemaVersion)
	}
}

// TestMockImplementsStorage tests the mock's key/value behavior.
func TestMockImplementsStorage(t *testing.T) {
	m := NewMock()

	if err := m.Set("sidebar_width", "300"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	value, err := m.Get("sidebar_width")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if value != "300" {
		t.Errorf("value = %q, want %q", value, "300")
	}

	if err := m.Remove("sidebar_width"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if value, _ := m.Get("sidebar_width"); value != "" {
		t.Errorf("value after remove = %q, want empty", value)
	}
}
