package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenCreatesFile(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("database file was not created")
	}
}

func TestStoreSaveAndRetrieveSessions(t *testing.T) {
	store := openTestStore(t)

	sessions := []Session{
		{GameID: "craft", Score: 40, BlocksPlaced: 25, BlocksBroken: 15, DurationSecs: 300},
		{GameID: "craft", Score: 10, BlocksPlaced: 4, BlocksBroken: 6, DurationSecs: 60},
		{GameID: "craft", Score: 75, BlocksPlaced: 50, BlocksBroken: 25, DurationSecs: 900},
		{GameID: "farm", Score: 12, BlocksPlaced: 8, BlocksBroken: 4, DurationSecs: 200},
	}
	for _, sess := range sessions {
		if _, err := store.SaveSession(sess); err != nil {
			t.Fatalf("SaveSession() failed: %v", err)
		}
	}

	top, err := store.TopSessions("craft", 10)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("expected 3 craft sessions, got %d", len(top))
	}
	if top[0].Score != 75 || top[1].Score != 40 || top[2].Score != 10 {
		t.Errorf("sessions not sorted by score: %v", top)
	}
	if top[0].BlocksPlaced != 50 || top[0].BlocksBroken != 25 {
		t.Errorf("block counters not round-tripped: %+v", top[0])
	}

	farmTop, err := store.TopSessions("farm", 10)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(farmTop) != 1 {
		t.Errorf("expected 1 farm session, got %d", len(farmTop))
	}
}

func TestStoreTopSessionsLimit(t *testing.T) {
	store := openTestStore(t)

	for i := 0; i < 5; i++ {
		store.SaveSession(Session{GameID: "craft", Score: (i + 1) * 100})
	}

	top, err := store.TopSessions("craft", 3)
	if err != nil {
		t.Fatalf("TopSessions() failed: %v", err)
	}
	if len(top) != 3 {
		t.Fatalf("expected 3 sessions with limit, got %d", len(top))
	}
	if top[0].Score != 500 || top[1].Score != 400 || top[2].Score != 300 {
		t.Errorf("sessions not in expected order: %v", top)
	}
}

func TestStoreBestScore(t *testing.T) {
	store := openTestStore(t)

	best, err := store.BestScore("craft")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 0 {
		t.Errorf("empty store should report 0, got %d", best)
	}

	store.SaveSession(Session{GameID: "craft", Score: 33})
	store.SaveSession(Session{GameID: "craft", Score: 77})

	best, err = store.BestScore("craft")
	if err != nil {
		t.Fatalf("BestScore() failed: %v", err)
	}
	if best != 77 {
		t.Errorf("BestScore() = %d, expected 77", best)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(Session{GameID: "farm", Score: 10, BlocksPlaced: 5, BlocksBroken: 2})
	store.SaveSession(Session{GameID: "farm", Score: 30, BlocksPlaced: 15, BlocksBroken: 8})

	stats, err := store.GetGameStats("farm")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}

	if stats.Sessions != 2 {
		t.Errorf("Sessions = %d, expected 2", stats.Sessions)
	}
	if stats.BestScore != 30 {
		t.Errorf("BestScore = %d, expected 30", stats.BestScore)
	}
	if stats.AvgScore != 20 {
		t.Errorf("AvgScore = %f, expected 20", stats.AvgScore)
	}
	if stats.BlocksPlaced != 20 || stats.BlocksBroken != 10 {
		t.Errorf("block totals wrong: %+v", stats)
	}
}

func TestStoreClearSessions(t *testing.T) {
	store := openTestStore(t)

	store.SaveSession(Session{GameID: "craft", Score: 10})
	store.SaveSession(Session{GameID: "farm", Score: 20})

	if err := store.ClearSessions("craft"); err != nil {
		t.Fatalf("ClearSessions() failed: %v", err)
	}

	craft, _ := store.TopSessions("craft", 10)
	if len(craft) != 0 {
		t.Error("craft sessions should be gone")
	}
	farm, _ := store.TopSessions("farm", 10)
	if len(farm) != 1 {
		t.Error("farm sessions should survive clearing craft")
	}
}
