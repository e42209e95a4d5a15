package database

import (
	"testing"
	"time"

	"juicetycoon/internal/game"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	// A named shared-cache DSN keeps the database alive across gorm's
	// pooled connections for the duration of the test.
	store, err := Open("file:" + t.Name() + "?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestAppendAndRecent(t *testing.T) {
	store := openTestStore(t)

	for i := 1; i <= 3; i++ {
		err := store.Append(&ServeRecord{
			OrderID:    uint64(i),
			RecipeID:   "apple_juice",
			CustomerID: "regular",
			Result:     string(game.ResultMatched),
			Points:     10,
			Streak:     i,
			Score:      10 * i,
		})
		if err != nil {
			t.Fatalf("Append() error = %v", err)
		}
	}

	records, err := store.Recent(2)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("Recent(2) returned %d records", len(records))
	}
	if records[0].OrderID != 3 || records[1].OrderID != 2 {
		t.Errorf("Recent(2) order = %d, %d; want newest first", records[0].OrderID, records[1].OrderID)
	}
}

func TestSinkRecordsServesAndTimeouts(t *testing.T) {
	store := openTestStore(t)
	sink := store.Sink()

	now := time.Now()
	sink(game.Event{Type: game.EventServedSuccess, At: now, Data: game.ServeData{
		OrderID: 1, RecipeID: "apple_juice", CustomerID: "regular",
		Result: game.ResultMatched, Points: 10, Streak: 1, Score: 10,
	}})
	sink(game.Event{Type: game.EventOrderTimeout, At: now, Data: game.TimeoutData{
		OrderID: 2, RecipeID: "citrus_blend", CustomerID: "hungry", Penalty: 8, Score: 2,
	}})
	// Events without serve payloads are ignored.
	sink(game.Event{Type: game.EventPoured, At: now, Data: game.PouredData{Vessel: 0, FruitID: "apple"}})

	records, err := store.Recent(10)
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("serve log has %d records, want 2", len(records))
	}
	if records[0].Result != string(game.ResultTimeout) || records[0].Points != -8 {
		t.Errorf("timeout record = %+v", records[0])
	}
	if records[1].Result != string(game.ResultMatched) || records[1].Points != 10 {
		t.Errorf("match record = %+v", records[1])
	}
}
