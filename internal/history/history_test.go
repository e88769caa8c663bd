package history

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/demetriusdemiurge/placer/internal/model"
)

func TestLoadMissingFileReturnsEmpty(t *testing.T) {
	dir := t.TempDir()
	entries, err := Load(filepath.Join(dir, "missing.json"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 0 {
		t.Fatalf("expected empty log, got %v", entries)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.json")

	entries := []Entry{
		{ID: "aaa", DesignID: "d1", Solver: "sequential", RanAt: time.Unix(0, 0), Metrics: model.Metrics{Score: 1.5}},
		{ID: "bbb", DesignID: "d1", Solver: "ga", RanAt: time.Unix(1, 0), Metrics: model.Metrics{Score: 0.9}},
	}
	if err := Save(path, entries); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(got) != 2 || got[0].ID != "aaa" || got[1].ID != "bbb" {
		t.Fatalf("unexpected round trip: %+v", got)
	}
}

func TestAppendStampsIDAndGrows(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "history.json")

	entries, err := Append(path, Entry{DesignID: "d1", Solver: "sequential", Metrics: model.Metrics{Score: 2.0}})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if len(entries) != 1 || entries[0].ID == "" {
		t.Fatalf("expected one stamped entry, got %+v", entries)
	}

	entries, err = Append(path, Entry{DesignID: "d1", Solver: "ga", Metrics: model.Metrics{Score: 1.0}})
	if err != nil {
		t.Fatalf("append: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected log to grow to 2 entries, got %d", len(entries))
	}
}

func TestBestPicksLowestScoreForDesign(t *testing.T) {
	entries := []Entry{
		{ID: "a", DesignID: "d1", Metrics: model.Metrics{Score: 3.0}},
		{ID: "b", DesignID: "d1", Metrics: model.Metrics{Score: 1.0}},
		{ID: "c", DesignID: "d2", Metrics: model.Metrics{Score: 0.1}},
	}
	best, found := Best(entries, "d1")
	if !found || best.ID != "b" {
		t.Fatalf("expected entry b to be best for d1, got %+v (found=%v)", best, found)
	}

	_, found = Best(entries, "missing")
	if found {
		t.Fatal("expected no match for unknown design id")
	}
}
