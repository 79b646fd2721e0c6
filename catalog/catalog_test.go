package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pois.json")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadMissingFileYieldsEmptyCatalog(t *testing.T) {
	c, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("missing dataset must not be an error, got %v", err)
	}
	if c.Len() != 0 {
		t.Fatalf("expected empty catalog, got %d records", c.Len())
	}
	if c.ByCity("Agra") != nil {
		t.Fatal("expected nil for any city on an empty catalog")
	}
}

func TestLoadSkipsInvalidRecords(t *testing.T) {
	path := writeDataset(t, `[
		{"id":"t1","name":"Taj Mahal","city":"Agra","suggestedDurationMin":120,"tags":["history"]},
		{"id":"","name":"No ID","city":"Agra","suggestedDurationMin":60},
		{"id":"t2","name":"","city":"Agra","suggestedDurationMin":60},
		{"id":"t3","name":"No City","city":"","suggestedDurationMin":60},
		{"id":"t4","name":"Zero Duration","city":"Agra","suggestedDurationMin":0},
		{"id":"t1","name":"Duplicate","city":"Agra","suggestedDurationMin":90},
		{"id":"t5","name":"Fort","city":"Agra","suggestedDurationMin":90,"tags":["history"]}
	]`)

	c, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("expected 2 valid records, got %d", c.Len())
	}
	if got := c.ByCity("Agra"); len(got) != 2 || got[0].ID != "t1" || got[1].ID != "t5" {
		t.Fatalf("unexpected city index contents: %+v", got)
	}
}

func TestByCityIsCaseInsensitive(t *testing.T) {
	path := writeDataset(t, `[
		{"id":"p1","name":"Gateway","city":"Mumbai","suggestedDurationMin":60}
	]`)

	c, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	for _, q := range []string{"mumbai", "MUMBAI", " Mumbai "} {
		if got := c.ByCity(q); len(got) != 1 {
			t.Fatalf("ByCity(%q) = %d results, want 1", q, len(got))
		}
	}
	if c.ByCity("Pune") != nil {
		t.Fatal("unknown city should yield nil, not an error")
	}
}

func TestLoadMalformedJSONIsAnError(t *testing.T) {
	path := writeDataset(t, `{"not":"an array"`)
	if _, err := Load(path); err == nil {
		t.Fatal("expected an error for malformed JSON")
	}
}

func TestStoreReloadSwapsSnapshot(t *testing.T) {
	path := writeDataset(t, `[
		{"id":"p1","name":"Gateway","city":"Mumbai","suggestedDurationMin":60}
	]`)

	store, err := NewStore(path)
	if err != nil {
		t.Fatal(err)
	}
	before := store.Current()
	if before.Len() != 1 {
		t.Fatalf("expected 1 record, got %d", before.Len())
	}

	update := `[
		{"id":"p1","name":"Gateway","city":"Mumbai","suggestedDurationMin":60},
		{"id":"p2","name":"Marine Drive","city":"Mumbai","suggestedDurationMin":45}
	]`
	if err := os.WriteFile(path, []byte(update), 0644); err != nil {
		t.Fatal(err)
	}

	if _, err := store.Reload(); err != nil {
		t.Fatal(err)
	}
	if store.Current().Len() != 2 {
		t.Fatalf("expected 2 records after reload, got %d", store.Current().Len())
	}
	// the old snapshot is untouched
	if before.Len() != 1 {
		t.Fatal("reload must not mutate a previously obtained snapshot")
	}
}
