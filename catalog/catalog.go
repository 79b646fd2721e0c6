package catalog

import (
	"encoding/json"
	"errors"
	"io/fs"
	"log"
	"os"
	"strings"
	"sync/atomic"

	"wayfare/models"
)

// Catalog is an immutable snapshot of the POI dataset. It is never mutated
// after Load; hot reloads build a new Catalog and swap it into the Store.
type Catalog struct {
	pois   []models.PointOfInterest
	byCity map[string][]models.PointOfInterest
}

// Load reads a JSON array of POI records from path. A missing file is not
// an error: the app must keep working with zero POIs. Records failing
// validation are logged and skipped; the load continues.
func Load(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Printf("catalog: dataset %s not found, starting with empty catalog", path)
			return build(nil), nil
		}
		return nil, err
	}

	var records []models.PointOfInterest
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(records))
	valid := make([]models.PointOfInterest, 0, len(records))
	for i, rec := range records {
		if reason := validate(rec); reason != "" {
			log.Printf("catalog: skipping record %d (id=%q): %s", i, rec.ID, reason)
			continue
		}
		if seen[rec.ID] {
			log.Printf("catalog: skipping record %d: duplicate id %q", i, rec.ID)
			continue
		}
		seen[rec.ID] = true
		valid = append(valid, rec)
	}

	return build(valid), nil
}

func validate(p models.PointOfInterest) string {
	if strings.TrimSpace(p.ID) == "" {
		return "missing id"
	}
	if strings.TrimSpace(p.Name) == "" {
		return "missing name"
	}
	if strings.TrimSpace(p.City) == "" {
		return "missing city"
	}
	if p.SuggestedDurationMin <= 0 {
		return "suggestedDurationMin must be positive"
	}
	return ""
}

func build(pois []models.PointOfInterest) *Catalog {
	c := &Catalog{
		pois:   pois,
		byCity: make(map[string][]models.PointOfInterest),
	}
	for _, p := range pois {
		key := strings.ToLower(strings.TrimSpace(p.City))
		c.byCity[key] = append(c.byCity[key], p)
	}
	return c
}

// All returns every loaded POI, in dataset order.
func (c *Catalog) All() []models.PointOfInterest {
	return c.pois
}

// ByCity returns the POIs for a destination city, case-insensitive exact
// match. An unknown city yields nil, not an error.
func (c *Catalog) ByCity(city string) []models.PointOfInterest {
	return c.byCity[strings.ToLower(strings.TrimSpace(city))]
}

func (c *Catalog) Len() int {
	return len(c.pois)
}

// Store holds the current catalog behind a single swappable reference so
// in-flight requests always observe one consistent snapshot.
type Store struct {
	path string
	cur  atomic.Pointer[Catalog]
}

// NewStore loads the dataset at path and returns a store serving it.
func NewStore(path string) (*Store, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	s := &Store{path: path}
	s.cur.Store(c)
	return s, nil
}

// Current returns the active snapshot. Safe for concurrent use.
func (s *Store) Current() *Catalog {
	return s.cur.Load()
}

// Reload re-reads the dataset and swaps the snapshot atomically.
func (s *Store) Reload() (*Catalog, error) {
	c, err := Load(s.path)
	if err != nil {
		return nil, err
	}
	s.cur.Store(c)
	return c, nil
}
