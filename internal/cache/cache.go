// Package cache remembers which files were clean on the previous scan so
// repeated scans of large export directories skip unchanged content.
package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
)

type DB struct {
	// Path relative to scan root -> content hash of the file when it last
	// scanned clean. Files with matches are never cached.
	Entries map[string]string `json:"entries"`
}

func defaultPath(root string) string {
	return filepath.Join(root, ".leakwarden.cache.json")
}

func Load(root string) (DB, error) {
	var db DB
	p := defaultPath(root)
	f, err := os.ReadFile(p)
	if err != nil {
		return DB{Entries: map[string]string{}}, err
	}
	if err := json.Unmarshal(f, &db); err != nil {
		return DB{Entries: map[string]string{}}, err
	}
	if db.Entries == nil {
		db.Entries = map[string]string{}
	}
	return db, nil
}

func Save(root string, db DB) error {
	if db.Entries == nil {
		return errors.New("empty cache")
	}
	p := defaultPath(root)
	b, _ := json.MarshalIndent(db, "", "  ")
	return os.WriteFile(p, b, 0644)
}

// Hash returns the content hash used for cache entries.
func Hash(data []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(data))
}

// IsClean reports whether the file content is unchanged since it last
// scanned without matches.
func (db DB) IsClean(rel string, data []byte) bool {
	h, ok := db.Entries[rel]
	return ok && h == Hash(data)
}

// MarkClean records that the file scanned without matches.
func (db DB) MarkClean(rel string, data []byte) {
	db.Entries[rel] = Hash(data)
}

// Invalidate forgets a file that now has matches.
func (db DB) Invalidate(rel string) {
	delete(db.Entries, rel)
}
