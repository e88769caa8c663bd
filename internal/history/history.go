// Package history persists a log of solver runs to a JSON file in the
// user's config directory, the same storage convention the toolchain
// uses for profiles and other small local records.
package history

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"

	"github.com/demetriusdemiurge/placer/internal/model"
)

// Entry is one completed solver run.
type Entry struct {
	ID       string        `json:"id"`
	DesignID string        `json:"design_id"`
	Solver   string        `json:"solver"` // "sequential" or "ga"
	RanAt    time.Time     `json:"ran_at"`
	Metrics  model.Metrics `json:"metrics"`
	Duration time.Duration `json:"duration_ns"`
}

// DefaultDir returns the default directory for history storage.
func DefaultDir() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "placer"), nil
}

// DefaultPath returns the default file path for the run history log.
func DefaultPath() (string, error) {
	dir, err := DefaultDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "history.json"), nil
}

// Load reads all history entries from path. A missing file is not an
// error; it yields an empty log.
func Load(path string) ([]Entry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []Entry{}, nil
		}
		return nil, err
	}

	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// Save writes the full entry log to path, creating parent directories
// as needed.
func Save(path string, entries []Entry) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Append loads the existing log at path, adds entry (stamping a fresh
// ID if unset), and saves it back.
func Append(path string, entry Entry) ([]Entry, error) {
	entries, err := Load(path)
	if err != nil {
		return nil, err
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()[:8]
	}
	entries = append(entries, entry)
	if err := Save(path, entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// AppendToDefault appends entry to the history log at DefaultPath.
func AppendToDefault(entry Entry) ([]Entry, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return Append(path, entry)
}

// Best returns the lowest-scoring entry for a given design ID, or false
// if no matching entry exists.
func Best(entries []Entry, designID string) (Entry, bool) {
	var best Entry
	found := false
	for _, e := range entries {
		if e.DesignID != designID {
			continue
		}
		if !found || e.Metrics.Score < best.Metrics.Score {
			best = e
			found = true
		}
	}
	return best, found
}
