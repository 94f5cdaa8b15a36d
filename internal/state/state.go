package state

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"stockwatch/internal/scrape"
)

// Record is the last-known standing of one tracked product.
type Record struct {
	Status      scrape.Availability `json:"status"`
	Price       string              `json:"price,omitempty"`
	LastChecked time.Time           `json:"last_checked"`
	LastChanged time.Time           `json:"last_changed"`
}

// File maps product name to its record. Entries appear on first
// observation and are never pruned automatically.
type File map[string]Record

// Load reads the state file from the previous run. A missing file is an
// empty state, not an error: the first run starts from scratch.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return File{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read state file: %w", err)
	}

	var f File
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse state file %s: %w", path, err)
	}
	if f == nil {
		f = File{}
	}
	return f, nil
}

// Save writes the state through a temp file and rename so a crashed run
// can never leave a half-written file for the next run to choke on.
func Save(path string, f File) error {
	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	data = append(data, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}
