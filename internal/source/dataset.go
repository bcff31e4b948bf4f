package source

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/abelbrown/brief/internal/signal"
)

// LoadDataset reads a normalized UnifiedDataset JSON file and validates its
// invariants. "-" reads from stdin.
func LoadDataset(path string) (*signal.UnifiedDataset, error) {
	var data []byte
	var err error
	if path == "-" {
		data, err = io.ReadAll(os.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}

	return ParseDataset(data)
}

// ParseDataset decodes and validates dataset JSON.
func ParseDataset(data []byte) (*signal.UnifiedDataset, error) {
	var d signal.UnifiedDataset
	if err := json.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("parse dataset: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, fmt.Errorf("invalid dataset: %w", err)
	}
	if d.FetchedAt.IsZero() {
		d.FetchedAt = time.Now()
	}
	return &d, nil
}
