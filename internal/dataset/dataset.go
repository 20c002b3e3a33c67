// Package dataset reads seed contacts from files and writes contact
// snapshots as JSONL.
package dataset

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/rolodex/pkg/types"
)

// ErrUnknownFormat is returned by Load for an unsupported file extension.
var ErrUnknownFormat = errors.New("unknown dataset format")

// Load reads contacts from path. The format follows the extension: .jsonl
// holds one contact per line, .json a single array, .yaml or .yml a sequence.
// Load does not check the store invariants; the store does that when it is
// built from the result.
func Load(path string) ([]types.Contact, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl":
		return ReadJSONL(path)
	case ".json":
		return readDocument(path, json.Unmarshal)
	case ".yaml", ".yml":
		return readDocument(path, yaml.Unmarshal)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, path)
	}
}

func readDocument(path string, unmarshal func([]byte, any) error) ([]types.Contact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	var contacts []types.Contact
	if err := unmarshal(data, &contacts); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return contacts, nil
}
