// Package dataset reads the ModelNet metadata table that lists every object
// of the dataset with its class and split.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Columns of the metadata header, in file order
var Columns = []string{"object_id", "class", "split", "object_path"}

// DefaultFile is the metadata file name next to the dataset directory
const DefaultFile = "metadata_modelnet40.csv"

// Entry is one row of the metadata table
type Entry struct {
	ObjectID   string
	Class      string
	Split      string // "train" or "test"
	ObjectPath string // relative to the dataset directory, slash separated
}

// Path returns the mesh location below datasetDir
func (e Entry) Path(datasetDir string) string {
	return filepath.Join(datasetDir, filepath.FromSlash(e.ObjectPath))
}

// Metadata holds all entries in file order
type Metadata struct {
	Entries []Entry
	byID    map[string]int
}

// LoadMetadata reads a metadata CSV file
func LoadMetadata(path string) (*Metadata, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open metadata: %w", err)
	}
	defer file.Close()

	meta, err := ReadMetadata(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return meta, nil
}

// ReadMetadata parses metadata from r. Columns are located by header name,
// so additional or reordered columns are accepted.
func ReadMetadata(r io.Reader) (*Metadata, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, errors.New("missing header")
	}
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(header))
	for i, name := range header {
		index[strings.TrimSpace(name)] = i
	}
	for _, column := range Columns {
		if _, ok := index[column]; !ok {
			return nil, fmt.Errorf("missing column %q", column)
		}
	}

	meta := &Metadata{byID: make(map[string]int)}
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}

		entry := Entry{
			ObjectID:   record[index["object_id"]],
			Class:      record[index["class"]],
			Split:      record[index["split"]],
			ObjectPath: record[index["object_path"]],
		}
		if _, dup := meta.byID[entry.ObjectID]; dup {
			line, _ := reader.FieldPos(0)
			return nil, fmt.Errorf("line %d: duplicate object_id %q", line, entry.ObjectID)
		}
		meta.byID[entry.ObjectID] = len(meta.Entries)
		meta.Entries = append(meta.Entries, entry)
	}
	return meta, nil
}

// Find looks up an entry by object id
func (m *Metadata) Find(objectID string) (Entry, bool) {
	i, ok := m.byID[objectID]
	if !ok {
		return Entry{}, false
	}
	return m.Entries[i], true
}

// Classes returns the sorted set of class names
func (m *Metadata) Classes() []string {
	seen := make(map[string]bool)
	var classes []string
	for _, e := range m.Entries {
		if !seen[e.Class] {
			seen[e.Class] = true
			classes = append(classes, e.Class)
		}
	}
	sort.Strings(classes)
	return classes
}

// Split returns the entries of one split in file order
func (m *Metadata) Split(name string) []Entry {
	var entries []Entry
	for _, e := range m.Entries {
		if e.Split == name {
			entries = append(entries, e)
		}
	}
	return entries
}

// Count returns the number of entries per class
func (m *Metadata) Count() map[string]int {
	counts := make(map[string]int)
	for _, e := range m.Entries {
		counts[e.Class]++
	}
	return counts
}
