// Package catalog loads item definitions from designer-authored JSON
// documents and exposes them as immutable sample items. Files may hold
// either an array of documents or an object keyed by item id; later
// sources override earlier ones so local overlays work during
// development.
package catalog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/Lubba-64/inventory-go/samples"
)

type source interface {
	Load() ([]byte, error)
	Path() string
}

type fileSource struct {
	path string
}

func (f fileSource) Load() ([]byte, error) {
	return os.ReadFile(f.path)
}

func (f fileSource) Path() string {
	return f.path
}

// MemorySource serves an in-memory document set; tests use it in place
// of files.
type MemorySource struct {
	Name string
	Data []byte
}

func (m MemorySource) Load() ([]byte, error) { return m.Data, nil }

func (m MemorySource) Path() string { return m.Name }

// Document is a single item definition as it appears on disk. The struct
// is exported so tooling (the schema generator) can reflect over the
// configuration contract shared with designers.
type Document struct {
	ID          string   `json:"id" jsonschema:"title=Item ID,description=Stable identifier referenced by hosts and wire payloads.,pattern=^[a-z0-9_]+$,minLength=1,required"`
	Name        string   `json:"name" jsonschema:"title=Display Name,description=Human-readable item name.,minLength=1,required"`
	Description string   `json:"description,omitempty" jsonschema:"title=Description,description=Flavor text shown in tooltips."`
	MaxQuantity int      `json:"maxQuantity" jsonschema:"title=Max Stack Quantity,description=Per-slot quantity cap. 0 or 1 means non-stackable.,minimum=0,required"`
	Tags        []string `json:"tags,omitempty" jsonschema:"title=Tags,description=Freeform quality tags."`
}

// FileDefinitions represents the canonical contents of an item
// definition file: an array of documents. The loader also accepts an
// object keyed by item id.
type FileDefinitions []Document

// DefaultPaths returns the canonical item definition locations relative
// to the module root.
func DefaultPaths() []string {
	return []string{filepath.Join("config", "items", "definitions.json")}
}

// Registry resolves item ids to shared immutable definitions. Call
// Reload to pick up on-disk changes.
type Registry struct {
	mu      sync.RWMutex
	sources []source
	items   map[string]*samples.Item
}

// Load constructs a Registry from catalog file paths. Missing files are
// skipped so DefaultPaths works in hosts that ship no catalog.
func Load(paths ...string) (*Registry, error) {
	sources := make([]source, 0, len(paths))
	for _, path := range paths {
		trimmed := strings.TrimSpace(path)
		if trimmed == "" {
			continue
		}
		sources = append(sources, fileSource{path: trimmed})
	}
	return NewRegistry(sources...)
}

// NewRegistry constructs a Registry from arbitrary sources.
func NewRegistry(sources ...source) (*Registry, error) {
	r := &Registry{
		sources: append([]source(nil), sources...),
		items:   make(map[string]*samples.Item),
	}
	if err := r.Reload(); err != nil {
		return nil, err
	}
	return r, nil
}

// Reload re-parses every source, replacing the resolved set atomically.
func (r *Registry) Reload() error {
	if r == nil {
		return nil
	}
	items := make(map[string]*samples.Item)
	for _, src := range r.sources {
		data, err := src.Load()
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("catalog: failed loading %s: %w", src.Path(), err)
		}
		documents, err := decodeDocuments(data)
		if err != nil {
			return fmt.Errorf("catalog: failed parsing %s: %w", src.Path(), err)
		}
		seen := make(map[string]struct{}, len(documents))
		for _, doc := range documents {
			id := strings.TrimSpace(doc.ID)
			if id == "" {
				return fmt.Errorf("catalog: document missing id in %s", src.Path())
			}
			if _, dup := seen[id]; dup {
				return fmt.Errorf("catalog: duplicate id %q in %s", id, src.Path())
			}
			seen[id] = struct{}{}

			item, err := samples.NewItem(samples.ItemParams{
				ID:          id,
				Name:        doc.Name,
				Description: doc.Description,
				MaxQuantity: doc.MaxQuantity,
				Tags:        doc.Tags,
			})
			if err != nil {
				return fmt.Errorf("catalog: document %q in %s: %w", id, src.Path(), err)
			}
			items[id] = item
		}
	}

	r.mu.Lock()
	r.items = items
	r.mu.Unlock()
	return nil
}

// Resolve returns the definition for id.
func (r *Registry) Resolve(id string) (*samples.Item, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	item, ok := r.items[id]
	return item, ok
}

// Items returns every resolved definition sorted by id.
func (r *Registry) Items() []*samples.Item {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	items := make([]*samples.Item, 0, len(r.items))
	for _, item := range r.items {
		items = append(items, item)
	}
	sort.Slice(items, func(a, b int) bool { return items[a].ID() < items[b].ID() })
	return items
}

// Len reports how many definitions resolved.
func (r *Registry) Len() int {
	if r == nil {
		return 0
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.items)
}

// decodeDocuments accepts either an array of documents or an object
// keyed by item id.
func decodeDocuments(data []byte) ([]Document, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return nil, nil
	}

	if trimmed[0] == '[' {
		var docs []Document
		if err := json.Unmarshal(trimmed, &docs); err != nil {
			return nil, err
		}
		return docs, nil
	}

	var keyed map[string]Document
	if err := json.Unmarshal(trimmed, &keyed); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(keyed))
	for id := range keyed {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	docs := make([]Document, 0, len(keyed))
	for _, id := range ids {
		doc := keyed[id]
		if doc.ID == "" {
			doc.ID = id
		}
		docs = append(docs, doc)
	}
	return docs, nil
}
