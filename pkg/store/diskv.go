package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/peterbourgon/diskv/v3"

	"tableflip.dev/vireo/pkg/document"
)

// CorruptStoreError reports that the stored document could not be parsed.
// Callers receive a fresh default document alongside it and may log the loss;
// there is no backup to recover from.
type CorruptStoreError struct {
	Err error
}

func (e *CorruptStoreError) Error() string {
	return fmt.Sprintf("store: stored document is corrupt: %v", e.Err)
}

func (e *CorruptStoreError) Unwrap() error {
	return e.Err
}

// Persistence is the persistence contract for the wellness document. Load and
// Save are synchronous; a Save completes before it returns, so a mutation is
// never observed un-persisted by a later Load in the same process.
type Persistence interface {
	Load() (*document.Document, error)
	Save(*document.Document) error
	Watch(ctx context.Context) (<-chan Event, error)
}

// Open creates a Persistence backed by diskv using the provided config. A nil
// config falls back to LoadConfig.
func Open(cfg Config) (Persistence, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	return &persistence{d: diskv.New(diskv.Options{
		BasePath: basePath,
		// TempDir makes diskv stage each write in a scratch file and rename
		// it into place, so watchers never read a half-written document.
		TempDir:      filepath.Join(basePath, "tmp"),
		CacheSizeMax: 1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

type persistence struct {
	d        *diskv.Diskv
	basePath string
}

// Load reads the document, applying additive migration for fields introduced
// after the stored copy was written. A missing store yields a fresh default
// document. An unparsable store also yields a fresh document, with a
// CorruptStoreError so the caller can report the loss instead of crashing.
func (p *persistence) Load() (*document.Document, error) {
	if !p.d.Has(document.StorageKey) {
		return document.New(), nil
	}

	val, err := p.d.Read(document.StorageKey)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return document.New(), nil
		}
		return document.New(), &CorruptStoreError{Err: err}
	}

	doc := &document.Document{}
	if err := json.Unmarshal(val, doc); err != nil {
		return document.New(), &CorruptStoreError{Err: err}
	}

	document.Migrate(doc)
	return doc, nil
}

// Save serializes the full document and overwrites the stored value. diskv
// stages the write and moves it into place, so readers never observe a
// partial document.
func (p *persistence) Save(doc *document.Document) error {
	if doc == nil {
		return errors.New("store: nothing to save")
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("store: marshal document: %w", err)
	}
	if err := p.d.Write(document.StorageKey, data); err != nil {
		return fmt.Errorf("store: write document: %w", err)
	}
	return nil
}
