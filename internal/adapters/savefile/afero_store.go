package savefile

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/andrescamacho/starship-engine/internal/domain/catalog"
	"github.com/andrescamacho/starship-engine/internal/domain/ship"
)

// Extension is appended to every save file name
const Extension = ".ship"

// AferoSaveStore keeps one codec-encoded ship per file under a directory
type AferoSaveStore struct {
	fs      afero.Fs
	dir     string
	catalog *catalog.Catalog
}

// NewAferoSaveStore creates a store rooted at dir. The catalog resolves
// archetype names when ships are loaded back.
func NewAferoSaveStore(fs afero.Fs, dir string, cat *catalog.Catalog) *AferoSaveStore {
	return &AferoSaveStore{fs: fs, dir: dir, catalog: cat}
}

// Save encodes the ship into <dir>/<name>.ship, replacing any previous file.
// The file is written in one piece so a failed encode leaves the old save intact.
func (s *AferoSaveStore) Save(ctx context.Context, name string, sh *ship.Ship) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := sh.Encode(&buf); err != nil {
		return fmt.Errorf("failed to encode ship %s: %w", name, err)
	}

	if err := s.fs.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("failed to create save directory: %w", err)
	}
	if err := afero.WriteFile(s.fs, path, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// Load decodes <dir>/<name>.ship
func (s *AferoSaveStore) Load(ctx context.Context, name string) (*ship.Ship, error) {
	path, err := s.path(name)
	if err != nil {
		return nil, err
	}

	f, err := s.fs.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("save not found: %s", name)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	sh, err := ship.Decode(f, s.catalog)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", name, err)
	}
	return sh, nil
}

// List returns the names of every save, sorted
func (s *AferoSaveStore) List(ctx context.Context) ([]string, error) {
	entries, err := afero.ReadDir(s.fs, s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read save directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), Extension) {
			continue
		}
		names = append(names, strings.TrimSuffix(entry.Name(), Extension))
	}
	sort.Strings(names)
	return names, nil
}

// Delete removes a save
func (s *AferoSaveStore) Delete(ctx context.Context, name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := s.fs.Remove(path); err != nil {
		return fmt.Errorf("failed to delete %s: %w", name, err)
	}
	return nil
}

func (s *AferoSaveStore) path(name string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return "", fmt.Errorf("invalid save name: %q", name)
	}
	return filepath.Join(s.dir, name+Extension), nil
}
