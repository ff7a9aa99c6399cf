package manifest

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ManifestFileName is the well-known manifest file a DirLocator looks for
// at each candidate package directory.
const ManifestFileName = "run-z.yaml"

// DirLocator is the default Locator: a directory tree walk treating any
// directory containing run-z.yaml as a package location.
type DirLocator struct{}

// NewDirLocator returns a DirLocator.
func NewDirLocator() *DirLocator { return &DirLocator{} }

// Locate walks root, emitting a Location for every directory that carries
// a run-z.yaml file. A package with no such file is not located by this
// walk — callers that already hold a Location (e.g. from a PackageSelector)
// may still Load it even if Locate never surfaced it.
func (d *DirLocator) Locate(ctx context.Context, root string) (<-chan Location, error) {
	abs, err := filepath.Abs(root)
	if err != nil {
		return nil, fmt.Errorf("resolving locate root: %w", err)
	}
	out := make(chan Location)
	go func() {
		defer close(out)
		_ = filepath.WalkDir(abs, func(path string, entry fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if !entry.IsDir() {
				return nil
			}
			if _, statErr := os.Stat(filepath.Join(path, ManifestFileName)); statErr == nil {
				select {
				case out <- Location(filepath.Clean(path)):
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			return nil
		})
	}()
	return out, nil
}

// Load reads and parses loc's run-z.yaml. A missing file yields an empty
// Manifest rather than an error — a package may legally have no scripts.
func (d *DirLocator) Load(ctx context.Context, loc Location) (*Manifest, error) {
	path := filepath.Join(string(loc), ManifestFileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Manifest{}, nil
		}
		return nil, fmt.Errorf("loading manifest %s: %w", path, err)
	}
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("parsing manifest %s: %w", path, err)
	}
	return &m, nil
}

// BaseName returns loc's directory base name.
func (d *DirLocator) BaseName(loc Location) string {
	return filepath.Base(string(loc))
}

// Path returns loc's cleaned absolute path.
func (d *DirLocator) Path(loc Location) string {
	abs, err := filepath.Abs(string(loc))
	if err != nil {
		return filepath.Clean(string(loc))
	}
	return filepath.Clean(abs)
}
