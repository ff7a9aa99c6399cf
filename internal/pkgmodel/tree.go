package pkgmodel

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/go-runz/runz/internal/manifest"
	"github.com/go-runz/runz/internal/taskparser"
)

// BuildTree loads every package under root through locator and constructs
// the Package objects for a whole directory tree in one pass, deriving each
// package's HostPackage from the nearest already-built ancestor by path
// prefix. Locations must be fed to it in the order Locator.Locate produces
// them (parent directories before their descendants); DirLocator's
// filepath.WalkDir-based walk already satisfies this.
func BuildTree(ctx context.Context, locator manifest.Locator, locations <-chan manifest.Location, cache *taskparser.Cache) (map[manifest.Location]*Package, []manifest.Location, error) {
	built := make(map[manifest.Location]*Package)
	order := make([]manifest.Location, 0)

	for loc := range locations {
		if ctx.Err() != nil {
			return nil, nil, ctx.Err()
		}
		man, err := locator.Load(ctx, loc)
		if err != nil {
			return nil, nil, fmt.Errorf("loading manifest at %s: %w", locator.Path(loc), err)
		}

		// An explicitly-named package is its own host (nil host); only an
		// unnamed one inherits its nearest named ancestor.
		var host *Package
		if man.Name == "" {
			host = resolveHost(nearestAncestor(locator, loc, order, built))
		}
		pkg, err := New(loc, man, host, cache)
		if err != nil {
			return nil, nil, err
		}

		built[loc] = pkg
		order = append(order, loc)
	}

	return built, order, nil
}

// nearestAncestor finds the already-built package whose path is the
// longest proper prefix of loc's path, or nil if none qualifies.
func nearestAncestor(locator manifest.Locator, loc manifest.Location, seen []manifest.Location, built map[manifest.Location]*Package) *Package {
	path := locator.Path(loc)
	var best manifest.Location
	bestLen := -1
	for _, candidate := range seen {
		candPath := locator.Path(candidate)
		if candPath == path {
			continue
		}
		if strings.HasPrefix(path, candPath+"/") && len(candPath) > bestLen {
			best = candidate
			bestLen = len(candPath)
		}
	}
	if bestLen < 0 {
		return nil
	}
	return built[best]
}

// resolveHost derives the host param pkgmodel.New expects (the nearest
// explicitly-named ancestor) from a direct parent, which may itself be
// unnamed and therefore not be the host itself.
func resolveHost(parent *Package) *Package {
	if parent == nil {
		return nil
	}
	if parent.Manifest().Name != "" {
		return parent
	}
	return parent.HostPackage()
}

// SortedLocations returns locations sorted lexicographically, for callers
// that want deterministic iteration independent of the walk's own order.
func SortedLocations(locations []manifest.Location) []manifest.Location {
	out := append([]manifest.Location(nil), locations...)
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
