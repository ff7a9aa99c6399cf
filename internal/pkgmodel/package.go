// Package pkgmodel implements Package identity, alias derivation, and the
// eagerly-built per-package task table.
package pkgmodel

import (
	"fmt"
	"strings"

	"github.com/go-runz/runz/internal/manifest"
	"github.com/go-runz/runz/internal/taskparser"
	"github.com/go-runz/runz/internal/taskspec"
)

// Package is identified by a location and a manifest. Its task table is
// built eagerly at construction by running every script's command line
// through the grammar parser.
type Package struct {
	location manifest.Location
	man      *manifest.Manifest

	aliases        []string
	scopeName      string
	subPackageName string
	hostPackage    *Package

	tasks map[string]taskspec.Task
}

// New builds a Package from a location and its already-loaded manifest,
// eagerly parsing every script into a Task. host is this package's nearest
// explicitly-named ancestor, or nil if this package is itself the root of
// its naming.
func New(loc manifest.Location, man *manifest.Manifest, host *Package, cache *taskparser.Cache) (*Package, error) {
	p := &Package{location: loc, man: man, hostPackage: host}
	p.aliases, p.scopeName, p.subPackageName = deriveAliases(man.Name)
	if host == nil {
		p.hostPackage = p
	}

	p.tasks = make(map[string]taskspec.Task, len(man.Scripts))
	for name, line := range man.Scripts {
		var spec taskspec.TaskSpec
		var err error
		if cache != nil {
			spec, err = cache.Parse(line)
		} else {
			spec, err = taskparser.Parse(line)
		}
		if err != nil {
			return nil, fmt.Errorf("package %s: task %q: %w", loc, name, err)
		}
		p.tasks[name] = taskspec.NewTask(p, name, spec)
	}
	return p, nil
}

// deriveAliases computes a package's alias list and scope/sub-package
// split: the full manifest name is always the first alias;
// if it begins with "@" and contains "/", the first slash splits scopeName
// from the unscoped remainder; if the unscoped remainder itself contains a
// "/", everything after the first "/" is the subPackageName.
func deriveAliases(name string) (aliases []string, scope, subPackage string) {
	if name == "" {
		return nil, "", ""
	}
	aliases = []string{name}
	unscoped := name
	if strings.HasPrefix(name, "@") {
		if idx := strings.IndexByte(name, '/'); idx >= 0 {
			scope = name[:idx]
			unscoped = name[idx+1:]
		}
	}
	if idx := strings.IndexByte(unscoped, '/'); idx >= 0 {
		subPackage = unscoped[idx+1:]
		unscoped = unscoped[:idx]
	}
	if unscoped != name {
		aliases = append(aliases, unscoped)
	}
	return aliases, scope, subPackage
}

// DisplayName returns the package's best human-readable identity: its
// manifest name if set, otherwise its location.
func (p *Package) DisplayName() string {
	if p.man.Name != "" {
		return p.man.Name
	}
	return string(p.location)
}

// Location returns the package's directory handle.
func (p *Package) Location() manifest.Location { return p.location }

// Manifest returns the package's loaded manifest.
func (p *Package) Manifest() *manifest.Manifest { return p.man }

// Aliases returns the package's alias list, full name first.
func (p *Package) Aliases() []string { return p.aliases }

// ScopeName returns the "@scope" portion of the manifest name, or "".
func (p *Package) ScopeName() string { return p.scopeName }

// SubPackageName returns the portion of the manifest name after the first
// "/" following any scope, or "".
func (p *Package) SubPackageName() string { return p.subPackageName }

// HostPackage returns the nearest named ancestor package (itself if this
// package is its own host).
func (p *Package) HostPackage() *Package { return p.hostPackage }

// Task looks up a task by name, as built eagerly at construction.
func (p *Package) Task(name string) (taskspec.Task, bool) {
	t, ok := p.tasks[name]
	return t, ok
}

// TaskNames returns every task name this package's manifest declares.
func (p *Package) TaskNames() []string {
	names := make([]string, 0, len(p.tasks))
	for name := range p.tasks {
		names = append(names, name)
	}
	return names
}
