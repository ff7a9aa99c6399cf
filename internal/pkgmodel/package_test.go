package pkgmodel

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-runz/runz/internal/manifest"
)

func TestDeriveAliasesScopedSubPackage(t *testing.T) {
	aliases, scope, sub := deriveAliases("@acme/widgets/core")
	assert.Equal(t, []string{"@acme/widgets/core", "widgets"}, aliases)
	assert.Equal(t, "@acme", scope)
	assert.Equal(t, "core", sub)
}

func TestDeriveAliasesPlainName(t *testing.T) {
	aliases, scope, sub := deriveAliases("widgets")
	assert.Equal(t, []string{"widgets"}, aliases)
	assert.Empty(t, scope)
	assert.Empty(t, sub)
}

func TestNewBuildsTaskTable(t *testing.T) {
	man := &manifest.Manifest{Name: "widgets", Scripts: map[string]string{
		"build": "run-z compile, lint",
		"test":  "go test ./...",
	}}
	pkg, err := New(manifest.Location("/tmp/widgets"), man, nil, nil)
	require.NoError(t, err)
	assert.Equal(t, "widgets", pkg.DisplayName())
	assert.Same(t, pkg, pkg.HostPackage())

	build, ok := pkg.Task("build")
	require.True(t, ok)
	require.Len(t, build.Spec.Pre, 2)

	test, ok := pkg.Task("test")
	require.True(t, ok)
	assert.True(t, test.Spec.IsNative())
}
