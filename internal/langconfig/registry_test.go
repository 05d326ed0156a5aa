package langconfig_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/oxhq/sce/internal/langconfig"
)

func TestRegistryLookupByNameAliasAndExtension(t *testing.T) {
	r := langconfig.NewRegistry()
	cfg := minimalPython()
	cfg.Aliases = []string{"py"}
	cfg.Extensions = []string{".py"}
	require.NoError(t, r.Register(cfg))

	byName, err := r.Get("python")
	require.NoError(t, err)
	require.Equal(t, "python", byName.Name)

	byAlias, err := r.Get("py")
	require.NoError(t, err)
	require.Equal(t, "python", byAlias.Name)

	byExt, err := r.Get(".py")
	require.NoError(t, err)
	require.Equal(t, "python", byExt.Name)

	_, err = r.Get("does-not-exist")
	require.Error(t, err)
}

func TestRegistryRejectsDuplicateName(t *testing.T) {
	r := langconfig.NewRegistry()
	require.NoError(t, r.Register(minimalPython()))
	require.Error(t, r.Register(minimalPython()))
}

func TestRegistryRejectsNilConfig(t *testing.T) {
	r := langconfig.NewRegistry()
	require.Error(t, r.Register(nil))
}
