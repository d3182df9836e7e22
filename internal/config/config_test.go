package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	assert.Equal(t, ".", cfg.Dir)
	assert.Equal(t, "./acf-json", cfg.Dest)
	assert.Equal(t, ".vue", cfg.Ext)
	assert.NoError(t, cfg.Validate())
}

func TestParseMergesOverDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte("dest: wp-content/themes/site/acf-json/\n"))
	require.NoError(t, err)
	assert.Equal(t, ".", cfg.Dir)
	assert.Equal(t, "wp-content/themes/site/acf-json", cfg.Dest)
	assert.Equal(t, ".vue", cfg.Ext)
}

func TestParseAllFields(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte("dir: src/components\ndest: out\next: .ts\n"))
	require.NoError(t, err)
	assert.Equal(t, Config{Dir: "src/components", Dest: "out", Ext: ".ts"}, cfg)
}

func TestParseRootDir(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte("dir: /\n"))
	require.NoError(t, err)
	assert.Equal(t, "/", cfg.Dir)
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	_, err := Parse([]byte("dir: [unclosed\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config YAML")

	_, err = Parse([]byte("ext: vue\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must start with a dot")
}

func TestLoadFileMissing(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), DefaultFile)

	cfg, err := LoadFile(path, false)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)

	_, err = LoadFile(path, true)
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	t.Parallel()
	path := filepath.Join(t.TempDir(), DefaultFile)
	require.NoError(t, os.WriteFile(path, []byte("dir: components\n"), 0o644))

	cfg, err := LoadFile(path, true)
	require.NoError(t, err)
	assert.Equal(t, "components", cfg.Dir)
}

func TestToYAMLRoundTrip(t *testing.T) {
	t.Parallel()

	data, err := Default().ToYAML()
	require.NoError(t, err)
	cfg, err := Parse(data)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}
