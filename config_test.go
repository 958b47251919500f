// FILE: config_test.go
package rotatelog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAttrsFromFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "rotatelog.toml")
	toml := `
[rotatelog]
compression_mode = "gzip"
archive = "number"
purge = "count:5"
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(toml), 0644))

	attrs, err := LoadAttrsFromFile(cfgPath)
	require.NoError(t, err)

	v, ok := attrs.Get(AttrCompressionMode)
	require.True(t, ok)
	assert.Equal(t, CompressionGzip, v)

	v, ok = attrs.Get(AttrArchive)
	require.True(t, ok)
	assert.Equal(t, ArchiveNumber, v)

	v, ok = attrs.Get(AttrPurge)
	require.True(t, ok)
	assert.Equal(t, "count:5", v)
}

func TestLoadAttrsFromFileMissingFileKeepsDefaults(t *testing.T) {
	dir := t.TempDir()
	attrs, err := LoadAttrsFromFile(filepath.Join(dir, "absent.toml"))
	require.NoError(t, err)

	v, ok := attrs.Get(AttrCompressionMode)
	require.True(t, ok)
	assert.Equal(t, CompressionNone, v)
}

func TestNewChannelFromFileAppliesAttrs(t *testing.T) {
	dir := t.TempDir()
	cfgPath := filepath.Join(dir, "rotatelog.toml")
	toml := `
[rotatelog]
compression_mode = "zlib"
`
	require.NoError(t, os.WriteFile(cfgPath, []byte(toml), 0644))

	primary := filepath.Join(dir, "name.log")
	c, err := NewChannelFromFile(cfgPath, primary)
	require.NoError(t, err)

	v, ok := c.GetAttr(AttrCompressionMode)
	require.True(t, ok)
	assert.Equal(t, CompressionZlib, v)
}
