package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, contents string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "lazrs.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoadConfig(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
log:
  enabled: true
  level: debug
codec:
  chunk_size: 1000
  workers: 4
  checksum: crc64-ecma
`)

	config, err := LoadConfig(path)
	require.NoError(t, err)

	assert.True(t, config.Log.Enabled)
	assert.Equal(t, "debug", config.Log.Level)
	assert.Equal(t, "json", config.Log.Encoding)
	assert.Equal(t, uint32(1000), config.Codec.ChunkSize)
	assert.Equal(t, 4, config.Codec.Workers)
	assert.True(t, config.Codec.Compression)

	opts := config.CodecOptions()
	assert.Equal(t, uint32(1000), opts.ChunkSize)
	assert.True(t, opts.Checksum.Enable)
	assert.Equal(t, "crc64-ecma", string(opts.Checksum.Algorithm))
	assert.NotNil(t, config.Logger("lazrs-test"))
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"bad yaml":     "codec: [",
		"zero chunk":   "codec:\n  chunk_size: 0\n",
		"bad level":    "log:\n  level: loud\n",
		"bad checksum": "codec:\n  checksum: md5\n",
		"bad zstd":     "codec:\n  compression_level: 9\n",
		"neg workers":  "codec:\n  workers: -2\n",
		"bad encoding": "log:\n  encoding: xml\n",
	}

	for name, contents := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			_, err := LoadConfig(writeConfig(t, contents))
			require.Error(t, err)
		})
	}

	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestChecksumNone(t *testing.T) {
	t.Parallel()

	config, err := LoadConfig(writeConfig(t, "codec:\n  checksum: none\n"))
	require.NoError(t, err)
	assert.False(t, config.CodecOptions().Checksum.Enable)
}

func TestFromEnv(t *testing.T) {
	t.Setenv(EnvConfigPath, "")
	config, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), config)

	t.Setenv(EnvConfigPath, writeConfig(t, "codec:\n  chunk_size: 0\n"))
	config, err = FromEnv()
	require.Error(t, err)
	assert.Equal(t, DefaultConfig(), config)

	t.Setenv(EnvConfigPath, writeConfig(t, "codec:\n  workers: 2\n"))
	config, err = FromEnv()
	require.NoError(t, err)
	assert.Equal(t, 2, config.Codec.Workers)
}
