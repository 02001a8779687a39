package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteDefault(t *testing.T) {
	tmpDir := t.TempDir()

	require.NoError(t, WriteDefault(tmpDir))
	assert.True(t, Exists(tmpDir))

	cfg, err := Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestWriteDefault_AlreadyExists(t *testing.T) {
	tmpDir := t.TempDir()
	require.NoError(t, WriteDefault(tmpDir))

	err := WriteDefault(tmpDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestWrite_RoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := &Config{
		Fairy:  FairyConfig{Name: "Tink", Height: 9},
		Output: OutputConfig{Format: FormatJSON},
	}

	require.NoError(t, Write(tmpDir, cfg))

	loaded, err := Load(tmpDir)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestExists(t *testing.T) {
	tmpDir := t.TempDir()
	assert.False(t, Exists(tmpDir))

	require.NoError(t, WriteDefault(tmpDir))
	assert.True(t, Exists(tmpDir))
}
