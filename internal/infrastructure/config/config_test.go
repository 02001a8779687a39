package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ersonp/fairy-core/internal/domain/entities"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, entities.DefaultName, cfg.Fairy.Name)
	assert.Equal(t, entities.MinHeight, cfg.Fairy.Height)
	assert.Equal(t, FormatText, cfg.Output.Format)
	assert.NoError(t, cfg.Validate())
}

func TestConfigDir(t *testing.T) {
	result := ConfigDir("/home/user/project")
	assert.Equal(t, "/home/user/project/.fairy", result)
}

func TestConfigFilePath(t *testing.T) {
	result := ConfigFilePath("/home/user/project")
	assert.Equal(t, "/home/user/project/.fairy/config.yaml", result)
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	tmpDir := t.TempDir()

	cfg, err := Load(tmpDir)

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_FromFile(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, `fairy:
  name: Tink
  height: 7
output:
  format: json
`)

	cfg, err := Load(tmpDir)

	require.NoError(t, err)
	assert.Equal(t, "Tink", cfg.Fairy.Name)
	assert.Equal(t, 7, cfg.Fairy.Height)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, "fairy:\n  name: Puck\n")

	cfg, err := Load(tmpDir)

	require.NoError(t, err)
	assert.Equal(t, "Puck", cfg.Fairy.Name)
	assert.Equal(t, entities.MinHeight, cfg.Fairy.Height)
	assert.Equal(t, FormatText, cfg.Output.Format)
}

func TestLoad_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, "fairy: [unclosed\n")

	_, err := Load(tmpDir)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config file")
}

func TestLoad_Validation(t *testing.T) {
	tests := []struct {
		name    string
		content string
		errMsg  string
	}{
		{
			name:    "height too large",
			content: "fairy:\n  height: 21\n",
			errMsg:  "invalid fairy.height",
		},
		{
			name:    "negative height",
			content: "fairy:\n  height: -3\n",
			errMsg:  "invalid fairy.height",
		},
		{
			name:    "unknown format",
			content: "output:\n  format: xml\n",
			errMsg:  "invalid output.format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tmpDir := t.TempDir()
			writeConfig(t, tmpDir, tt.content)

			_, err := Load(tmpDir)

			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	tmpDir := t.TempDir()
	writeConfig(t, tmpDir, "fairy:\n  name: Tink\n  height: 7\n")
	t.Setenv(EnvName, "Puck")
	t.Setenv(EnvHeight, "15")
	t.Setenv(EnvOutput, FormatJSON)

	cfg, err := Load(tmpDir)

	require.NoError(t, err)
	assert.Equal(t, "Puck", cfg.Fairy.Name)
	assert.Equal(t, 15, cfg.Fairy.Height)
	assert.Equal(t, FormatJSON, cfg.Output.Format)
}

func TestLoad_EnvHeightNotANumber(t *testing.T) {
	t.Setenv(EnvHeight, "tall")

	_, err := Load(t.TempDir())

	require.Error(t, err)
	assert.Contains(t, err.Error(), EnvHeight)
}

func TestLoad_EnvHeightOutOfRange(t *testing.T) {
	t.Setenv(EnvHeight, "0")

	_, err := Load(t.TempDir())

	require.ErrorIs(t, err, entities.ErrOutOfRange)
}

func writeConfig(t *testing.T, basePath, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Join(basePath, DefaultConfigDir), 0755))
	require.NoError(t, os.WriteFile(ConfigFilePath(basePath), []byte(content), 0600))
}
