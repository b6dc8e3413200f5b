package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_ValidJSON(t *testing.T) {
	content := `{
		"latin": ["roboto.ttf", "roboto-mono.ttf"],
		"zh_tw": "noto-tc.ttf",
		"zh_cn": "noto-sc.ttf",
		"out_name": "My Merged Font",
		"prefer_order": "latin,zh-tw,zh-cn",
		"add_jp_syllabaries": true,
		"verbose": true
	}`

	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(content), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, []string{"roboto.ttf", "roboto-mono.ttf"}, cfg.Latin)
	assert.Equal(t, "noto-tc.ttf", cfg.ZhTW)
	assert.Equal(t, "noto-sc.ttf", cfg.ZhCN)
	assert.Equal(t, "My Merged Font", cfg.OutName)
	assert.Equal(t, "latin,zh-tw,zh-cn", cfg.PreferOrder)
	assert.True(t, cfg.AddJPSyllabaries)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "config.json")
	err := os.WriteFile(tmpFile, []byte(`{ invalid json }`), 0644)
	require.NoError(t, err)

	cfg, err := LoadConfig(tmpFile)
	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestLoadConfig_FileNotFound(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	cfg, err := LoadConfig("")
	assert.Error(t, err)
	assert.Nil(t, cfg)
}

func TestValidate_MissingInputFile(t *testing.T) {
	cfg := &Config{ZhTW: filepath.Join(t.TempDir(), "missing.ttf")}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zh_tw file not found")
}

func TestValidate_ExistingInputsPass(t *testing.T) {
	dir := t.TempDir()
	font := filepath.Join(dir, "a.ttf")
	require.NoError(t, os.WriteFile(font, []byte("x"), 0644))

	cfg := &Config{Latin: []string{font}, ZhTW: font, ZhCN: font}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_UnsetFieldsPass(t *testing.T) {
	assert.NoError(t, (&Config{}).Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{OutName: "Custom Name"}
	defaults := Config{
		Out:          "merged_common.ttf",
		OutName:      "Noto Serif CJK",
		OutSubfamily: "Light",
	}

	merged := cfg.MergeWithDefaults(defaults)
	assert.Equal(t, "Custom Name", merged.OutName)
	assert.Equal(t, "merged_common.ttf", merged.Out)
	assert.Equal(t, "Light", merged.OutSubfamily)
}
