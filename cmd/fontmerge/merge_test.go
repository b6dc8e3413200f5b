package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/fontmerge/internal/config"
)

func TestBlocksFromConfig(t *testing.T) {
	blocks := blocksFromConfig(config.Config{
		AddLatin1:        true,
		AddJPSyllabaries: true,
	})

	assert.True(t, blocks.Latin1)
	assert.True(t, blocks.JPSyllabaries)
	assert.False(t, blocks.CJKPunct)
	assert.False(t, blocks.Halfwidth)
	assert.False(t, blocks.HanBasic)
}

func TestApplyMergeFlagOverrides(t *testing.T) {
	cfg := config.Config{
		ZhTW:    "config-tc.ttf",
		ZhCN:    "config-sc.ttf",
		OutName: "Config Name",
	}

	// Only explicitly-set flags override config values.
	require.NoError(t, mergeCommand.Flags().Set("zh-tw", "flag-tc.ttf"))
	require.NoError(t, mergeCommand.Flags().Set("latin", "a.ttf,b.ttf"))

	merged := applyMergeFlagOverrides(mergeCommand, cfg)
	assert.Equal(t, "flag-tc.ttf", merged.ZhTW)
	assert.Equal(t, []string{"a.ttf", "b.ttf"}, merged.Latin)
	assert.Equal(t, "config-sc.ttf", merged.ZhCN)
	assert.Equal(t, "Config Name", merged.OutName)
}
