package main

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyViperSettings(t *testing.T) {
	viper.Set("top", 9)
	viper.Set("tokenizer", "tiktoken")
	viper.Set("no_ignore", true)
	viper.Set("exclude", "tmp,cache")
	t.Cleanup(func() {
		viper.Set("top", 5)
		viper.Set("tokenizer", "heuristic")
		viper.Set("no_ignore", false)
		viper.Set("exclude", "")
		applyViperSettings()
	})

	applyViperSettings()

	assert.Equal(t, 9, topN)
	assert.Equal(t, "tiktoken", tokenizerKind)
	assert.True(t, noIgnore)
	assert.Equal(t, "tmp,cache", extraExcludes)
}

func TestBuildConfig_ExtraExcludes(t *testing.T) {
	viper.Set("exclude", "scratch, tmp")
	t.Cleanup(func() {
		viper.Set("exclude", "")
		applyViperSettings()
	})
	applyViperSettings()

	cfg, err := buildConfig()
	require.NoError(t, err)
	defer cfg.Tokenizer.Close()

	_, ok := cfg.ExcludeDirs["scratch"]
	assert.True(t, ok)
	_, ok = cfg.ExcludeDirs["tmp"]
	assert.True(t, ok, "whitespace around names is trimmed")
	_, ok = cfg.ExcludeDirs["node_modules"]
	assert.True(t, ok, "defaults stay unless --no-default-excludes")
}
