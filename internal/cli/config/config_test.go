package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	ResetConfig()
	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, DefaultPolicy, cfg.Policy)
	assert.Equal(t, DefaultNotation, cfg.Notation)
	assert.Equal(t, DefaultOutput, cfg.Output)
	assert.False(t, cfg.FindAll)
	assert.False(t, cfg.Verbose)
	assert.Equal(t, "", GetConfigFileUsed())
	assert.Same(t, cfg, GetCurrentConfig())
}

func TestLoadConfigFile(t *testing.T) {
	ResetConfig()
	path := filepath.Join(t.TempDir(), "numble.yaml")
	require.NoError(t, os.WriteFile(path, []byte("policy: dumb\nfind_all: true\nnotation: postfix\n"), 0o644))

	cfg, err := LoadConfig(path, nil)
	require.NoError(t, err)

	assert.Equal(t, "dumb", cfg.Policy)
	assert.True(t, cfg.FindAll)
	assert.Equal(t, "postfix", cfg.Notation)
	assert.Equal(t, DefaultOutput, cfg.Output, "unset keys keep their defaults")
	assert.Equal(t, path, GetConfigFileUsed())
}

func TestLoadConfigEnv(t *testing.T) {
	ResetConfig()
	t.Setenv("NUMBLE_POLICY", "dumb")
	t.Setenv("NUMBLE_FIND_ALL", "true")

	cfg, err := LoadConfig("", nil)
	require.NoError(t, err)

	assert.Equal(t, "dumb", cfg.Policy)
	assert.True(t, cfg.FindAll)
}

func TestLoadConfigFlagsOverrideEnv(t *testing.T) {
	ResetConfig()
	t.Setenv("NUMBLE_OUTPUT", "json")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "", "")
	require.NoError(t, flags.Set("output", "table"))

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, "table", cfg.Output)
}

func TestLoadConfigUnchangedFlagsIgnored(t *testing.T) {
	ResetConfig()
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("output", "", "")

	cfg, err := LoadConfig("", flags)
	require.NoError(t, err)
	assert.Equal(t, DefaultOutput, cfg.Output, "a flag that was not set must not override defaults")
}

func TestLoadConfigInvalidValues(t *testing.T) {
	ResetConfig()
	path := filepath.Join(t.TempDir(), "numble.yaml")
	require.NoError(t, os.WriteFile(path, []byte("policy: clever\n"), 0o644))

	_, err := LoadConfig(path, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "policy")
}

func TestLoadConfigMissingExplicitFile(t *testing.T) {
	ResetConfig()
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "defaults valid", mutate: func(*Config) {}},
		{name: "dumb policy", mutate: func(c *Config) { c.Policy = "dumb" }},
		{name: "postfix notation", mutate: func(c *Config) { c.Notation = "postfix" }},
		{name: "csv output", mutate: func(c *Config) { c.Output = "csv" }},
		{name: "bad policy", mutate: func(c *Config) { c.Policy = "strict" }, wantErr: true},
		{name: "bad notation", mutate: func(c *Config) { c.Notation = "prefix" }, wantErr: true},
		{name: "bad output", mutate: func(c *Config) { c.Output = "xml" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestGetLoggerFallback(t *testing.T) {
	logger := GetLogger(context.Background())
	require.NotNil(t, logger)
	// Must be safe to use without configuration.
	logger.Debug("discarded")
}
