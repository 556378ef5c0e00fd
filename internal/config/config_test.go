package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	t.Run("directory defaults", func(t *testing.T) {
		assert.Equal(t, "", config.Directory.BaseDN)
		assert.Equal(t, "sub", config.Directory.Scope)
		assert.Equal(t, "never", config.Directory.DerefAliases)
		assert.Zero(t, config.Directory.SizeLimit)
		assert.Zero(t, config.Directory.TimeLimit)
		assert.Empty(t, config.Directory.Attributes)
	})

	t.Run("logging defaults", func(t *testing.T) {
		assert.Equal(t, "info", config.Logging.Level)
		assert.Equal(t, "text", config.Logging.Format)
		assert.Equal(t, "stderr", config.Logging.Output)
	})

	t.Run("defaults are valid", func(t *testing.T) {
		assert.Empty(t, ValidateConfig(config))
	})
}

func TestParseConfig(t *testing.T) {
	data := []byte(`
directory:
  baseDN: "dc=example,dc=com"
  scope: one
  sizeLimit: 100
  timeLimit: 30s
  attributes: [cn, mail]
logging:
  level: debug
  format: json
`)

	cfg, err := ParseConfig(data)
	require.NoError(t, err)

	assert.Equal(t, "dc=example,dc=com", cfg.Directory.BaseDN)
	assert.Equal(t, "one", cfg.Directory.Scope)
	assert.Equal(t, 100, cfg.Directory.SizeLimit)
	assert.Equal(t, Duration(30*time.Second), cfg.Directory.TimeLimit)
	assert.Equal(t, []string{"cn", "mail"}, cfg.Directory.Attributes)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)

	// Keys not in the file keep their defaults
	assert.Equal(t, "never", cfg.Directory.DerefAliases)
	assert.Equal(t, "stderr", cfg.Logging.Output)
}

func TestParseConfigEmpty(t *testing.T) {
	cfg, err := ParseConfig(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", "directory:\n  bogus: 1\n"},
		{"bad duration", "directory:\n  timeLimit: soon\n"},
		{"bad type", "directory:\n  sizeLimit: many\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseConfig([]byte(tt.data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "failed to parse config")
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("directory:\n  baseDN: ou=people,dc=example,dc=com\n"), 0600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "ou=people,dc=example,dc=com", cfg.Directory.BaseDN)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config")
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"bad base DN", func(c *Config) { c.Directory.BaseDN = "not a dn" }, "directory.baseDN"},
		{"bad scope", func(c *Config) { c.Directory.Scope = "deep" }, "directory.scope"},
		{"bad deref", func(c *Config) { c.Directory.DerefAliases = "sometimes" }, "directory.derefAliases"},
		{"negative size limit", func(c *Config) { c.Directory.SizeLimit = -1 }, "directory.sizeLimit"},
		{"negative time limit", func(c *Config) { c.Directory.TimeLimit = Duration(-time.Second) }, "directory.timeLimit"},
		{"bad level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"bad format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
		{"relative output", func(c *Config) { c.Logging.Output = "log.txt" }, "logging.output"},
		{"missing output dir", func(c *Config) { c.Logging.Output = "/nonexistent-dir/obaquery.log" }, "logging.output"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			errs := ValidateConfig(cfg)
			require.Len(t, errs, 1)

			var verr ValidationError
			require.ErrorAs(t, errs[0], &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestValidateConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Directory.BaseDN = "dc=example,dc=com"
	cfg.Directory.Scope = "base"
	cfg.Directory.DerefAliases = "always"
	cfg.Logging.Output = filepath.Join(t.TempDir(), "obaquery.log")

	assert.Empty(t, ValidateConfig(cfg))
}

func TestValidationErrorMessage(t *testing.T) {
	err := ValidationError{Field: "directory.scope", Message: "must be base, one, sub"}
	assert.Equal(t, "directory.scope: must be base, one, sub", err.Error())
}

func TestDurationEncoding(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Directory.TimeLimit = Duration(90 * time.Second)

	t.Run("yaml", func(t *testing.T) {
		data, err := yaml.Marshal(cfg)
		require.NoError(t, err)
		assert.Contains(t, string(data), "timeLimit: 1m30s")

		back, err := ParseConfig(data)
		require.NoError(t, err)
		assert.Equal(t, cfg.Directory.TimeLimit, back.Directory.TimeLimit)
	})

	t.Run("json", func(t *testing.T) {
		data, err := json.Marshal(cfg.Directory)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"timeLimit":"1m30s"`)

		var back DirectoryConfig
		require.NoError(t, json.Unmarshal(data, &back))
		assert.Equal(t, cfg.Directory.TimeLimit, back.TimeLimit)
	})

	t.Run("zero", func(t *testing.T) {
		data, err := yaml.Marshal(DefaultConfig())
		require.NoError(t, err)
		assert.Contains(t, string(data), "timeLimit: 0s")
	})

	t.Run("invalid json", func(t *testing.T) {
		var d Duration
		assert.Error(t, json.Unmarshal([]byte(`"soon"`), &d))
		assert.Error(t, json.Unmarshal([]byte(`30`), &d))
	})
}
