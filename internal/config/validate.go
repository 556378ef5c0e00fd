package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	ldap "github.com/go-ldap/ldap/v3"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Accepted values for DirectoryConfig.Scope and DirectoryConfig.DerefAliases.
var (
	Scopes       = []string{"base", "one", "sub"}
	DerefAliases = []string{"never", "searching", "finding", "always"}
)

// ValidateConfig validates the configuration and returns a list of validation errors.
// An empty slice indicates the configuration is valid.
func ValidateConfig(config *Config) []error {
	var errs []error

	errs = append(errs, validateDirectoryConfig(&config.Directory)...)
	errs = append(errs, validateLogConfig(&config.Logging)...)

	return errs
}

// validateDirectoryConfig validates directory configuration.
func validateDirectoryConfig(config *DirectoryConfig) []error {
	var errs []error

	// Validate baseDN format if provided
	if config.BaseDN != "" {
		if _, err := ldap.ParseDN(config.BaseDN); err != nil {
			errs = append(errs, ValidationError{
				Field:   "directory.baseDN",
				Message: err.Error(),
			})
		}
	}

	if config.Scope != "" && !contains(Scopes, config.Scope) {
		errs = append(errs, ValidationError{
			Field:   "directory.scope",
			Message: "must be " + strings.Join(Scopes, ", "),
		})
	}

	if config.DerefAliases != "" && !contains(DerefAliases, config.DerefAliases) {
		errs = append(errs, ValidationError{
			Field:   "directory.derefAliases",
			Message: "must be " + strings.Join(DerefAliases, ", "),
		})
	}

	if config.SizeLimit < 0 {
		errs = append(errs, ValidationError{
			Field:   "directory.sizeLimit",
			Message: "must be non-negative",
		})
	}

	if config.TimeLimit < 0 {
		errs = append(errs, ValidationError{
			Field:   "directory.timeLimit",
			Message: "must be non-negative",
		})
	}

	return errs
}

// validateLogConfig validates logging configuration.
func validateLogConfig(config *LogConfig) []error {
	var errs []error

	// Validate log level
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if config.Level != "" && !validLevels[strings.ToLower(strings.TrimSpace(config.Level))] {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: "must be debug, info, warn, or error",
		})
	}

	// Validate log format
	validFormats := map[string]bool{"text": true, "json": true}
	if config.Format != "" && !validFormats[strings.ToLower(strings.TrimSpace(config.Format))] {
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Message: "must be text or json",
		})
	}

	// Validate output
	if config.Output != "" && config.Output != "stdout" && config.Output != "stderr" {
		dir := filepath.Dir(config.Output)
		if !filepath.IsAbs(config.Output) {
			errs = append(errs, ValidationError{
				Field:   "logging.output",
				Message: "must be stdout, stderr, or an absolute file path",
			})
		} else if _, err := os.Stat(dir); os.IsNotExist(err) {
			errs = append(errs, ValidationError{
				Field:   "logging.output",
				Message: fmt.Sprintf("directory %s does not exist", dir),
			})
		}
	}

	return errs
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
