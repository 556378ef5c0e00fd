// Package config provides configuration parsing for obaquery.
package config

// Config holds the complete configuration.
type Config struct {
	Directory DirectoryConfig `json:"directory" yaml:"directory"`
	Logging   LogConfig       `json:"logging" yaml:"logging"`
}

// DirectoryConfig holds the search request settings surrounding a filter.
type DirectoryConfig struct {
	BaseDN       string   `json:"baseDN" yaml:"baseDN"`
	Scope        string   `json:"scope" yaml:"scope"`
	DerefAliases string   `json:"derefAliases" yaml:"derefAliases"`
	SizeLimit    int      `json:"sizeLimit" yaml:"sizeLimit"`
	TimeLimit    Duration `json:"timeLimit" yaml:"timeLimit"`
	TypesOnly    bool     `json:"typesOnly" yaml:"typesOnly"`
	Attributes   []string `json:"attributes" yaml:"attributes"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level  string `json:"level" yaml:"level"`
	Format string `json:"format" yaml:"format"`
	Output string `json:"output" yaml:"output"`
}
