package config

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Directory: DirectoryConfig{
			BaseDN:       "",
			Scope:        "sub",
			DerefAliases: "never",
			SizeLimit:    0,
			TimeLimit:    0,
			TypesOnly:    false,
			Attributes:   nil,
		},
		Logging: LogConfig{
			Level:  "info",
			Format: "text",
			Output: "stderr",
		},
	}
}
