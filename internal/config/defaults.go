package config

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		OutputFormat: FormatJSON,
		Pretty:       true,
		Server: ServerConfig{
			Host:           "127.0.0.1",
			Port:           8710,
			AllowedOrigins: []string{"http://localhost:3000"},
		},
		Database: DatabaseConfig{
			Path: "planwise.db",
		},
		History: HistoryConfig{
			Enabled: true,
		},
	}
}
