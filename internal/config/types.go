package config

// OutputFormat selects how generated insights are serialized.
type OutputFormat string

const (
	FormatJSON OutputFormat = "json"
	FormatYAML OutputFormat = "yaml"
)

// Config is the top-level planwise configuration, corresponding to .planwise.yml.
type Config struct {
	OutputFormat OutputFormat   `yaml:"output_format" koanf:"output_format"`
	Pretty       bool           `yaml:"pretty" koanf:"pretty"`
	Server       ServerConfig   `yaml:"server" koanf:"server"`
	Database     DatabaseConfig `yaml:"database" koanf:"database"`
	History      HistoryConfig  `yaml:"history" koanf:"history"`
}

// ServerConfig holds HTTP API settings.
type ServerConfig struct {
	Host           string   `yaml:"host" koanf:"host"`
	Port           int      `yaml:"port" koanf:"port"`
	AllowedOrigins []string `yaml:"allowed_origins" koanf:"allowed_origins"`
}

// DatabaseConfig holds storage settings.
type DatabaseConfig struct {
	Path string `yaml:"path" koanf:"path"`
}

// HistoryConfig controls generation-history recording.
type HistoryConfig struct {
	Enabled bool `yaml:"enabled" koanf:"enabled"`
}
