package model

import "time"

// Config is the complete leaselint configuration.
// Values are layered: flags > LEASELINT_* env vars > config file > defaults.
type Config struct {
	Jurisdiction string            `yaml:"jurisdiction" mapstructure:"jurisdiction"`
	Server       ServerConfig      `yaml:"server" mapstructure:"server"`
	Oracle       OracleConfig      `yaml:"oracle" mapstructure:"oracle"`
	Cache        CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency  ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	Output       OutputConfig      `yaml:"output" mapstructure:"output"`
}

// ServerConfig configures the HTTP API server
type ServerConfig struct {
	Addr         string        `yaml:"addr" mapstructure:"addr"`
	ReadTimeout  time.Duration `yaml:"read_timeout" mapstructure:"read_timeout"`
	WriteTimeout time.Duration `yaml:"write_timeout" mapstructure:"write_timeout"`
	AuthToken    string        `yaml:"auth_token" mapstructure:"auth_token"`
	RateLimit    float64       `yaml:"rate_limit" mapstructure:"rate_limit"` // Requests per second, 0 disables
	RateBurst    int           `yaml:"rate_burst" mapstructure:"rate_burst"`
	DBPath       string        `yaml:"db_path" mapstructure:"db_path"`
}

// OracleConfig configures the optional reasoning oracle
type OracleConfig struct {
	Provider   string  `yaml:"provider" mapstructure:"provider"` // "openai", "anthropic", "ollama", "mock", "" (disabled)
	Model      string  `yaml:"model" mapstructure:"model"`
	APIKey     string  `yaml:"api_key" mapstructure:"api_key"`
	BaseURL    string  `yaml:"base_url" mapstructure:"base_url"`
	Timeout    int     `yaml:"timeout" mapstructure:"timeout"` // Seconds per call
	MaxTokens  int     `yaml:"max_tokens" mapstructure:"max_tokens"`
	RateLimit  float64 `yaml:"rate_limit" mapstructure:"rate_limit"` // Oracle calls per second, 0 disables
	HTTPProxy  string  `yaml:"http_proxy" mapstructure:"http_proxy"`
	HTTPSProxy string  `yaml:"https_proxy" mapstructure:"https_proxy"`
	NoProxy    string  `yaml:"no_proxy" mapstructure:"no_proxy"`
}

// CacheConfig configures oracle response caching
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// ConcurrencyConfig bounds parallel work
type ConcurrencyConfig struct {
	AssessWorkers int `yaml:"assess_workers" mapstructure:"assess_workers"` // Per-contract clause parallelism
	BatchWorkers  int `yaml:"batch_workers" mapstructure:"batch_workers"`   // Concurrent contracts in batch mode
}

// OutputConfig controls report rendering
type OutputConfig struct {
	Verbose       bool `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool `yaml:"include_footer" mapstructure:"include_footer"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Jurisdiction: "NSW",
		Server: ServerConfig{
			Addr:         ":8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			RateLimit:    10,
			RateBurst:    20,
			DBPath:       "leaselint.db",
		},
		Oracle: OracleConfig{
			Provider:  "", // Disabled by default
			Timeout:   30,
			MaxTokens: 1000,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       ".leaselint-cache",
			MemoryTTL: 1 * time.Hour,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			AssessWorkers: 4,
			BatchWorkers:  4,
		},
		Output: OutputConfig{
			Verbose:       false,
			IncludeFooter: true,
		},
	}
}
