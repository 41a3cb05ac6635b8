package config

// Config represents the complete configuration structure
type Config struct {
	Vine    VineConfig    `mapstructure:"vine"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// VineConfig holds Vine credentials and connection settings. Either an
// api_key or an email/password pair may be supplied; both may be empty
// for commands that hit public endpoints only.
type VineConfig struct {
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
	APIKey   string `mapstructure:"api_key"`
	Timeout  int    `mapstructure:"timeout"`
}

// HasCredentials reports whether any authentication path is configured.
func (c VineConfig) HasCredentials() bool {
	return c.APIKey != "" || (c.Email != "" && c.Password != "")
}

// LoggingConfig contains logging configuration
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Color  bool   `mapstructure:"color"`
}
