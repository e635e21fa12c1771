package configs

const (
	// EnvOutputFormat is the environment variable for global output format
	EnvOutputFormat = "KOMAND_OUTPUT_FORMAT"
)

var envSource ConfigSource = &envConfigSource{}

// GetOutputFormat resolves the output format name from:
// 1. Environment variable KOMAND_OUTPUT_FORMAT (highest priority)
// 2. Config file OutputFormat setting
// 3. Default to empty string (caller should use default format)
func (c *Config) GetOutputFormat() string {
	if envFormat, err := envSource.Get(EnvOutputFormat); err == nil && envFormat != "" {
		return envFormat
	}

	if c != nil && c.OutputFormat != "" {
		return c.OutputFormat
	}

	return ""
}
