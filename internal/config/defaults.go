package config

const (
	defaultPlaceholder = "{app}"
	defaultEncoding    = "auto"
	defaultSuffix      = ".iss"
	defaultLineEnding  = "crlf"
	defaultLogLevel    = "warn"
	defaultLogFormat   = "auto"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Substitution: Substitution{
			Placeholder: defaultPlaceholder,
		},
		Input: Input{
			Encoding: defaultEncoding,
		},
		Output: Output{
			Suffix:     defaultSuffix,
			LineEnding: defaultLineEnding,
		},
		Logging: Logging{
			Level:  defaultLogLevel,
			Format: defaultLogFormat,
		},
	}
}

// EOL returns the line terminator selected by Output.LineEnding.
func (c *Config) EOL() string {
	if c.Output.LineEnding == "lf" {
		return "\n"
	}
	return "\r\n"
}
