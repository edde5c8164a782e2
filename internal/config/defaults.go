package config

const (
	defaultEncoding  = "auto"
	defaultIndent    = "  "
	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Input: Input{
			Encoding: defaultEncoding,
		},
		Output: Output{
			Indent: defaultIndent,
		},
		Display: Display{
			Color: true,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
