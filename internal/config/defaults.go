package config

const (
	defaultInput          = "data_stressskala_2025-11-09_17-36.csv"
	defaultOutput         = "data.csv"
	defaultInputEncoding  = "iso-8859-1"
	defaultOutputEncoding = "utf-8"
	defaultDelimiter      = ";"
	defaultColumn         = "DE07_01"
	defaultLogFormat      = "console"
	defaultLogLevel       = "warn"
	defaultLogOutput      = "stderr"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Files: Files{
			Input:          defaultInput,
			Output:         defaultOutput,
			InputEncoding:  defaultInputEncoding,
			OutputEncoding: defaultOutputEncoding,
			Delimiter:      defaultDelimiter,
		},
		Classifier: Classifier{
			Column: defaultColumn,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
			Output: defaultLogOutput,
		},
	}
}
