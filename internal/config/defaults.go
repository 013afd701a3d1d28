package config

const (
	defaultWorkDir        = "~/.local/share/aurora/work"
	defaultLogDir         = "~/.local/share/aurora/logs"
	defaultWhisperBinary  = "uvx"
	defaultWhisperModel   = "base"
	defaultLanguage       = "auto"
	defaultOutputFormat   = "txt"
	defaultLogFormat      = "console"
	defaultLogLevel       = "info"
	defaultRequestTimeout = 10
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			WorkDir: defaultWorkDir,
			LogDir:  defaultLogDir,
		},
		Whisper: Whisper{
			Binary:   defaultWhisperBinary,
			Model:    defaultWhisperModel,
			Language: defaultLanguage,
		},
		Output: Output{
			Format: defaultOutputFormat,
		},
		Notifications: Notifications{
			RequestTimeout: defaultRequestTimeout,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
