package config

const (
	defaultAPIBaseURL = "http://127.0.0.1:5000/api"
	defaultStateDir   = "~/.local/share/healthgpt"
	defaultLogDir     = "~/.local/share/healthgpt/logs"
	defaultColorMode  = ColorAuto
	defaultLogFormat  = "console"
	defaultLogLevel   = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		API: API{
			BaseURL: defaultAPIBaseURL,
		},
		Paths: Paths{
			StateDir: defaultStateDir,
			LogDir:   defaultLogDir,
		},
		UI: UI{
			Color: defaultColorMode,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
