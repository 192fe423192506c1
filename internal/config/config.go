// Package config resolves process settings from the environment.
package config

import "github.com/spf13/viper"

const (
	DefaultAddr    = ":2222"
	DefaultLogDir  = "logs"
	DefaultLogFile = "app.log"
)

// Config carries the process-level settings shared by the CLI and the API.
type Config struct {
	// Addr is the API listen address.
	Addr string
	// Verbosity enables debug output when at least 1.
	Verbosity int
	// LogDir and LogFile locate the log file sink; an empty LogFile
	// disables it.
	LogDir  string
	LogFile string
	// Debug turns on stack traces in API error logs.
	Debug bool
}

// Load resolves the configuration from ROOMSIZER_* environment variables
// over the built-in defaults. A variable set to the empty string counts as
// set, which is how the log file sink gets disabled.
func Load() Config {
	v := viper.New()
	v.SetEnvPrefix("ROOMSIZER")
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()

	v.SetDefault("addr", DefaultAddr)
	v.SetDefault("verbosity", 0)
	v.SetDefault("log_dir", DefaultLogDir)
	v.SetDefault("log_file", DefaultLogFile)
	v.SetDefault("debug", false)

	return Config{
		Addr:      v.GetString("addr"),
		Verbosity: v.GetInt("verbosity"),
		LogDir:    v.GetString("log_dir"),
		LogFile:   v.GetString("log_file"),
		Debug:     v.GetBool("debug"),
	}
}
