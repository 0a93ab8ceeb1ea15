package config

import "github.com/spf13/pflag"

// Flag names shared by every notebook command.
const (
	FlagDB       = "db"
	FlagConfig   = "config"
	FlagLogLevel = "log-level"
	FlagLogFile  = "log-file"
)

// Flags holds the global command-line flags. Register binds them to a flag
// set (the root command's persistent flags); empty values defer to the
// lower-precedence sources.
type Flags struct {
	DB       string
	Config   string
	LogLevel string
	LogFile  string
}

// Register binds f's fields to fs.
func (f *Flags) Register(fs *pflag.FlagSet) {
	fs.StringVar(&f.DB, FlagDB, "", "SQLite database file (env NOTEBOOK_STORAGE_DB_DSN)")
	fs.StringVarP(&f.Config, FlagConfig, "c", "", "JSON config file path (env NOTEBOOK_CONFIG)")
	fs.StringVar(&f.LogLevel, FlagLogLevel, "", "log level: debug, info, warn, error (env NOTEBOOK_LOG_LEVEL)")
	fs.StringVar(&f.LogFile, FlagLogFile, "", "append logs to this file instead of stderr (env NOTEBOOK_LOG_FILE)")
}

func (f Flags) toConfig() *StructuredConfig {
	return &StructuredConfig{
		Storage: Storage{
			DB: DB{DSN: f.DB},
		},
		Log: Log{
			Level: f.LogLevel,
			File:  f.LogFile,
		},
		JSONFilePath: f.Config,
	}
}
