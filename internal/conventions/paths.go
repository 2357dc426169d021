package conventions

import "path/filepath"

const (
	// DefaultDataDir is the default pomo data directory name (relative to home).
	DefaultDataDir = ".pomo"
	// ConfigFile is the default cycle profile filename inside the data directory.
	ConfigFile = "config.yaml"
	// EnvPrefix is the prefix of the environment variables that set the flags.
	EnvPrefix = "POMO"
)

// DataDir returns the pomo data directory for a home directory.
func DataDir(home string) string {
	return filepath.Join(home, DefaultDataDir)
}

// DefaultConfigPath returns the default cycle profile path for a home directory.
func DefaultConfigPath(home string) string {
	return filepath.Join(DataDir(home), ConfigFile)
}
