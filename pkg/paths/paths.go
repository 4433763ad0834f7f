// Package paths provides centralized path handling for pathgroup.
// It resolves the XDG base directories the tool stores its registry and
// settings under, with environment variable overrides for testing and
// non-standard installs.
package paths

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

// Environment variable names
const (
	// EnvDataDir overrides the XDG data directory for pathgroup
	EnvDataDir = "PATHGROUP_DATA_DIR"

	// EnvConfigDir overrides the XDG config directory for pathgroup
	EnvConfigDir = "PATHGROUP_CONFIG_DIR"
)

// Directory and file names. These define pathgroup's on-disk layout and
// are not user-configurable.
const (
	// AppDirName is the subdirectory name under the XDG base directories
	AppDirName = "pathgroup"

	// RegistryFileName is the name of the persisted path-group registry
	RegistryFileName = "groups.json"

	// ConfigFileName is the name of the optional user settings file
	ConfigFileName = "pathgroup.toml"
)

// Paths resolves the data and config locations for one process.
type Paths struct {
	dataDir   string
	configDir string
}

// New resolves directories from the override environment variables,
// falling back to the XDG data and config homes.
func New() *Paths {
	p := &Paths{
		dataDir:   filepath.Join(xdg.DataHome, AppDirName),
		configDir: filepath.Join(xdg.ConfigHome, AppDirName),
	}
	if dir := os.Getenv(EnvDataDir); dir != "" {
		p.dataDir = dir
	}
	if dir := os.Getenv(EnvConfigDir); dir != "" {
		p.configDir = dir
	}
	return p
}

// DataDir returns the directory holding the registry file.
func (p *Paths) DataDir() string {
	return p.dataDir
}

// ConfigDir returns the directory holding the user settings file.
func (p *Paths) ConfigDir() string {
	return p.configDir
}

// RegistryPath returns the full path of the registry file.
func (p *Paths) RegistryPath() string {
	return filepath.Join(p.dataDir, RegistryFileName)
}

// ConfigFilePath returns the full path of the user settings file.
func (p *Paths) ConfigFilePath() string {
	return filepath.Join(p.configDir, ConfigFileName)
}
