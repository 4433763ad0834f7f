// Package config loads pathgroup's tool settings: the target variable
// name, the environment scope, and an optional registry file override.
// Settings are layered the usual way: embedded defaults first, then the
// user file from the config directory when present.
package config

import (
	_ "embed"
	"errors"
	"os"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	pgerrors "github.com/arthur-debert/pathgroup/pkg/errors"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// Settings holds the effective tool configuration.
type Settings struct {
	Env struct {
		Variable string `koanf:"variable"`
		Scope    string `koanf:"scope"`
	} `koanf:"env"`
	Registry struct {
		File string `koanf:"file"`
	} `koanf:"registry"`
}

// Load builds Settings from the embedded defaults, then the user settings
// file at userFile if it exists. A missing user file is not an error; a
// malformed one is.
func Load(userFile string) (*Settings, error) {
	k := koanf.New(".")

	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, pgerrors.Wrap(err, pgerrors.ErrConfigLoad, "failed to load default settings")
	}

	if userFile != "" {
		if _, err := os.Stat(userFile); err == nil {
			if err := k.Load(file.Provider(userFile), toml.Parser()); err != nil {
				return nil, pgerrors.Wrapf(err, pgerrors.ErrConfigLoad, "failed to load settings from %s", userFile)
			}
		}
	}

	var s Settings
	if err := k.Unmarshal("", &s); err != nil {
		return nil, pgerrors.Wrap(err, pgerrors.ErrConfigLoad, "failed to unmarshal settings")
	}
	return &s, nil
}
