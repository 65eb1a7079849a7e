package config

import (
	_ "embed"
	"errors"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/adrg/xdg"
	dserrors "github.com/arthur-debert/dotsync/pkg/errors"
	"github.com/arthur-debert/dotsync/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/afero"
)

//go:embed embedded/defaults.toml
var defaultConfig []byte

const (
	appDirName     = "dotsync"
	configFileName = "config.toml"
	envPrefix      = "DOTSYNC_"
)

// Source selects the backend for the manifest and repository copies
type Source string

const (
	SourceFilesystem Source = "filesystem"
	SourceEmbedded   Source = "embedded"
	SourceAuto       Source = "auto"
)

// Settings is the resolved dotsync configuration
type Settings struct {
	Source Source `koanf:"source"`
	Color  string `koanf:"color"`
}

// Options tune where settings are read from
type Options struct {
	// ConfigFile replaces the XDG location when set
	ConfigFile string
	// Overrides are applied last
	Overrides map[string]interface{}
}

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, errors.New("not implemented")
}

// DefaultConfigFile returns $XDG_CONFIG_HOME/dotsync/config.toml
func DefaultConfigFile() string {
	xdg.Reload()
	return filepath.Join(xdg.ConfigHome, appDirName, configFileName)
}

// Load merges every settings source and validates the result
func Load(opts Options) (*Settings, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	// 1. Embedded defaults
	if err := k.Load(&rawBytesProvider{bytes: defaultConfig}, toml.Parser()); err != nil {
		return nil, dserrors.Wrap(err, dserrors.ErrConfigLoad, "failed to load defaults")
	}

	// 2. User config file
	path := opts.ConfigFile
	if path == "" {
		path = DefaultConfigFile()
	}
	ok, err := afero.Exists(afero.NewOsFs(), path)
	if err != nil {
		return nil, dserrors.Wrapf(err, dserrors.ErrConfigLoad, "failed to check config file %s", path)
	}
	if ok {
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, dserrors.Wrapf(err, dserrors.ErrConfigLoad, "failed to load config from %s", path)
		}
		logger.Debug().Str("path", path).Msg("Loaded user config")
	}

	// 3. Environment
	err = k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, dserrors.Wrap(err, dserrors.ErrConfigLoad, "failed to load env vars")
	}

	// 4. Overrides
	if len(opts.Overrides) > 0 {
		if err := k.Load(confmap.Provider(opts.Overrides, "."), nil); err != nil {
			return nil, dserrors.Wrap(err, dserrors.ErrConfigLoad, "failed to apply overrides")
		}
	}

	var settings Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &settings,
			WeaklyTypedInput: true,
			DecodeHook:       normalizeStringHookFunc(),
		},
	}
	if err := k.UnmarshalWithConf("", &settings, unmarshalConf); err != nil {
		return nil, dserrors.Wrap(err, dserrors.ErrConfigLoad, "failed to unmarshal configuration")
	}

	if err := settings.validate(); err != nil {
		return nil, err
	}

	logger.Debug().
		Str("source", string(settings.Source)).
		Str("color", settings.Color).
		Msg("Settings loaded")
	return &settings, nil
}

// normalizeStringHookFunc trims and lowercases every string value
func normalizeStringHookFunc() mapstructure.DecodeHookFunc {
	return func(f reflect.Type, t reflect.Type, data interface{}) (interface{}, error) {
		if f.Kind() != reflect.String || t.Kind() != reflect.String {
			return data, nil
		}
		return strings.ToLower(strings.TrimSpace(data.(string))), nil
	}
}

func (s *Settings) validate() error {
	switch s.Source {
	case SourceFilesystem, SourceEmbedded, SourceAuto:
	default:
		return dserrors.Newf(dserrors.ErrConfigLoad,
			"invalid source %q (want filesystem, embedded or auto)", s.Source)
	}

	switch s.Color {
	case "auto", "always", "never":
	default:
		return dserrors.Newf(dserrors.ErrConfigLoad,
			"invalid color %q (want auto, always or never)", s.Color)
	}
	return nil
}
