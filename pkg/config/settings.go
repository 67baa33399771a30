package config

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/adrg/xdg"
	"github.com/arthur-debert/unii/pkg/errors"
	"github.com/arthur-debert/unii/pkg/logging"
	"github.com/go-viper/mapstructure/v2"
	tomlparser "github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	toml "github.com/pelletier/go-toml/v2"
)

const (
	// AppName is the directory name used under the XDG base directories
	AppName = "unii"

	// SettingsFileName is the name of the settings file
	SettingsFileName = "settings.toml"

	// EnvPrefix prefixes every environment override
	EnvPrefix = "UNII_"

	// DefaultPath is the root storage directory when nothing overrides it
	DefaultPath = "~/unii"
)

// Settings is the user configuration for unii.
type Settings struct {
	// Path is the root directory holding every course and the global templates.
	Path string `koanf:"path" toml:"path"`

	// CourseCodePattern, when set, is a regular expression new course codes must match.
	CourseCodePattern string `koanf:"course-code-pattern" toml:"course-code-pattern,omitempty"`
}

// DefaultSettingsFile returns $XDG_CONFIG_HOME/unii/settings.toml
func DefaultSettingsFile() string {
	return filepath.Join(xdg.ConfigHome, AppName, SettingsFileName)
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{Path: DefaultPath}
}

func defaultsMap() map[string]interface{} {
	return map[string]interface{}{
		"path":                DefaultPath,
		"course-code-pattern": "",
	}
}

// Load reads settings from path layered over the defaults and the
// environment. A missing file is not an error; the defaults apply.
func Load(path string) (*Settings, error) {
	logger := logging.GetLogger("config")
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaultsMap(), "."), nil); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load default settings")
	}

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), tomlparser.Parser()); err != nil {
				return nil, errors.Wrapf(err, errors.ErrConfigParse, "failed to parse settings file %s", path)
			}
			logger.Debug().Str("path", path).Msg("Loaded settings file")
		} else if !os.IsNotExist(err) {
			return nil, errors.Wrapf(err, errors.ErrConfigLoad, "failed to stat settings file %s", path)
		}
	}

	err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", "-")
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigLoad, "failed to load environment settings")
	}

	var settings Settings
	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           &settings,
			WeaklyTypedInput: true,
			TagName:          "koanf",
		},
	}
	if err := k.UnmarshalWithConf("", &settings, unmarshalConf); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to decode settings")
	}

	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &settings, nil
}

// OpenOrCreate loads the settings at path, writing the defaults there first
// if the file does not exist yet.
func OpenOrCreate(path string) (*Settings, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Default().Write(path); err != nil {
			return nil, err
		}
		logger := logging.GetLogger("config")
		logger.Info().Str("path", path).Msg("Created default settings file")
	}
	return Load(path)
}

// Write serializes the settings as TOML to path, creating parent directories.
func (s *Settings) Write(path string) error {
	data, err := toml.Marshal(s)
	if err != nil {
		return errors.Wrap(err, errors.ErrSerialize, "failed to serialize settings")
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return errors.Wrapf(err, errors.ErrDirCreate, "failed to create settings directory for %s", path)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrapf(err, errors.ErrFileWrite, "failed to write settings file %s", path)
	}
	return nil
}

// Validate checks that the settings are usable.
func (s *Settings) Validate() error {
	if strings.TrimSpace(s.Path) == "" {
		return errors.New(errors.ErrConfigValid, "settings path cannot be empty")
	}
	if _, err := s.CourseCodeRegexp(); err != nil {
		return err
	}
	return nil
}

// CourseCodeRegexp compiles the course code pattern. It returns nil when no
// pattern is configured.
func (s *Settings) CourseCodeRegexp() (*regexp.Regexp, error) {
	if s.CourseCodePattern == "" {
		return nil, nil
	}
	re, err := regexp.Compile(s.CourseCodePattern)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrConfigValid,
			"invalid course-code-pattern %q", s.CourseCodePattern)
	}
	return re, nil
}
