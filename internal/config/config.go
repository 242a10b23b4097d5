package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/spf13/viper"

	"github.com/goliatone/go-formsheet/internal/logging"
)

// EnvPrefix prefixes every environment override, e.g. FORMSHEET_SHEET_PATH.
const EnvPrefix = "FORMSHEET"

// Config holds application configuration.
type Config struct {
	Sheet   SheetConfig   `mapstructure:"sheet"`
	Log     LogConfig     `mapstructure:"log"`
	Output  OutputConfig  `mapstructure:"output"`
	Payload PayloadConfig `mapstructure:"payload"`
}

// SheetConfig selects the sheet declaration.
type SheetConfig struct {
	// Path is a declaration file or directory. Empty uses the embedded sheet.
	Path string `mapstructure:"path"`
	ID   string `mapstructure:"id"`
}

// LogConfig holds file logging settings.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"`
}

// OutputConfig controls payload printing.
type OutputConfig struct {
	Format string `mapstructure:"format"`
}

// PayloadConfig adjusts the payload field mapping.
type PayloadConfig struct {
	EquipmentTypeKey string `mapstructure:"equipment_type_key"`
}

// Load reads configuration from file and env. When path is empty the
// FORMSHEET_CONFIG variable is consulted, then ~/.config/formsheet/config.toml.
// A missing default file is not an error; a missing explicit file is.
func Load(path string) (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("sheet.path", "")
	v.SetDefault("sheet.id", "")
	v.SetDefault("log.path", defaultLogPath())
	v.SetDefault("log.level", "info")
	v.SetDefault("output.format", "pretty")
	v.SetDefault("payload.equipment_type_key", "")

	v.SetConfigType("toml")

	explicit := path
	if explicit == "" {
		explicit = os.Getenv(EnvPrefix + "_CONFIG")
	}
	if explicit != "" {
		v.SetConfigFile(explicit)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "formsheet"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if explicit != "" || !errors.As(err, &notFound) {
			return Config{}, goerr.Wrap(err, "failed to read config", goerr.V("path", explicit))
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, goerr.Wrap(err, "failed to unmarshal config")
	}
	return c, nil
}

func defaultLogPath() string {
	path, err := logging.DefaultPath()
	if err != nil {
		return ""
	}
	return path
}
