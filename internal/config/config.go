package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

const (
	// StoragePostgres persists the catalog and ledgers in Postgres via GORM.
	StoragePostgres = "postgres"
	// StorageMemory keeps everything in an in-process store, seeded with the demo catalog.
	StorageMemory = "memory"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	BaseURL            string   `mapstructure:"base_url"`
	Port               string   `mapstructure:"port"`
	Storage            string   `mapstructure:"storage"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"`
}

// Load reads the yaml config at path. Every key can be overridden with an
// environment variable prefixed with STOCKAPI, e.g. STOCKAPI_API_PORT.
func Load(path string) (*AppConfig, error) {
	v := viper.New()
	v.SetConfigFile(path)

	v.SetEnvPrefix("STOCKAPI")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("v.ReadInConfig -> %w", err)
	}

	var conf AppConfig
	if err := v.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("v.Unmarshal -> %w", err)
	}

	if err := validate(&conf); err != nil {
		return nil, err
	}

	v.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info("config file changed", zap.String("file", e.Name))
	})
	v.WatchConfig()

	return &conf, nil
}

func validate(conf *AppConfig) error {
	if conf.API == nil {
		return fmt.Errorf("missing api section")
	}
	if conf.API.Port == "" {
		return fmt.Errorf("missing api.port")
	}

	switch conf.API.Storage {
	case "", StoragePostgres:
		conf.API.Storage = StoragePostgres
		if conf.Postgres == nil {
			return fmt.Errorf("missing postgres section for postgres storage")
		}
	case StorageMemory:
	default:
		return fmt.Errorf("unknown api.storage %q", conf.API.Storage)
	}

	if conf.Gin == nil {
		conf.Gin = &GinConfig{Mode: "release"}
	}

	return nil
}
