package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "TECHMARKET_CONFIG_FILE"

type delays struct {
	NoticeHideMS  int `mapstructure:"notice_hide_ms"`
	SearchQuietMS int `mapstructure:"search_quiet_ms"`
	PreloaderMS   int `mapstructure:"preloader_ms"`
	WelcomeMS     int `mapstructure:"welcome_ms"`
}

type Config struct {
	LogLevel         slog.Level `mapstructure:"log_level"`
	StoreDir         string     `mapstructure:"store_dir"`
	CatalogFile      string     `mapstructure:"catalog_file"`
	Locale           string     `mapstructure:"locale"`
	PageSize         int        `mapstructure:"page_size"`
	ExpressSurcharge int64      `mapstructure:"express_surcharge"`
	Delays           delays     `mapstructure:"delays"`
}

func Load() Config {
	setDefaults()
	viper.SetConfigFile(getConfigFilepath())

	err := viper.ReadInConfig()
	if err != nil &&
		!errors.As(err, new(viper.ConfigFileNotFoundError)) &&
		!os.IsNotExist(err) {
		die(err)
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		die(err)
	}
	return cfg
}

func setDefaults() {
	viper.SetDefault("log_level", int(slog.LevelInfo))
	viper.SetDefault("store_dir", "./techmarket-data")
	viper.SetDefault("catalog_file", "")
	viper.SetDefault("locale", "ru")
	viper.SetDefault("page_size", 8)
	viper.SetDefault("express_surcharge", 500)
	viper.SetDefault("delays.notice_hide_ms", 3000)
	viper.SetDefault("delays.search_quiet_ms", 500)
	viper.SetDefault("delays.preloader_ms", 1000)
	viper.SetDefault("delays.welcome_ms", 2000)
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "config.yaml", "config file")
	_ = cmdLine.Parse(os.Args[1:])
	env, ok := os.LookupEnv(configFileEnvName)
	if ok {
		return env
	}
	return *arg
}

func die(err error) {
	fmt.Printf("failed to load config file: %v\n", err)
	os.Exit(2)
}

func (c Config) NoticeHide() time.Duration {
	return time.Duration(c.Delays.NoticeHideMS) * time.Millisecond
}

func (c Config) SearchQuiet() time.Duration {
	return time.Duration(c.Delays.SearchQuietMS) * time.Millisecond
}

func (c Config) Preloader() time.Duration {
	return time.Duration(c.Delays.PreloaderMS) * time.Millisecond
}

func (c Config) Welcome() time.Duration {
	return time.Duration(c.Delays.WelcomeMS) * time.Millisecond
}
