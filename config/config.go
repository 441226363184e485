package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const configFileEnvName = "SHOPFRONT_CONFIG_FILE"

type Config struct {
	LogLevel    slog.Level `mapstructure:"log_level"`
	StoragePath string     `mapstructure:"storage_path"`
	DraftsDir   string     `mapstructure:"drafts_dir"`
	Currency    string     `mapstructure:"currency"`
}

// Load reads the optional config file over compiled-in defaults.
// A missing file is fine for a single-device engine; an unreadable
// one is not.
func Load() Config {
	viper.SetDefault("log_level", int(slog.LevelInfo))
	viper.SetDefault("storage_path", "shopfront.db")
	viper.SetDefault("drafts_dir", "drafts")
	viper.SetDefault("currency", "₹")

	viper.SetConfigFile(getConfigFilepath())

	err := viper.ReadInConfig()
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		die(err)
	}

	var cfg Config
	err = viper.UnmarshalExact(&cfg)
	if err != nil {
		die(err)
	}

	return cfg
}

func getConfigFilepath() string {
	cmdLine := pflag.NewFlagSet(os.Args[0], pflag.ExitOnError)
	arg := cmdLine.String("config", "shopfront.yaml", "config file")
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

func (c Config) Print() {
	tamplate := `
	LogLevel=%q
	StoragePath=%q
	DraftsDir=%q
	Currency=%q

`
	fmt.Println("Loaded config:")
	fmt.Printf(
		strings.TrimLeft(tamplate, "\n"),
		c.LogLevel,
		c.StoragePath,
		c.DraftsDir,
		c.Currency,
	)
}
