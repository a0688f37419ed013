package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	defaultEnv       = "local"
	defaultBackend   = "sqlite"
	defaultConfigDir = ".safetylog"
	defaultPageSize  = 5
)

type Config struct {
	Env          string `mapstructure:"app_env"`
	ConfigDir    string `mapstructure:"config_dir"`
	StoreBackend string `mapstructure:"store_backend"`
	StorePath    string `mapstructure:"store_path"`
	SessionPath  string `mapstructure:"session_path"`
	PageSize     int    `mapstructure:"page_size"`
}

// MustLoad loads the client configuration from the environment, with the
// data directory under the user's home by default.
func MustLoad() *Config {
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			fmt.Printf("failed to load .env file: %v\n", err)
		}
	}

	viper.AutomaticEnv()
	viper.SetDefault("APP_ENV", defaultEnv)
	viper.SetDefault("STORE_BACKEND", defaultBackend)
	viper.SetDefault("CONFIG_DIR", defaultConfigDir)
	viper.SetDefault("PAGE_SIZE", defaultPageSize)

	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir := viper.GetString("CONFIG_DIR")
	if configDir == defaultConfigDir {
		configDir = filepath.Join(homeDir, configDir)
	}
	if err := os.MkdirAll(configDir, 0o700); err != nil {
		fmt.Printf("failed to create config directory: %v\n", err)
	}

	storePath := viper.GetString("STORE_PATH")
	if storePath == "" {
		storePath = filepath.Join(configDir, "safetylog.db")
	}

	config := &Config{
		Env:          viper.GetString("APP_ENV"),
		ConfigDir:    configDir,
		StoreBackend: viper.GetString("STORE_BACKEND"),
		StorePath:    storePath,
		SessionPath:  filepath.Join(configDir, "session.json"),
		PageSize:     viper.GetInt("PAGE_SIZE"),
	}

	if err := config.validate(); err != nil {
		panic(fmt.Sprintf("invalid configuration: %v", err))
	}
	return config
}

func (c *Config) validate() error {
	if c.StoreBackend == "" {
		return fmt.Errorf("store_backend must not be empty")
	}
	if c.PageSize < 1 {
		return fmt.Errorf("page_size must be positive")
	}
	return nil
}

func (c *Config) IsLocal() bool {
	return c.Env == "local" || c.Env == ""
}
