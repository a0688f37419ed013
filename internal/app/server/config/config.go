package config

import (
	"log"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvLocal = "local"
	EnvDev   = "dev"
	EnvProd  = "prod"

	defaultRunAddress = ":8080"
	defaultBackend    = "sqlite"
	defaultDataDir    = ".safetylog"
)

type Config struct {
	Env    string
	Server server
	Store  store
}

type server struct {
	RunAddress string `env:"RUN_ADDRESS"`
}

type store struct {
	Backend string `env:"STORE_BACKEND"`
	Path    string `env:"STORE_PATH"`
}

func MustLoad() *Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	viper.AutomaticEnv()
	viper.SetDefault("APP_ENV", EnvLocal)
	viper.SetDefault("RUN_ADDRESS", defaultRunAddress)
	viper.SetDefault("STORE_BACKEND", defaultBackend)

	storePath := viper.GetString("STORE_PATH")
	if storePath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		dataDir := filepath.Join(home, defaultDataDir)
		if err := os.MkdirAll(dataDir, 0o700); err != nil {
			log.Printf("cannot create data directory %s: %v", dataDir, err)
		}
		storePath = filepath.Join(dataDir, "safetylog.db")
	}

	return &Config{
		Env: viper.GetString("APP_ENV"),
		Server: server{
			RunAddress: viper.GetString("RUN_ADDRESS"),
		},
		Store: store{
			Backend: viper.GetString("STORE_BACKEND"),
			Path:    storePath,
		},
	}
}
