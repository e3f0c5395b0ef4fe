package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Client ClientConfig
	Server ServerConfig
}

type ClientConfig struct {
	APIURL  string
	CDNURL  string
	Timeout time.Duration
}

type ServerConfig struct {
	Port string
	Env  string
}

func Load() *Config {
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	// Set defaults
	viper.SetDefault("API_URL", "http://localhost:8080")
	viper.SetDefault("CDN_URL", "http://localhost:8080/content")
	viper.SetDefault("API_TIMEOUT_SECONDS", 10)
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("SERVER_ENV", "development")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("Warning: Could not read config file: %v", err)
	}

	return &Config{
		Client: ClientConfig{
			APIURL:  viper.GetString("API_URL"),
			CDNURL:  viper.GetString("CDN_URL"),
			Timeout: time.Duration(viper.GetInt("API_TIMEOUT_SECONDS")) * time.Second,
		},
		Server: ServerConfig{
			Port: viper.GetString("SERVER_PORT"),
			Env:  viper.GetString("SERVER_ENV"),
		},
	}
}
