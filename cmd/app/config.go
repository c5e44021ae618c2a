package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"zynta_referral/internal/repository"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	configPath   = "./"
	configName   = "config"
	configFormat = "yaml"
	envFile      = ".env"
)

type Config struct {
	Referral repository.Config `yaml:"referral"`
	Server   ServerConfig      `yaml:"server"`
	Static   StaticConfig      `yaml:"static"`
	CORS     CORSConfig        `yaml:"cors"`

	LogLevel string `yaml:"logLevel"`
}

type ServerConfig struct {
	Host string `yaml:"host"`
	Port string `yaml:"port"`
}

type StaticConfig struct {
	IndexFile string `yaml:"indexFile"`
}

type CORSConfig struct {
	AllowOrigins []string `yaml:"allowOrigins"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.host", "")
	v.SetDefault("server.port", "3000")
	v.SetDefault("logLevel", "info")
	v.SetDefault("referral.rewardPoints", repository.DefaultRewardPoints)
	v.SetDefault("referral.seedSampleUsers", true)
	v.SetDefault("referral.seedFile", "")
	v.SetDefault("static.indexFile", "public/index.html")
	v.SetDefault("cors.allowOrigins", []string{})
}

// LoadConfig reads config.yaml from the working directory, falling back to
// defaults when it is absent. APP_* environment variables (APP_SERVER_PORT,
// APP_REFERRAL_REWARDPOINTS, ...) override both; a local .env is loaded first.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	v := viper.New()
	v.SetConfigName(configName)
	v.AddConfigPath(configPath)
	v.SetConfigType(configFormat)

	v.AutomaticEnv()
	v.SetEnvPrefix("APP")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}
