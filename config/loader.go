package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	bustime "github.com/lamarjs/route-tracker"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from
// config.yml and the environment.
func LoadAppConfig() error {
	// A .env file is a local development convenience; absence is fine.
	_ = godotenv.Load()

	paths := []string{"config.yml", "./config/config.yml"}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	cfg.Bustime.Key = os.Getenv(bustime.KeyEnvVar)
	if cfg.Bustime.BaseURL == "" {
		cfg.Bustime.BaseURL = bustime.DefaultBaseURL
	}
	if cfg.Bustime.TimeoutMS == 0 {
		cfg.Bustime.TimeoutMS = 30000
	}
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}

	v := validator.New()
	if err := v.Struct(cfg.Bustime); err != nil {
		return err
	}
	if err := v.Struct(cfg.Server); err != nil {
		return err
	}
	Config = cfg
	return nil
}
