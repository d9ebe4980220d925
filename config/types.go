package config

// ServerConfig contains the web API configuration.
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// BustimeConfig contains the upstream Bustime API configuration. Key is
// populated from the environment, never from the file.
type BustimeConfig struct {
	BaseURL   string `yaml:"baseURL" validate:"omitempty,url"`
	TimeoutMS int    `yaml:"timeoutMS" validate:"gte=0"`
	Key       string `yaml:"-" validate:"required"`
}

// AppConfig is the root configuration structure.
type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Bustime BustimeConfig `yaml:"bustime"`
}
