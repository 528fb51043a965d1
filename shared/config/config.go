package config

import (
	"fmt"
	"os"
	"path"
	"time"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	AccessTokenAge     time.Duration `yaml:"access_token_age" validate:"required"`
	LogLevel           string        `yaml:"log_level"`
	LogJSON            bool          `yaml:"log_json"`
	CorsAllowedOrigins []string      `yaml:"cors_allowed_origins"`
	SecureHeaders      bool          `yaml:"secure_headers"` // enables HSTS, set when served over https

	// per client IP on POST /authentications
	LoginRatePerSecond float64 `yaml:"login_rate_per_second" validate:"required"`
	LoginBurst         int     `yaml:"login_burst" validate:"required"`
	// per authenticated user on POST /threads
	ThreadRatePerSecond float64 `yaml:"thread_rate_per_second" validate:"required"`
	ThreadBurst         int     `yaml:"thread_burst" validate:"required"`
}

type Pg struct {
	Host     string `yaml:"host" validate:"required"`
	Port     int    `yaml:"port" validate:"required"`
	User     string `yaml:"user" validate:"required"`
	Password string `yaml:"password" validate:"required"`
	Dbname   string `yaml:"dbname" validate:"required"`
}

type Private struct {
	Pg              Pg     `yaml:"pg"`
	AccessTokenKey  string `yaml:"access_token_key" validate:"required"`
	RefreshTokenKey string `yaml:"refresh_token_key" validate:"required"`
}

// implementing jwt config

func (s *Config) AccessTokenKey() string {
	return s.Private.AccessTokenKey
}

func (s *Config) RefreshTokenKey() string {
	return s.Private.RefreshTokenKey
}

func (s *Config) AccessTokenAge() time.Duration {
	return s.Public.AccessTokenAge
}

func mustLoadPath(configPath string, output interface{}) {
	// check if file exists
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file: " + configPath)
	}

	if err := yaml.UnmarshalStrict(configFile, output); err != nil {
		panic(fmt.Sprintf("can't unmarshal config file %s: %s", configPath, err))
	}
}

// MustLoad reads public.yaml and private.yaml from configFolder and panics if
// either is missing, malformed or lacks a required field.
func MustLoad(configFolder string) *Config {
	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	mustLoadPath(path.Join(configFolder, "private.yaml"), &private)

	cfg := &Config{public, private}
	if err := Validate(cfg); err != nil {
		panic(err.Error())
	}
	return cfg
}

func Validate(cfg *Config) error {
	validate := validator.New(validator.WithRequiredStructEnabled())
	if err := validate.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
