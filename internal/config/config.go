package config

import (
	"log"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	Env         string     `yaml:"env" env-default:"local"`
	StoragePath string     `yaml:"storage_path" env-required:"true"`
	HTTP        HTTPConfig `yaml:"http"`
	Auth        AuthConfig `yaml:"auth"`
}

type HTTPConfig struct {
	Port int `yaml:"port"`
}

type AuthConfig struct {
	Secret          string        `yaml:"secret" env:"AUTH_SECRET" env-required:"true"`
	AccessTokenTTL  time.Duration `yaml:"access_ttl" env-default:"15m"`
	RefreshTokenTTL time.Duration `yaml:"refresh_ttl" env-default:"720h"`
}

func Load(path string) *Config {
	var config Config
	err := cleanenv.ReadConfig(path, &config)
	if err != nil {
		log.Fatalf("cannot read config: %s", err)
	}
	return &config
}
