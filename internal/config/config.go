package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string  `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort   string  `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string  `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Redis      Redis   `yaml:"redis"`
	Auth       Auth    `yaml:"auth"`
	Lock       Lock    `yaml:"lock"`
	Cleanup    Cleanup `yaml:"cleanup"`
}

type Redis struct {
	Host     string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port     string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
	Password string `yaml:"password" env:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" env:"REDIS_DB" env-default:"0"`
}

type Auth struct {
	JWTSecretKey string        `yaml:"jwt-secret-key" env:"JWT_SECRET_KEY"`
	TokenTTL     time.Duration `yaml:"token-ttl" env:"TOKEN_TTL" env-default:"144h"`
}

// Lock configures the per-game lock that serializes joins and moves.
type Lock struct {
	TTL     time.Duration `yaml:"ttl" env:"LOCK_TTL" env-default:"5s"`
	MaxWait time.Duration `yaml:"max-wait" env:"LOCK_MAX_WAIT" env-default:"3s"`
}

type Cleanup struct {
	Interval  time.Duration `yaml:"interval" env:"CLEANUP_INTERVAL" env-default:"1h"`
	Retention time.Duration `yaml:"retention" env:"CLEANUP_RETENTION" env-default:"720h"`
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" || that.Port == "" {
		return ""
	}

	return fmt.Sprintf("%s:%s", that.Host, that.Port)
}
