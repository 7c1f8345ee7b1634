package config

import (
	"errors"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	APIBaseURL  string        `env:"API_BASE_URL" env-default:"http://localhost:8000"`
	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT" env-default:"15s"`
	RedisURL    string        `env:"REDIS_URL"`
	ClassroomID int64         `env:"CLASSROOM_ID"`
}

func New() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadConfig("./config/.env", &cfg); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			if err := cleanenv.ReadEnv(&cfg); err != nil {
				return nil, err
			}
			return &cfg, nil
		}
		return nil, err
	}
	return &cfg, nil
}
