package configs

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port            string        `envconfig:"PORT" default:"8000"`
	DBSource        string        `envconfig:"DB_SOURCE" default:"pos.db"`
	GinMode         string        `envconfig:"GIN_MODE" default:"debug"`
	UploadDir       string        `envconfig:"UPLOAD_DIR" default:"uploads"`
	CheckoutTimeout time.Duration `envconfig:"CHECKOUT_TIMEOUT" default:"10s"`
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("no .env file, using environment")
	}
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		logrus.WithError(err).Fatal("parse config")
	}
	return &cfg
}
