package config

import "github.com/caarlos0/env/v9"

type Config struct {
	Port       string `env:"PORT" envDefault:"8080"`
	DBUser     string `env:"DB_USER,required"`
	DBPassword string `env:"DB_PASSWORD,required"`
	DBHost     string `env:"DB_HOST,required"` // e.g. tcp(host:3306) or unix(/cloudsql/instance)
	DBName     string `env:"DB_NAME,required"`
	DBPort     string `env:"DB_PORT" envDefault:"3306"`

	InstanceConnectionName string `env:"INSTANCE_CONNECTION_NAME"`

	// Yoco card payments.
	YocoSecretKey  string `env:"YOCO_SECRET_KEY,required"`
	YocoPublicKey  string `env:"YOCO_PUBLIC_KEY"`
	YocoChargeURL  string `env:"YOCO_CHARGE_URL" envDefault:"https://api.yoco.com/v1/charges"`
	YocoTimeoutSec int    `env:"YOCO_TIMEOUT_SECONDS" envDefault:"30"`

	// Bucket for plan image uploads. The upload route is disabled when empty.
	StorageBucket string `env:"STORAGE_BUCKET"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
