package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port string `env:"PORT" envDefault:"8080"`

	// RabbitURL selects the production order placer; when empty the
	// simulated placer runs instead.
	RabbitURL string `env:"RABBITMQ_URL"`

	// OrdersDSN enables the Postgres order archive when set.
	OrdersDSN string `env:"ORDERS_DB_DSN"`

	OpenWeatherAPIKey string `env:"OPENWEATHER_API_KEY"`

	SubmitTimeout    time.Duration `env:"SUBMIT_TIMEOUT" envDefault:"5s"`
	SimulatedLatency time.Duration `env:"SIMULATED_LATENCY" envDefault:"2s"`
}

func Load() (Config, error) {
	var c Config
	if err := env.Parse(&c); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return c, nil
}
