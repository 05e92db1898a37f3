package app

import (
	"github.com/caarlos0/env/v11"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	// MenuPath points at an optional YAML file of extra pizzas and toppings.
	MenuPath string `env:"PIZZERIA_MENU"`
	// NotifyPolicy is "abort" or "continue".
	NotifyPolicy string `env:"PIZZERIA_NOTIFY_POLICY" envDefault:"abort"`
	// Verbose enables debug logs on stderr.
	Verbose bool `env:"PIZZERIA_VERBOSE"`
}

// LoadConfig reads Config from the environment.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
