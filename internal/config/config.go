package config

import (
	"fmt"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Environment Environment
	Log         Log
	HTTP        HTTPServer
	BaseURL     string `env:"BASE_URL" envDefault:"http://localhost:8080"`
	Database    Database

	Assets Assets `envPrefix:"ASSETS_"`
	Paypal Paypal `envPrefix:"PAYPAL_"`
}

type Paypal struct {
	// URL is where subscribe forms post to, sandbox by default.
	URL        string `env:"URL" envDefault:"https://www.sandbox.paypal.com/cgi-bin/webscr"`
	Fields     Fields `env:"FIELDS"`
	FieldsFile string `env:"FIELDS_FILE"`
	Image      string `env:"IMAGE" envDefault:"https://www.paypalobjects.com/en_US/i/btn/btn_subscribe_LG.gif"`
	ImageAlt   string `env:"IMAGE_ALT" envDefault:"PayPal - The safer, easier way to pay online!"`
}

type Assets struct {
	Prefix string `env:"PREFIX" envDefault:"/assets"`
	Dir    string `env:"DIR" envDefault:"web/assets"`
	Host   string `env:"HOST"`
}

type Database struct {
	Driver string `env:"DB_DRIVER" envDefault:"sqlite"`
	URL    string `env:"DATABASE_URL" envDefault:"paypal-subscribe.db"`
}

type Environment struct {
	Name string `env:"ENVIRONMENT" envDefault:"development"`
}

type Log struct {
	Level  string `env:"LOG_LEVEL" envDefault:"info"`
	Format string `env:"LOG_FORMAT" envDefault:"json"`
}

type HTTPServer struct {
	Host string `env:"HTTP_HOST" envDefault:"0.0.0.0"`
	Port string `env:"HTTP_PORT" envDefault:"8080"`
}

// Load parses the environment. Fields from PAYPAL_FIELDS_FILE come first;
// PAYPAL_FIELDS replaces matching keys and appends the rest.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.Paypal.FieldsFile != "" {
		fileFields, err := LoadFieldsFile(cfg.Paypal.FieldsFile)
		if err != nil {
			return nil, err
		}
		cfg.Paypal.Fields = fileFields.Merge(cfg.Paypal.Fields)
	}

	return cfg, nil
}
