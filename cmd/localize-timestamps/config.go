package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-timestamps/dom"
)

const envPrefix = "TIMESTAMPS"

type appConfig struct {
	Selector string      `yaml:"selector" envconfig:"SELECTOR"`
	Timezone string      `yaml:"timezone" envconfig:"TIMEZONE"`
	LogLevel string      `yaml:"log_level" envconfig:"LOG_LEVEL"`
	Serve    serveConfig `yaml:"serve" envconfig:"SERVE"`
}

type serveConfig struct {
	Addr string `yaml:"addr" envconfig:"ADDR"`
	Root string `yaml:"root" envconfig:"ROOT"`
}

func defaultConfig() appConfig {
	return appConfig{
		Selector: dom.DefaultSelector,
		LogLevel: "info",
		Serve: serveConfig{
			Addr: ":8080",
			Root: ".",
		},
	}
}

// loadConfig layers defaults, the optional YAML file, .env and the process
// environment, in that order.
func loadConfig(path, dotenv string) (appConfig, error) {
	cfg := defaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("yaml parse error: %w", err)
		}
	}

	if dotenv != "" {
		if err := godotenv.Load(dotenv); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return cfg, fmt.Errorf("load %s: %w", dotenv, err)
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return cfg, fmt.Errorf("process environment: %w", err)
	}

	cfg.Selector = strings.TrimSpace(cfg.Selector)
	if cfg.Selector == "" {
		cfg.Selector = dom.DefaultSelector
	}

	return cfg, nil
}

// overrideString replaces dst when the flag value is set.
func overrideString(dst *string, value string) {
	if value = strings.TrimSpace(value); value != "" {
		*dst = value
	}
}
