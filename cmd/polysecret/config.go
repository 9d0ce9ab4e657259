package main

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/vitalvas/polysecret/xconfig"
)

const envPrefix = "POLYSECRET"

type logConfig struct {
	Level  string `yaml:"level" default:"info"`
	Format string `yaml:"format" default:"text"`
}

type config struct {
	Log     logConfig     `yaml:"log"`
	Output  string        `yaml:"output" default:"auto"`
	Workers int           `yaml:"workers"`
	Timeout time.Duration `yaml:"timeout"`
}

func (c *config) Default() {
	c.Workers = runtime.NumCPU()
}

// loadConfig reads defaults, the optional config file and POLYSECRET_* variables.
func loadConfig(path string) (*config, error) {
	options := []xconfig.Option{xconfig.WithEnv(envPrefix)}

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config: %w", err)
		}
		options = append(options, xconfig.WithFiles(path), xconfig.WithStrict())
	}

	cfg := &config{}
	if err := xconfig.Load(cfg, options...); err != nil {
		return nil, err
	}

	return cfg, nil
}
