package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v2"
)

type Config struct {
	Incoming      string `yaml:"incoming"`
	TextDir       string `yaml:"textdir"`
	OwnerPassword string `yaml:"owner_password"`
	UserPassword  string `yaml:"user_password"`
}

func LoadConfig(filename string) (Config, error) {
	buf, err := os.ReadFile(filename)
	if err != nil {
		return Config{}, fmt.Errorf("read config failed: %w", err)
	}

	var cfg Config

	err = yaml.UnmarshalStrict(buf, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config failed: %w", err)
	}

	return cfg, nil
}
