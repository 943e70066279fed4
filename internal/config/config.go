// Package config loads the stripctl YAML configuration.
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Pixels      int    `yaml:"pixels"`
	Mode        string `yaml:"mode"` // GRB | RGB | RGBW
	Pin         string `yaml:"pin"`  // spireg port name, e.g. SPI0.0
	Brightness  int    `yaml:"brightness"`
	MatrixWidth int    `yaml:"matrix_width,omitempty"`
	FPS         int    `yaml:"fps"`
	Demo        string `yaml:"demo,omitempty"` // rainbow | bargraph | theater
}

func Load(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

func Save(path string, c *Config) error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0644)
}
