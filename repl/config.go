/*
File   : zlang/repl/config.go
*/
package repl

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the REPL's optional on-disk configuration, loaded from
// `.zlangrc.yaml` in the working directory if present. The teacher's go.mod
// carries gopkg.in/yaml.v3 as an unused indirect dependency; this gives it
// an actual job (SPEC_FULL.md §1.1).
type Config struct {
	Banner  string `yaml:"banner"`
	Version string `yaml:"version"`
	Author  string `yaml:"author"`
	Prompt  string `yaml:"prompt"`
	License string `yaml:"license"`
}

// defaultConfig mirrors the teacher's hardcoded repl.NewRepl arguments.
func defaultConfig() *Config {
	return &Config{
		Banner:  "  ____  _                      \n |_  / | |   __ _  _ _   __ _ \n  / /  | |  / _` || ' \\ / _` |\n /___| |_|  \\__,_||_||_|\\__, |\n                        |___/ ",
		Version: "0.1.0",
		Author:  "the zlang project",
		Prompt:  "zlang >>> ",
		License: "MIT",
	}
}

// LoadConfig reads path as YAML and overlays it onto defaultConfig. A
// missing file is not an error — the REPL falls back to its defaults,
// matching the teacher's own all-hardcoded banner/prompt.
func LoadConfig(path string) (*Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
