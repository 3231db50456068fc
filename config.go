package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/jcorbin/gostack/internal/runner"
)

const defaultConfigName = ".gostack.toml"

type config struct {
	REPL   replConfig   `toml:"repl"`
	Run    runConfig    `toml:"run"`
	Output outputConfig `toml:"output"`
}

type replConfig struct {
	Prompt  string `toml:"prompt"`
	History string `toml:"history"`
}

type runConfig struct {
	Debug     bool   `toml:"debug"`
	OnUnknown string `toml:"on_unknown"`
	Jobs      int    `toml:"jobs"`
}

type outputConfig struct {
	Color string `toml:"color"`
}

func defaultConfig() config {
	return config{
		REPL: replConfig{
			Prompt:  ">>> ",
			History: "~/.gostack_history",
		},
		Run: runConfig{
			Jobs: 1,
		},
		Output: outputConfig{
			Color: "auto",
		},
	}
}

// loadConfig decodes the TOML file at path over the defaults. A missing file
// is only an error when the path was given explicitly.
func loadConfig(path string, explicit bool) (config, error) {
	cfg := defaultConfig()
	meta, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, fs.ErrNotExist) && !explicit {
		return defaultConfig(), nil
	} else if err != nil {
		return config{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return config{}, fmt.Errorf("%s: unknown keys: %v", path, strings.Join(keys, ", "))
	}
	if err := cfg.validate(); err != nil {
		return config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (cfg config) validate() error {
	if _, err := parseColorMode(cfg.Output.Color); err != nil {
		return err
	}
	if cfg.Run.OnUnknown != "" {
		if _, err := runner.ParsePolicy(cfg.Run.OnUnknown); err != nil {
			return err
		}
	}
	if cfg.Run.Jobs < 1 {
		return fmt.Errorf("invalid jobs %v, must be at least 1", cfg.Run.Jobs)
	}
	return nil
}

func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return defaultConfigName
	}
	return filepath.Join(home, defaultConfigName)
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
