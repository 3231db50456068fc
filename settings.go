package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jcorbin/gostack/internal/logio"
	"github.com/jcorbin/gostack/internal/runner"
)

// settings combines the config file with any explicitly set flags.
type settings struct {
	config
	color bool
	log   *logio.Logger
}

func loadSettings(cmd *cobra.Command) (*settings, error) {
	flags := cmd.Flags()

	path, explicit := defaultConfigPath(), false
	if p, _ := flags.GetString("config"); p != "" {
		path, explicit = p, true
	}
	cfg, err := loadConfig(path, explicit)
	if err != nil {
		return nil, err
	}

	if flags.Changed("color") {
		cfg.Output.Color, _ = flags.GetString("color")
	}
	if flags.Changed("debug") {
		cfg.Run.Debug, _ = flags.GetBool("debug")
	}
	if flags.Changed("on-unknown") {
		cfg.Run.OnUnknown, _ = flags.GetString("on-unknown")
	}
	if flags.Changed("jobs") {
		cfg.Run.Jobs, _ = flags.GetInt("jobs")
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	errOut := cmd.ErrOrStderr()
	st := settings{config: cfg, log: logio.New(errOut)}
	mode, _ := parseColorMode(cfg.Output.Color)
	st.color = mode.enabled(errOut)
	st.log.SetColor(st.color)
	return &st, nil
}

// policy returns the configured unknown word policy, or def if unset.
func (st *settings) policy(def runner.Policy) runner.Policy {
	if st.Run.OnUnknown == "" {
		return def
	}
	p, _ := runner.ParsePolicy(st.Run.OnUnknown)
	return p
}

type colorMode uint8

const (
	colorAuto colorMode = iota
	colorOn
	colorOff
)

func parseColorMode(s string) (colorMode, error) {
	switch s {
	case "", "auto":
		return colorAuto, nil
	case "on":
		return colorOn, nil
	case "off":
		return colorOff, nil
	}
	return 0, fmt.Errorf("invalid color mode %q, expected auto, on, or off", s)
}

func (mode colorMode) enabled(w io.Writer) bool {
	switch mode {
	case colorOn:
		return true
	case colorOff:
		return false
	default:
		f, ok := w.(*os.File)
		return ok && isTerminal(f)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
