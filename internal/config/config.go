// Package config loads diagram defaults from the environment.
package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"

	"github.com/litescript/ls-stargraph/internal/plot"
)

// Config holds startup settings. Every field can be set through a
// STARGRAPH_* environment variable and is then overridable by flags.
type Config struct {
	TempMin     int    `env:"TEMP_MIN"     envDefault:"3000"`
	TempMax     int    `env:"TEMP_MAX"     envDefault:"25000"`
	LumMin      int    `env:"LUM_MIN"      envDefault:"-6"`
	LumMax      int    `env:"LUM_MAX"      envDefault:"6"`
	Width       int    `env:"WIDTH"        envDefault:"640"`
	Height      int    `env:"HEIGHT"       envDefault:"640"`
	Margin      int    `env:"MARGIN"       envDefault:"32"`
	HStep       int    `env:"H_STEP"       envDefault:"2500"`
	VStep       int    `env:"V_STEP"       envDefault:"10"`
	LineOpacity int    `env:"LINE_OPACITY" envDefault:"25"`
	ShowNames   bool   `env:"SHOW_NAMES"   envDefault:"false"`
	ShowVLines  bool   `env:"SHOW_V_LINES" envDefault:"true"`
	ShowHLines  bool   `env:"SHOW_H_LINES" envDefault:"false"`
	LogLevel    string `env:"LOG_LEVEL"    envDefault:"info"`
}

// EnvPrefix is prepended to every variable name.
const EnvPrefix = "STARGRAPH_"

// Load reads the configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Axes converts the configuration to validated plot axes.
func (c Config) Axes() (plot.Axes, error) {
	a := plot.Axes{
		TempMin:     c.TempMin,
		TempMax:     c.TempMax,
		LumMin:      c.LumMin,
		LumMax:      c.LumMax,
		Width:       c.Width,
		Height:      c.Height,
		Margin:      c.Margin,
		HStep:       c.HStep,
		VStep:       c.VStep,
		LineOpacity: c.LineOpacity,
		ShowNames:   c.ShowNames,
		ShowVLines:  c.ShowVLines,
		ShowHLines:  c.ShowHLines,
	}
	if err := a.Validate(); err != nil {
		return plot.Axes{}, fmt.Errorf("config: %w", err)
	}
	return a, nil
}
