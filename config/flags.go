// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"github.com/spf13/pflag"
)

// Flags are the command-line flags that override config values.
type Flags struct {
	fs      *pflag.FlagSet
	file    string
	scene   string
	width   int
	height  int
	frames  int
	level   string
	noColor bool
	check   bool
}

// NewFlags defines the flags on a new flag set of given program name.
func NewFlags(name string) *Flags {
	fl := &Flags{fs: pflag.NewFlagSet(name, pflag.ContinueOnError)}
	fs := fl.fs
	fs.StringVarP(&fl.file, "config", "c", "", "TOML config file")
	fs.StringVarP(&fl.scene, "scene", "s", "", "scene to render")
	fs.IntVar(&fl.width, "width", 0, "window width")
	fs.IntVar(&fl.height, "height", 0, "window height")
	fs.IntVarP(&fl.frames, "frames", "n", 0, "stop after this many frames")
	fs.StringVar(&fl.level, "log-level", "", "log level: debug, info, warn or error")
	fs.BoolVar(&fl.noColor, "no-color", false, "do not color log output")
	fs.BoolVar(&fl.check, "check-errors", false, "log GL errors after each frame")
	return fl
}

// FlagSet returns the underlying flag set.
func (fl *Flags) FlagSet() *pflag.FlagSet {
	return fl.fs
}

// Parse parses args, then returns the default config overridden
// by the config file if given and by every flag that was set.
// The result is validated.
func (fl *Flags) Parse(args []string) (*Config, error) {
	if err := fl.fs.Parse(args); err != nil {
		return nil, err
	}
	cfg := Default()
	if fl.file != "" {
		if err := cfg.Open(fl.file); err != nil {
			return nil, err
		}
	}
	fl.apply(cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (fl *Flags) apply(cfg *Config) {
	fs := fl.fs
	if fs.Changed("scene") {
		cfg.Scene = fl.scene
	}
	if fs.Changed("width") {
		cfg.Window.Width = fl.width
	}
	if fs.Changed("height") {
		cfg.Window.Height = fl.height
	}
	if fs.Changed("frames") {
		cfg.Render.MaxFrames = fl.frames
	}
	if fs.Changed("log-level") {
		cfg.Log.Level = fl.level
	}
	if fs.Changed("no-color") {
		cfg.Log.Color = !fl.noColor
	}
	if fs.Changed("check-errors") {
		cfg.Render.CheckErrors = fl.check
	}
}
