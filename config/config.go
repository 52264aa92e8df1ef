// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config contains the configuration structs
// for glbasics, read from TOML and command-line flags.
package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"os"

	"cogentcore.org/glbasics/base/errors"
	"cogentcore.org/glbasics/oswin"
	"github.com/pelletier/go-toml/v2"
)

//go:embed defaults.toml
var defaults []byte

// Config is the main config struct that contains
// all of the configuration options for glbasics.
type Config struct {

	// the name of the scene to render
	Scene string `toml:"scene"`

	// the window and its GL context
	Window Window `toml:"window"`

	// the GL context version and profile
	GL GL `toml:"gl"`

	// the frame loop
	Render Render `toml:"render"`

	// logging
	Log Log `toml:"log"`
}

// Window is the window configuration.
type Window struct {

	// width of the window, in screen coordinates
	Width int `toml:"width"`

	// height of the window, in screen coordinates
	Height int `toml:"height"`

	// title of the window; the scene title is used if empty
	Title string `toml:"title"`

	// whether the user can resize the window
	Resizable bool `toml:"resizable"`

	// wait for the vertical refresh when presenting frames
	VSync bool `toml:"vsync"`
}

// GL is the GL context configuration.
type GL struct {

	// minimum major version
	Major int `toml:"major"`

	// minimum minor version
	Minor int `toml:"minor"`

	// request a core profile context
	CoreProfile bool `toml:"core_profile"`
}

// Render is the frame loop configuration.
type Render struct {

	// background color, RGBA in [0, 1]
	ClearColor [4]float32 `toml:"clear_color"`

	// name of the key that closes the window
	ExitKey string `toml:"exit_key"`

	// stop after this many frames; 0 runs until closed
	MaxFrames int `toml:"max_frames"`

	// log GL errors after each frame
	CheckErrors bool `toml:"check_errors"`
}

// Log is the logging configuration.
type Log struct {

	// minimum level: debug, info, warn or error
	Level string `toml:"level"`

	// color the level of log messages on terminals
	Color bool `toml:"color"`
}

// Default returns the default configuration.
func Default() *Config {
	cfg := &Config{}
	errors.Must(decode(defaults, cfg))
	return cfg
}

// decode decodes TOML data over cfg, rejecting unknown keys.
func decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	return dec.Decode(cfg)
}

// Open returns the default configuration overridden by the TOML file
// at filename. Keys missing from the file keep their defaults.
func Open(filename string) (*Config, error) {
	cfg := Default()
	if err := cfg.Open(filename); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Open decodes the TOML file at filename over the config.
func (cfg *Config) Open(filename string) error {
	data, err := os.ReadFile(filename)
	if err != nil {
		return err
	}
	if err := decode(data, cfg); err != nil {
		return fmt.Errorf("config %s: %w", filename, err)
	}
	return nil
}

// Save writes the config as TOML to filename.
func (cfg *Config) Save(filename string) error {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, data, 0644)
}

// Validate returns an error describing every invalid setting.
func (cfg *Config) Validate() error {
	var errs []error
	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", cfg.Window.Width, cfg.Window.Height))
	}
	if cfg.GL.Major < 3 || (cfg.GL.Major == 3 && cfg.GL.Minor < 3) {
		errs = append(errs, fmt.Errorf("GL version must be at least 3.3, got %d.%d", cfg.GL.Major, cfg.GL.Minor))
	}
	for i, c := range cfg.Render.ClearColor {
		if c < 0 || c > 1 {
			errs = append(errs, fmt.Errorf("clear color component %d = %g is outside [0, 1]", i, c))
		}
	}
	if _, err := oswin.ParseKey(cfg.Render.ExitKey); err != nil {
		errs = append(errs, err)
	}
	if cfg.Render.MaxFrames < 0 {
		errs = append(errs, fmt.Errorf("max frames must not be negative, got %d", cfg.Render.MaxFrames))
	}
	return errors.Join(errs...)
}

// ExitKey returns the parsed exit key, Escape if it is invalid.
func (cfg *Config) ExitKey() oswin.Key {
	k, err := oswin.ParseKey(cfg.Render.ExitKey)
	if err != nil {
		return oswin.KeyEscape
	}
	return k
}

// WindowOptions returns the options for creating the window,
// using title if no title is configured.
func (cfg *Config) WindowOptions(title string) *oswin.WindowOptions {
	if cfg.Window.Title != "" {
		title = cfg.Window.Title
	}
	return &oswin.WindowOptions{
		Size:        image.Pt(cfg.Window.Width, cfg.Window.Height),
		Title:       title,
		GLMajor:     cfg.GL.Major,
		GLMinor:     cfg.GL.Minor,
		CoreProfile: cfg.GL.CoreProfile,
		Resizable:   cfg.Window.Resizable,
		VSync:       cfg.Window.VSync,
	}
}
