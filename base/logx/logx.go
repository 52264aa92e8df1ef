// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx configures the default structured logger,
// with terminal colors for the level tag.
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/muesli/termenv"
)

// UserLevel is the verbosity level that the user has selected for
// what logging messages should be shown. Messages at levels at or
// above this level will be shown. The default is [slog.LevelInfo].
var UserLevel = slog.LevelInfo

// userLeveler reports the current [UserLevel], so that changes
// made after the handler is created take effect.
type userLeveler struct{}

func (userLeveler) Level() slog.Level { return UserLevel }

// SetLevel sets [UserLevel] from the given name
// (debug, info, warn or error; case insensitive).
func SetLevel(name string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return fmt.Errorf("logx: invalid level %q: %w", name, err)
	}
	UserLevel = l
	return nil
}

// NewHandler returns a text handler writing to w that filters on
// [UserLevel]. If color is true, the level tag is colored using the
// color profile detected for w; otherwise plain text is written.
func NewHandler(w io.Writer, color bool) slog.Handler {
	opts := []termenv.OutputOption{}
	if !color {
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	out := termenv.NewOutput(w, opts...)
	return slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: userLeveler{},
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key != slog.LevelKey || len(groups) > 0 {
				return a
			}
			lvl, ok := a.Value.Any().(slog.Level)
			if !ok {
				return a
			}
			a.Value = slog.StringValue(out.String(lvl.String()).Foreground(LevelColor(lvl)).String())
			return a
		},
	})
}

// LevelColor returns the terminal color used for the given level.
func LevelColor(lvl slog.Level) termenv.Color {
	switch {
	case lvl >= slog.LevelError:
		return termenv.ANSIRed
	case lvl >= slog.LevelWarn:
		return termenv.ANSIYellow
	case lvl >= slog.LevelInfo:
		return termenv.ANSICyan
	default:
		return termenv.ANSIBrightBlack
	}
}

// Init installs a [NewHandler] logger as the slog default.
func Init(w io.Writer, color bool) *slog.Logger {
	lg := slog.New(NewHandler(w, color))
	slog.SetDefault(lg)
	return lg
}
