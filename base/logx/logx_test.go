// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSetLevel(t *testing.T) {
	defer func(l slog.Level) { UserLevel = l }(UserLevel)

	assert.NoError(t, SetLevel("debug"))
	assert.Equal(t, slog.LevelDebug, UserLevel)
	assert.NoError(t, SetLevel("WARN"))
	assert.Equal(t, slog.LevelWarn, UserLevel)
	assert.Error(t, SetLevel("loud"))
	assert.Equal(t, slog.LevelWarn, UserLevel)
}

func TestHandlerFiltersOnUserLevel(t *testing.T) {
	defer func(l slog.Level) { UserLevel = l }(UserLevel)

	var buf bytes.Buffer
	lg := slog.New(NewHandler(&buf, false))
	UserLevel = slog.LevelWarn
	lg.Info("hidden")
	lg.Warn("shown", "frame", 3)
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "frame=3")

	buf.Reset()
	UserLevel = slog.LevelDebug
	lg.Debug("now visible")
	assert.Contains(t, buf.String(), "now visible")
}

func TestLevelColor(t *testing.T) {
	assert.NotEqual(t, LevelColor(slog.LevelError), LevelColor(slog.LevelInfo))
	assert.Equal(t, LevelColor(slog.LevelWarn), LevelColor(slog.LevelWarn+1))
}
