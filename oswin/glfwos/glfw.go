// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (darwin && !ios) || windows || (linux && !android) || dragonfly || openbsd

// Package glfwos implements the oswin window system with glfw.
package glfwos

import (
	"errors"
	"log/slog"
	"unsafe"

	"cogentcore.org/glbasics/oswin"
	"github.com/go-gl/glfw/v3.3/glfw"
)

// note: all methods here must be called on the main initial thread,
// which the caller locks with runtime.LockOSThread in an init function.

// System is the glfw [oswin.System].
type System struct {
	init bool
}

// NewSystem returns a new, uninitialized glfw system.
func NewSystem() *System {
	return &System{}
}

func (sy *System) Init() error {
	if sy.init {
		return nil
	}
	if err := glfw.Init(); err != nil {
		return err
	}
	sy.init = true
	slog.Debug("glfw initialized", "version", glfw.GetVersionString())
	return nil
}

func (sy *System) CreateWindow(opts *oswin.WindowOptions) (oswin.Window, error) {
	if !sy.init {
		return nil, errors.New("glfwos: CreateWindow called before Init")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ContextVersionMajor, opts.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, opts.GLMinor)
	if opts.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	}
	glfw.WindowHint(glfw.Resizable, boolHint(opts.Resizable))
	gw, err := glfw.CreateWindow(opts.Size.X, opts.Size.Y, opts.Title, nil, nil)
	if err != nil {
		return nil, err
	}
	return &window{glw: gw, vsync: opts.VSync}, nil
}

func (sy *System) PollEvents() {
	glfw.PollEvents()
}

func (sy *System) ProcAddress(name string) unsafe.Pointer {
	return glfw.GetProcAddress(name)
}

func (sy *System) Terminate() {
	if !sy.init {
		return
	}
	glfw.Terminate()
	sy.init = false
}

func boolHint(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// window is the glfw [oswin.Window].
type window struct {
	glw   *glfw.Window
	vsync bool
}

func (w *window) MakeContextCurrent() {
	w.glw.MakeContextCurrent()
	// swap interval applies to the current context
	if w.vsync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}
}

func (w *window) Key(key oswin.Key) oswin.Action {
	gk, ok := glfwKeys[key]
	if !ok {
		return oswin.Release
	}
	switch w.glw.GetKey(gk) {
	case glfw.Press:
		return oswin.Press
	case glfw.Repeat:
		return oswin.Repeat
	default:
		return oswin.Release
	}
}

func (w *window) SetShouldClose(close bool) {
	w.glw.SetShouldClose(close)
}

func (w *window) ShouldClose() bool {
	return w.glw.ShouldClose()
}

func (w *window) SwapBuffers() {
	w.glw.SwapBuffers()
}

func (w *window) Destroy() {
	if w.glw == nil {
		return
	}
	w.glw.Destroy()
	w.glw = nil
}

var glfwKeys = map[oswin.Key]glfw.Key{
	oswin.KeyEscape: glfw.KeyEscape,
	oswin.KeyEnter:  glfw.KeyEnter,
	oswin.KeySpace:  glfw.KeySpace,
	oswin.KeyQ:      glfw.KeyQ,
}
