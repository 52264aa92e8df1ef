// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render provides the frame loop: poll input, clear,
// draw each unit with its own program and mesh, present.
package render

import (
	"fmt"
	"log/slog"
	"time"

	"cogentcore.org/glbasics/glgpu"
	"cogentcore.org/glbasics/oswin"
)

// States are the states of a [Loop].
type States int32

const (
	// Running loops draw a frame on each Step.
	Running States = iota

	// Closing loops draw nothing more.
	Closing
)

func (s States) String() string {
	switch s {
	case Running:
		return "Running"
	case Closing:
		return "Closing"
	}
	return fmt.Sprintf("States(%d)", int32(s))
}

// DrawUnit is one draw call per frame: a program and the mesh it draws.
type DrawUnit struct {
	Program *glgpu.Program
	Mesh    *glgpu.Mesh
}

// FPSInterval is how often the frame rate is logged, at debug level.
var FPSInterval = 10 * time.Second

// Loop runs frames on a window until it is asked to close.
// It must run on the thread where the GL context of the window is current.
type Loop struct {
	Window oswin.Window
	System oswin.System
	GL     glgpu.API

	// ClearColor is the background color.
	ClearColor [4]float32

	// ExitKey sets the close flag of the window when pressed.
	ExitKey oswin.Key

	// Units are drawn in order each frame.
	Units []DrawUnit

	// MaxFrames, if > 0, sets the close flag after that many frames.
	MaxFrames int

	// CheckErrors drains and logs GL errors after each frame.
	CheckErrors bool

	// Frames is the number of frames drawn.
	Frames int

	// ErrorCount is the number of GL errors seen with CheckErrors.
	ErrorCount int

	state     States
	draw      glgpu.Drawing
	fpsFrames int
	fpsStart  time.Time
}

// State returns the current state.
func (lp *Loop) State() States {
	return lp.state
}

// processInput sets the close flag when the exit key is down.
func (lp *Loop) processInput() {
	if lp.Window.Key(lp.ExitKey).Pressed() {
		lp.Window.SetShouldClose(true)
	}
}

// Step runs one iteration of the loop, returning false once the
// loop is Closing. A frame is drawn only when the close flag was not
// set at the start of the iteration, so an exit key pressed during a
// frame stops the loop before the next one.
func (lp *Loop) Step() bool {
	if lp.state == Closing {
		return false
	}
	if lp.Window.ShouldClose() {
		lp.state = Closing
		slog.Debug("render loop closing", "frames", lp.Frames)
		return false
	}
	lp.processInput()
	lp.RenderFrame()
	lp.Window.SwapBuffers()
	lp.System.PollEvents()
	if lp.MaxFrames > 0 && lp.Frames >= lp.MaxFrames {
		lp.Window.SetShouldClose(true)
	}
	return true
}

// RenderFrame clears and draws every unit once.
func (lp *Loop) RenderFrame() {
	lp.draw.GL = lp.GL
	lp.draw.ClearColor(lp.ClearColor)
	lp.draw.Clear(true, false)
	for _, u := range lp.Units {
		if err := u.Program.Activate(); err != nil {
			slog.Error("render", "err", err)
			continue
		}
		lp.draw.Mesh(u.Mesh)
	}
	lp.Frames++
	if lp.CheckErrors {
		for _, c := range glgpu.Errors(lp.GL) {
			lp.ErrorCount++
			slog.Error("render GL error", "frame", lp.Frames, "code", glgpu.ErrorString(c))
		}
	}
	lp.fps()
}

func (lp *Loop) fps() {
	now := time.Now()
	if lp.fpsStart.IsZero() {
		lp.fpsStart = now
	}
	lp.fpsFrames++
	dur := now.Sub(lp.fpsStart)
	if dur < FPSInterval {
		return
	}
	slog.Debug("render", "fps", fmt.Sprintf("%.0f", float64(lp.fpsFrames)/dur.Seconds()))
	lp.fpsFrames = 0
	lp.fpsStart = now
}

// Run steps until the loop is Closing, returning the frames drawn.
func (lp *Loop) Run() int {
	for lp.Step() {
	}
	return lp.Frames
}
