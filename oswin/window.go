// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oswin

import (
	"fmt"
	"image"
	"unsafe"
)

// Window is a double-buffered OS window carrying an OpenGL context.
type Window interface {
	// MakeContextCurrent makes the GL context of this window the
	// current context of the calling thread. All GL calls made
	// afterwards operate on this context.
	MakeContextCurrent()

	// Key returns the last reported state of the given key.
	Key(key Key) Action

	// SetShouldClose sets the close flag of the window.
	SetShouldClose(close bool)

	// ShouldClose returns the close flag of the window, which is set
	// either by SetShouldClose or by the window system when the user
	// asks to close the window.
	ShouldClose() bool

	// SwapBuffers presents the back buffer. If vsync is on, this
	// blocks until the next vertical refresh.
	SwapBuffers()

	// Destroy destroys the window and its context.
	Destroy()
}

// System is the process-wide window system. Init must be called
// before any other method, and Terminate is the last call made.
// All methods must be called from the main thread.
type System interface {
	// Init initializes the window system.
	Init() error

	// CreateWindow opens a new window with a GL context configured
	// per the given options.
	CreateWindow(opts *WindowOptions) (Window, error)

	// PollEvents processes pending window and input events.
	PollEvents()

	// ProcAddress returns the address of the named GL entry point
	// in the current context, or nil if it is not available.
	ProcAddress(name string) unsafe.Pointer

	// Terminate destroys any remaining windows and frees
	// the window system state.
	Terminate()
}

// WindowOptions are the parameters for [System.CreateWindow].
type WindowOptions struct {
	// Size is the size of the window in screen coordinates.
	Size image.Point

	// Title is displayed in the title bar.
	Title string

	// GLMajor and GLMinor are the minimum GL version requested.
	GLMajor, GLMinor int

	// CoreProfile requests a core profile (forward compatible) context.
	CoreProfile bool

	// Resizable allows the user to resize the window.
	Resizable bool

	// VSync sets a swap interval of 1, so that SwapBuffers waits
	// for the vertical refresh.
	VSync bool
}

// Validate checks that the options can produce a window.
func (o *WindowOptions) Validate() error {
	if o.Size.X <= 0 || o.Size.Y <= 0 {
		return fmt.Errorf("oswin: invalid window size %v", o.Size)
	}
	if o.GLMajor < 1 || o.GLMinor < 0 {
		return fmt.Errorf("oswin: invalid GL version %d.%d", o.GLMajor, o.GLMinor)
	}
	return nil
}
