// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package oswintest provides an in-memory oswin window system
// for tests, with scriptable key presses and failures.
package oswintest

import (
	"errors"
	"unsafe"

	"cogentcore.org/glbasics/oswin"
)

// System is a fake [oswin.System].
type System struct {
	// InitErr is returned by Init if set.
	InitErr error

	// FailCreate makes CreateWindow return an error.
	FailCreate bool

	// NoProcs makes ProcAddress return nil for every name.
	NoProcs bool

	// OnPoll is called from PollEvents with the number of
	// previous PollEvents calls, to script input.
	OnPoll func(poll int)

	Inited     bool
	Terminated bool
	Polls      int
	Windows    []*Window
	Opts       []oswin.WindowOptions

	procs map[string]*byte
}

// NewSystem returns a new fake system.
func NewSystem() *System {
	return &System{}
}

func (sy *System) Init() error {
	if sy.InitErr != nil {
		return sy.InitErr
	}
	sy.Inited = true
	return nil
}

func (sy *System) CreateWindow(opts *oswin.WindowOptions) (oswin.Window, error) {
	if !sy.Inited {
		return nil, errors.New("oswintest: CreateWindow called before Init")
	}
	if sy.FailCreate {
		return nil, errors.New("oswintest: window creation failed")
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	w := &Window{sys: sy, keys: map[oswin.Key]oswin.Action{}}
	sy.Windows = append(sy.Windows, w)
	sy.Opts = append(sy.Opts, *opts)
	return w, nil
}

func (sy *System) PollEvents() {
	if sy.OnPoll != nil {
		sy.OnPoll(sy.Polls)
	}
	sy.Polls++
}

func (sy *System) ProcAddress(name string) unsafe.Pointer {
	if sy.NoProcs {
		return nil
	}
	if sy.procs == nil {
		sy.procs = map[string]*byte{}
	}
	p, ok := sy.procs[name]
	if !ok {
		p = new(byte)
		sy.procs[name] = p
	}
	return unsafe.Pointer(p)
}

func (sy *System) Terminate() {
	for _, w := range sy.Windows {
		w.Destroy()
	}
	sy.Terminated = true
	sy.Inited = false
}

// Current returns the window whose context is current, or nil.
func (sy *System) Current() *Window {
	for _, w := range sy.Windows {
		if w.Current {
			return w
		}
	}
	return nil
}

// Window is a fake [oswin.Window].
type Window struct {
	sys  *System
	keys map[oswin.Key]oswin.Action

	Current   bool
	Close     bool
	Swaps     int
	Destroyed int
}

func (w *Window) MakeContextCurrent() {
	for _, o := range w.sys.Windows {
		o.Current = false
	}
	w.Current = true
}

// SetKey sets the state reported for the given key.
func (w *Window) SetKey(key oswin.Key, act oswin.Action) {
	w.keys[key] = act
}

func (w *Window) Key(key oswin.Key) oswin.Action {
	return w.keys[key]
}

func (w *Window) SetShouldClose(close bool) {
	w.Close = close
}

func (w *Window) ShouldClose() bool {
	return w.Close
}

func (w *Window) SwapBuffers() {
	w.Swaps++
}

// Destroy counts destroy calls, so tests can check for exactly one.
func (w *Window) Destroy() {
	if w.Destroyed > 0 {
		return
	}
	w.Destroyed++
	w.Current = false
}
