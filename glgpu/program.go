// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"log/slog"
	"strings"
)

// Program is a linked pipeline of shader stages, selected with
// Activate before each draw call that uses it.
// A Program does not own its stages: they can be deleted as soon
// as Link returns.
type Program struct {
	gl     API
	init   bool
	handle uint32
	name   string
	stages []string
}

// NewProgram returns a new, unlinked program with given name on given GL context.
func NewProgram(gl API, name string) *Program {
	return &Program{gl: gl, name: name}
}

// Name returns name of program
func (pr *Program) Name() string {
	return pr.name
}

// Stages returns the names of the shaders the program was linked from.
func (pr *Program) Stages() []string {
	return pr.stages
}

// Handle returns the handle for the program, only valid after Link
func (pr *Program) Handle() uint32 {
	return pr.handle
}

// IsLinked returns whether the program is linked and not deleted.
func (pr *Program) IsLinked() bool {
	return pr.init
}

// Link attaches the given compiled shaders, links the program and
// detaches them again. The link status is queried and a failure is
// returned as a [*LinkError], after the failed program is deleted.
func (pr *Program) Link(shaders ...*Shader) error {
	gl := pr.gl
	pr.Delete()
	for _, sh := range shaders {
		if !sh.IsCompiled() {
			return fmt.Errorf("glgpu Program %s Link: shader %s is not compiled", pr.name, sh.Name())
		}
	}
	handle := gl.CreateProgram()
	for _, sh := range shaders {
		gl.AttachShader(handle, sh.Handle())
	}
	gl.LinkProgram(handle)
	for _, sh := range shaders {
		gl.DetachShader(handle, sh.Handle())
	}

	if gl.GetProgramiv(handle, LINK_STATUS) == FALSE {
		lg := strings.TrimRight(gl.GetProgramInfoLog(handle), "\x00\n")
		gl.DeleteProgram(handle)
		err := &LinkError{Name: pr.name, Log: lg}
		slog.Error("glgpu LinkProgram", "err", err)
		return err
	}
	pr.stages = make([]string, len(shaders))
	for i, sh := range shaders {
		pr.stages[i] = sh.Name()
	}
	pr.handle = handle
	pr.init = true
	return nil
}

// Activate activates this as the active program; must have been Linked first.
func (pr *Program) Activate() error {
	if !pr.init {
		return fmt.Errorf("%w: %s", ErrNotLinked, pr.name)
	}
	pr.gl.UseProgram(pr.handle)
	return nil
}

// Delete deletes the GPU resources associated with this program.
// Calling it again, or on an unlinked program, does nothing.
func (pr *Program) Delete() {
	if !pr.init {
		return
	}
	pr.gl.DeleteProgram(pr.handle)
	pr.handle = 0
	pr.init = false
}
