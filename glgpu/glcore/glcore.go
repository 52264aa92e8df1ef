// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package glcore implements [glgpu.API] with the OpenGL 3.3 core
// profile bindings of go-gl.
package glcore

import (
	"strings"
	"unsafe"

	"cogentcore.org/glbasics/glgpu"
	"github.com/go-gl/gl/v3.3-core/gl"
)

// Load resolves the GL entry points for the current context through
// the given lookup function (typically the window system's proc
// address function) and returns the API using them.
// It is a [glgpu.Loader].
func Load(procAddress func(name string) unsafe.Pointer) (glgpu.API, error) {
	if err := gl.InitWithProcAddrFunc(procAddress); err != nil {
		return nil, err
	}
	return &API{}, nil
}

// Version returns the GL version string of the current context.
func Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

// API calls straight through to go-gl.
type API struct{}

func (*API) Viewport(x, y, width, height int32) { gl.Viewport(x, y, width, height) }
func (*API) ClearColor(r, g, b, a float32)      { gl.ClearColor(r, g, b, a) }
func (*API) Clear(mask uint32)                  { gl.Clear(mask) }
func (*API) GetError() uint32                   { return gl.GetError() }

func (*API) GetIntegerv(pname uint32) int32 {
	var v int32
	gl.GetIntegerv(pname, &v)
	return v
}

func (*API) GenBuffer() uint32 {
	var h uint32
	gl.GenBuffers(1, &h)
	return h
}

func (*API) BindBuffer(target, buffer uint32) { gl.BindBuffer(target, buffer) }

func (*API) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	gl.BufferData(target, size, data, usage)
}

func (*API) DeleteBuffer(buffer uint32) { gl.DeleteBuffers(1, &buffer) }

func (*API) GenVertexArray() uint32 {
	var h uint32
	gl.GenVertexArrays(1, &h)
	return h
}

func (*API) BindVertexArray(array uint32) { gl.BindVertexArray(array) }

func (*API) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	gl.VertexAttribPointer(index, size, xtype, normalized, stride, gl.PtrOffset(int(offset)))
}

func (*API) EnableVertexAttribArray(index uint32) { gl.EnableVertexAttribArray(index) }
func (*API) DeleteVertexArray(array uint32)       { gl.DeleteVertexArrays(1, &array) }

func (*API) CreateShader(xtype uint32) uint32 { return gl.CreateShader(xtype) }

func (*API) ShaderSource(shader uint32, src string) {
	csources, free := gl.Strs(src + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
}

func (*API) CompileShader(shader uint32) { gl.CompileShader(shader) }

func (*API) GetShaderiv(shader, pname uint32) int32 {
	var v int32
	gl.GetShaderiv(shader, pname, &v)
	return v
}

func (a *API) GetShaderInfoLog(shader uint32) string {
	n := a.GetShaderiv(shader, gl.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	msg := strings.Repeat("\x00", int(n+1))
	gl.GetShaderInfoLog(shader, n, nil, gl.Str(msg))
	return gl.GoStr(gl.Str(msg))
}

func (*API) DeleteShader(shader uint32) { gl.DeleteShader(shader) }

func (*API) CreateProgram() uint32                { return gl.CreateProgram() }
func (*API) AttachShader(program, shader uint32) { gl.AttachShader(program, shader) }
func (*API) DetachShader(program, shader uint32) { gl.DetachShader(program, shader) }
func (*API) LinkProgram(program uint32)          { gl.LinkProgram(program) }

func (*API) GetProgramiv(program, pname uint32) int32 {
	var v int32
	gl.GetProgramiv(program, pname, &v)
	return v
}

func (a *API) GetProgramInfoLog(program uint32) string {
	n := a.GetProgramiv(program, gl.INFO_LOG_LENGTH)
	if n <= 0 {
		return ""
	}
	lg := strings.Repeat("\x00", int(n+1))
	gl.GetProgramInfoLog(program, n, nil, gl.Str(lg))
	return gl.GoStr(gl.Str(lg))
}

func (*API) UseProgram(program uint32)    { gl.UseProgram(program) }
func (*API) DeleteProgram(program uint32) { gl.DeleteProgram(program) }

func (*API) DrawArrays(mode uint32, first, count int32) { gl.DrawArrays(mode, first, count) }

func (*API) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	gl.DrawElements(mode, count, xtype, gl.PtrOffset(int(offset)))
}
