// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"unsafe"
)

// API is the set of OpenGL entry points used by this package.
// An API value stands for one GL context: every call operates on
// that context, which must be current on the calling thread.
// The methods follow the GL functions of the same name, with
// single-object Gen / Delete variants.
type API interface {
	Viewport(x, y, width, height int32)
	ClearColor(r, g, b, a float32)
	Clear(mask uint32)
	GetIntegerv(pname uint32) int32
	GetError() uint32

	GenBuffer() uint32
	BindBuffer(target, buffer uint32)
	BufferData(target uint32, size int, data unsafe.Pointer, usage uint32)
	DeleteBuffer(buffer uint32)

	GenVertexArray() uint32
	BindVertexArray(array uint32)
	VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr)
	EnableVertexAttribArray(index uint32)
	DeleteVertexArray(array uint32)

	CreateShader(xtype uint32) uint32
	ShaderSource(shader uint32, src string)
	CompileShader(shader uint32)
	GetShaderiv(shader, pname uint32) int32
	GetShaderInfoLog(shader uint32) string
	DeleteShader(shader uint32)

	CreateProgram() uint32
	AttachShader(program, shader uint32)
	DetachShader(program, shader uint32)
	LinkProgram(program uint32)
	GetProgramiv(program, pname uint32) int32
	GetProgramInfoLog(program uint32) string
	UseProgram(program uint32)
	DeleteProgram(program uint32)

	DrawArrays(mode uint32, first, count int32)
	DrawElements(mode uint32, count int32, xtype uint32, offset uintptr)
}

// Loader resolves the GL entry points of the current context,
// using the given function to look up each entry point by name.
type Loader func(procAddress func(name string) unsafe.Pointer) (API, error)

// GL enum values used by this package, from the OpenGL registry.
// They are defined here so that code using [API] does not need
// to link against a GL library.
const (
	FALSE = 0
	TRUE  = 1

	NO_ERROR                      = 0
	INVALID_ENUM                  = 0x0500
	INVALID_VALUE                 = 0x0501
	INVALID_OPERATION             = 0x0502
	OUT_OF_MEMORY                 = 0x0505
	INVALID_FRAMEBUFFER_OPERATION = 0x0506

	TRIANGLES = 0x0004

	UNSIGNED_INT = 0x1405
	FLOAT        = 0x1406

	DEPTH_BUFFER_BIT = 0x00000100
	COLOR_BUFFER_BIT = 0x00004000

	ARRAY_BUFFER         = 0x8892
	ELEMENT_ARRAY_BUFFER = 0x8893
	STATIC_DRAW          = 0x88E4

	MAX_VERTEX_ATTRIBS = 0x8869

	FRAGMENT_SHADER = 0x8B30
	VERTEX_SHADER   = 0x8B31
	COMPILE_STATUS  = 0x8B81
	LINK_STATUS     = 0x8B82
	INFO_LOG_LENGTH = 0x8B84
)

// ErrorString returns the name of the given GL error code.
func ErrorString(code uint32) string {
	switch code {
	case NO_ERROR:
		return "NO_ERROR"
	case INVALID_ENUM:
		return "INVALID_ENUM"
	case INVALID_VALUE:
		return "INVALID_VALUE"
	case INVALID_OPERATION:
		return "INVALID_OPERATION"
	case OUT_OF_MEMORY:
		return "OUT_OF_MEMORY"
	case INVALID_FRAMEBUFFER_OPERATION:
		return "INVALID_FRAMEBUFFER_OPERATION"
	}
	return "UNKNOWN_ERROR"
}

// Errors drains the GL error queue, returning all pending codes.
// GL keeps at most one flag per code, so this terminates.
func Errors(gl API) []uint32 {
	var codes []uint32
	for i := 0; i < 16; i++ {
		c := gl.GetError()
		if c == NO_ERROR {
			break
		}
		codes = append(codes, c)
	}
	return codes
}
