// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"log/slog"
	"strings"
)

// Shader manages a single compiled shader stage.
// Stages are transient: once linked into every [Program] that
// uses them they are deleted.
type Shader struct {
	gl     API
	init   bool
	handle uint32
	name   string
	typ    ShaderTypes
	src    string
}

// NewShader returns a new, uncompiled shader of given type and unique name,
// on given GL context.
func NewShader(gl API, name string, typ ShaderTypes) *Shader {
	return &Shader{gl: gl, name: name, typ: typ}
}

// Name returns the unique name of this shader
func (sh *Shader) Name() string {
	return sh.name
}

// Type returns the type of the shader
func (sh *Shader) Type() ShaderTypes {
	return sh.typ
}

// Source returns the source code the shader was compiled from.
func (sh *Shader) Source() string {
	return sh.src
}

// Handle returns the GPU handle for this shader, 0 if not compiled.
func (sh *Shader) Handle() uint32 {
	return sh.handle
}

// IsCompiled returns whether the shader compiled and has not been deleted.
func (sh *Shader) IsCompiled() bool {
	return sh.init
}

// Compile compiles given GLSL source code for the shader.
// The compile status is queried after compiling, and a failure is
// returned as a [*ShaderCompileError] carrying the driver log,
// after the failed shader object is deleted.
// Context must be current.
func (sh *Shader) Compile(src string) error {
	gl := sh.gl
	sh.Delete()
	handle := gl.CreateShader(sh.typ.GLType())
	sh.src = src
	gl.ShaderSource(handle, src)
	gl.CompileShader(handle)

	if gl.GetShaderiv(handle, COMPILE_STATUS) == FALSE {
		msg := strings.TrimRight(gl.GetShaderInfoLog(handle), "\x00\n")
		gl.DeleteShader(handle)
		err := &ShaderCompileError{Name: sh.name, Type: sh.typ, Log: msg}
		slog.Error("glgpu CompileShader", "err", err)
		return err
	}
	sh.handle = handle
	sh.init = true
	return nil
}

// Delete deletes the shader. Programs already linked with it stay valid.
func (sh *Shader) Delete() {
	if !sh.init {
		return
	}
	sh.gl.DeleteShader(sh.handle)
	sh.handle = 0
	sh.init = false
}
