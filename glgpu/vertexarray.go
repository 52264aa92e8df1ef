// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

// VertexArray is a vertex layout object (GL vertex array object):
// it records which buffer feeds each shader input location, with
// its stride and offset, and the element buffer used for indexed draws.
type VertexArray struct {
	gl     API
	init   bool
	handle uint32
}

// NewVertexArray returns a new vertex array on the given GL context.
func NewVertexArray(gl API) *VertexArray {
	return &VertexArray{gl: gl}
}

// Activate binds the vertex array, generating it on first use.
func (va *VertexArray) Activate() {
	if !va.init {
		va.handle = va.gl.GenVertexArray()
		va.init = true
	}
	va.gl.BindVertexArray(va.handle)
}

// Deactivate unbinds any vertex array, so that later buffer
// bindings do not modify this one.
func (va *VertexArray) Deactivate() {
	va.gl.BindVertexArray(0)
}

// Handle returns the handle, only valid after Activate.
func (va *VertexArray) Handle() uint32 {
	return va.handle
}

// SetPositions points the position input location at the currently
// bound array buffer: 3 floats, tightly packed from offset 0.
// The vertex array must be active.
func (va *VertexArray) SetPositions() {
	va.gl.VertexAttribPointer(PositionLocation, PositionComponents, FLOAT, false, PositionStride, 0)
	va.gl.EnableVertexAttribArray(PositionLocation)
}

// Delete deletes the vertex array.
func (va *VertexArray) Delete() {
	if !va.init {
		return
	}
	va.gl.DeleteVertexArray(va.handle)
	va.handle = 0
	va.init = false
}
