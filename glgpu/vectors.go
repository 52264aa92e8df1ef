// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"unsafe"

	"golang.org/x/image/math/f32"
)

// VertexBuffer manages a buffer of vertex positions
// (GL_ARRAY_BUFFER), each of 3 float32 components.
type VertexBuffer struct {
	gl     API
	init   bool
	handle uint32
	pos    []f32.Vec3
}

// NewVertexBuffer returns a new vertex buffer holding a copy of the given positions.
func NewVertexBuffer(gl API, pos []f32.Vec3) *VertexBuffer {
	vb := &VertexBuffer{gl: gl}
	vb.pos = append([]f32.Vec3(nil), pos...)
	return vb
}

// Len returns the number of vertexes in the buffer.
func (vb *VertexBuffer) Len() int {
	return len(vb.pos)
}

// Bytes returns the size of the vertex data in bytes:
// Len * 3 * 4.
func (vb *VertexBuffer) Bytes() int {
	return len(vb.pos) * PositionStride
}

// Positions returns the vertex positions.
func (vb *VertexBuffer) Positions() []f32.Vec3 {
	return vb.pos
}

// Activate binds buffer as the active array buffer,
// generating it on first use.
func (vb *VertexBuffer) Activate() {
	if !vb.init {
		vb.handle = vb.gl.GenBuffer()
		vb.init = true
	}
	vb.gl.BindBuffer(ARRAY_BUFFER, vb.handle)
}

// Handle returns the unique handle for this buffer, only valid after Activate()
func (vb *VertexBuffer) Handle() uint32 {
	return vb.handle
}

// Transfer uploads the positions; Activate must have been called first.
func (vb *VertexBuffer) Transfer() {
	var ptr unsafe.Pointer
	if len(vb.pos) > 0 {
		ptr = unsafe.Pointer(&vb.pos[0][0])
	}
	vb.gl.BufferData(ARRAY_BUFFER, vb.Bytes(), ptr, STATIC_DRAW)
}

// Delete deletes the GPU buffer.
func (vb *VertexBuffer) Delete() {
	if !vb.init {
		return
	}
	vb.gl.DeleteBuffer(vb.handle)
	vb.handle = 0
	vb.init = false
}
