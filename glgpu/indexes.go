// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"unsafe"
)

// IndexBuffer manages a buffer of indexes for index-based rendering
// (i.e., GL_ELEMENT_ARRAY_BUFFER for glDrawElements calls in OpenGL).
type IndexBuffer struct {
	gl     API
	init   bool
	handle uint32
	idxs   []uint32
}

// NewIndexBuffer returns a new index buffer holding a copy of the given indexes.
func NewIndexBuffer(gl API, idxs []uint32) *IndexBuffer {
	ib := &IndexBuffer{gl: gl}
	ib.idxs = append([]uint32(nil), idxs...)
	return ib
}

// Len returns the number of indexes in buffer
func (ib *IndexBuffer) Len() int {
	return len(ib.idxs)
}

// Bytes returns the size of the index data in bytes.
func (ib *IndexBuffer) Bytes() int {
	return len(ib.idxs) * 4
}

// Indexes returns the indexes
func (ib *IndexBuffer) Indexes() []uint32 {
	return ib.idxs
}

// Activate binds buffer as active one, generating it on first use.
// A vertex array bound at this time records the binding.
func (ib *IndexBuffer) Activate() {
	if !ib.init {
		ib.handle = ib.gl.GenBuffer()
		ib.init = true
	}
	ib.gl.BindBuffer(ELEMENT_ARRAY_BUFFER, ib.handle)
}

// Handle returns the unique handle for this buffer, only valid after Activate()
func (ib *IndexBuffer) Handle() uint32 {
	return ib.handle
}

// Transfer transfers data to GPU; Activate must have been called with no other
// such buffers activated in between. Data is uploaded once, for static drawing.
func (ib *IndexBuffer) Transfer() {
	var ptr unsafe.Pointer
	if len(ib.idxs) > 0 {
		ptr = unsafe.Pointer(&ib.idxs[0])
	}
	ib.gl.BufferData(ELEMENT_ARRAY_BUFFER, ib.Bytes(), ptr, STATIC_DRAW)
}

// Delete deletes the GPU resources associated with this buffer
// (requires Activate to re-establish a new one).
func (ib *IndexBuffer) Delete() {
	if !ib.init {
		return
	}
	ib.gl.DeleteBuffer(ib.handle)
	ib.handle = 0
	ib.init = false
}
