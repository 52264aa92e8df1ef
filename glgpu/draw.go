// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

// Drawing provides commonly-used GPU drawing functions.
// All operate on the context of its API with the current program,
// vertex array, etc.
type Drawing struct {
	GL API
}

// Clear clears the given buffers of the current render target.
func (dr *Drawing) Clear(color, depth bool) {
	bits := uint32(0)
	if color {
		bits |= COLOR_BUFFER_BIT
	}
	if depth {
		bits |= DEPTH_BUFFER_BIT
	}
	dr.GL.Clear(bits)
}

// ClearColor sets the color used by Clear.
func (dr *Drawing) ClearColor(c [4]float32) {
	dr.GL.ClearColor(c[0], c[1], c[2], c[3])
}

// Triangles uses all existing settings to draw Triangles
// (non-indexed)
func (dr *Drawing) Triangles(start, count int) {
	dr.GL.DrawArrays(TRIANGLES, int32(start), int32(count))
}

// TrianglesIndexed draws Triangles using count indexes of the
// element buffer of the current vertex array.
func (dr *Drawing) TrianglesIndexed(count int) {
	dr.GL.DrawElements(TRIANGLES, int32(count), UNSIGNED_INT, 0)
}

// Mesh activates the mesh and draws all of it, indexed or not.
func (dr *Drawing) Mesh(ms *Mesh) {
	ms.Activate()
	if ms.Indexed() {
		dr.TrianglesIndexed(ms.Indexes.Len())
		return
	}
	dr.Triangles(0, ms.Vectors.Len())
}
