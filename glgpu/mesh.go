// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

// MeshData is the static geometry of one mesh: vertex positions
// and optional triangle indexes into them.
type MeshData struct {
	Name      string
	Positions []f32.Vec3
	Indexes   []uint32
}

// Validate checks that the data describes a drawable mesh.
func (md *MeshData) Validate() error {
	if len(md.Positions) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyMesh, md.Name)
	}
	n := uint32(len(md.Positions))
	for i, ix := range md.Indexes {
		if ix >= n {
			return fmt.Errorf("%w: %s index %d = %d, only %d vertexes", ErrIndexRange, md.Name, i, ix, n)
		}
	}
	return nil
}

// Mesh is uploaded geometry: its own vertex buffer, optional index
// buffer and the vertex array binding them to the shader inputs.
type Mesh struct {
	Name    string
	Vectors *VertexBuffer
	Indexes *IndexBuffer
	Array   *VertexArray
}

// NewMesh uploads the given mesh data to the GPU, once, for static
// drawing. The vertex array and array buffer are unbound afterwards
// so that later GL calls cannot modify them; the index buffer stays
// attached to the vertex array.
func NewMesh(gl API, md MeshData) (*Mesh, error) {
	if err := md.Validate(); err != nil {
		return nil, err
	}
	ms := &Mesh{Name: md.Name}
	ms.Array = NewVertexArray(gl)
	ms.Array.Activate()

	ms.Vectors = NewVertexBuffer(gl, md.Positions)
	ms.Vectors.Activate()
	ms.Vectors.Transfer()

	if len(md.Indexes) > 0 {
		ms.Indexes = NewIndexBuffer(gl, md.Indexes)
		ms.Indexes.Activate()
		ms.Indexes.Transfer()
	}

	ms.Array.SetPositions()

	// the element buffer binding is vertex array state: only unbind the array buffer
	gl.BindBuffer(ARRAY_BUFFER, 0)
	ms.Array.Deactivate()
	return ms, nil
}

// Indexed returns whether the mesh is drawn with an index buffer.
func (ms *Mesh) Indexed() bool {
	return ms.Indexes != nil
}

// DrawCount returns the number of vertexes one draw of the mesh
// issues: the number of indexes if indexed, else of positions.
func (ms *Mesh) DrawCount() int {
	if ms.Indexed() {
		return ms.Indexes.Len()
	}
	return ms.Vectors.Len()
}

// Activate binds the vertex array of the mesh.
func (ms *Mesh) Activate() {
	ms.Array.Activate()
}

// Delete releases the vertex array and buffers of the mesh.
func (ms *Mesh) Delete() {
	ms.Array.Delete()
	ms.Vectors.Delete()
	if ms.Indexes != nil {
		ms.Indexes.Delete()
	}
}
