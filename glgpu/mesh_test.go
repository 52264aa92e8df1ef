// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu_test

import (
	"testing"

	"cogentcore.org/glbasics/glgpu"
	"cogentcore.org/glbasics/glgpu/gltest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"
)

var quad = glgpu.MeshData{
	Name: "quad",
	Positions: []f32.Vec3{
		{0.5, 0.5, 0},
		{0.5, -0.5, 0},
		{-0.5, 0.5, 0},
		{-0.5, -0.5, 0},
	},
	Indexes: []uint32{0, 1, 2, 1, 3, 2},
}

var tri = glgpu.MeshData{
	Name:      "tri",
	Positions: []f32.Vec3{{-0.9, -0.5, 0}, {0, -0.5, 0}, {-0.45, 0.5, 0}},
}

func TestNewMeshIndexed(t *testing.T) {
	r := gltest.NewRecorder()
	ms, err := glgpu.NewMesh(r, quad)
	require.NoError(t, err)

	assert.True(t, ms.Indexed())
	assert.Equal(t, 4, ms.Vectors.Len())
	assert.Equal(t, 6, ms.DrawCount())
	assert.Equal(t, 4*3*4, r.BufferSize(ms.Vectors.Handle()))
	assert.Equal(t, 6*4, r.BufferSize(ms.Indexes.Handle()))
	assert.Equal(t, uint32(glgpu.STATIC_DRAW), r.BufferUsage(ms.Vectors.Handle()))

	at, ok := r.VertexAttrib(ms.Array.Handle(), glgpu.PositionLocation)
	require.True(t, ok)
	assert.Equal(t, gltest.Attrib{Buffer: ms.Vectors.Handle(), Size: 3, Type: glgpu.FLOAT, Stride: 12, Offset: 0, Enabled: true}, at)
	assert.Equal(t, ms.Indexes.Handle(), r.ElementBuffer(ms.Array.Handle()), "element buffer stays attached")

	abuf, vao, _ := r.Bound()
	assert.Zero(t, abuf, "array buffer unbound after build")
	assert.Zero(t, vao, "vertex array unbound after build")
	assert.Empty(t, glgpu.Errors(r))
}

func TestNewMeshSizes(t *testing.T) {
	for n := 1; n <= 9; n++ {
		md := glgpu.MeshData{Name: "n", Positions: make([]f32.Vec3, n)}
		r := gltest.NewRecorder()
		ms, err := glgpu.NewMesh(r, md)
		require.NoError(t, err)
		assert.Equal(t, n, ms.Vectors.Len())
		assert.Equal(t, n*glgpu.PositionComponents*glgpu.Float32Bytes, ms.Vectors.Bytes())
		assert.Equal(t, ms.Vectors.Bytes(), r.BufferSize(ms.Vectors.Handle()))
		assert.False(t, ms.Indexed())
		assert.Equal(t, n, ms.DrawCount())
	}
}

func TestMeshesDoNotShareState(t *testing.T) {
	r := gltest.NewRecorder()
	a, err := glgpu.NewMesh(r, tri)
	require.NoError(t, err)
	b, err := glgpu.NewMesh(r, quad)
	require.NoError(t, err)

	assert.NotEqual(t, a.Array.Handle(), b.Array.Handle())
	assert.NotEqual(t, a.Vectors.Handle(), b.Vectors.Handle())
	assert.Zero(t, r.ElementBuffer(a.Array.Handle()), "non-indexed mesh has no element buffer")
	atA, _ := r.VertexAttrib(a.Array.Handle(), 0)
	atB, _ := r.VertexAttrib(b.Array.Handle(), 0)
	assert.Equal(t, a.Vectors.Handle(), atA.Buffer)
	assert.Equal(t, b.Vectors.Handle(), atB.Buffer)
	assert.Equal(t, 2, r.Live(gltest.VertexArray))
	assert.Equal(t, 3, r.Live(gltest.Buffer))
}

func TestMeshCopiesData(t *testing.T) {
	md := glgpu.MeshData{Name: "c", Positions: []f32.Vec3{{1, 2, 3}}}
	ms, err := glgpu.NewMesh(gltest.NewRecorder(), md)
	require.NoError(t, err)
	md.Positions[0][0] = 9
	assert.Equal(t, float32(1), ms.Vectors.Positions()[0][0])
}

func TestMeshValidate(t *testing.T) {
	_, err := glgpu.NewMesh(gltest.NewRecorder(), glgpu.MeshData{Name: "empty"})
	assert.ErrorIs(t, err, glgpu.ErrEmptyMesh)

	bad := glgpu.MeshData{Name: "bad", Positions: tri.Positions, Indexes: []uint32{0, 1, 3}}
	r := gltest.NewRecorder()
	_, err = glgpu.NewMesh(r, bad)
	assert.ErrorIs(t, err, glgpu.ErrIndexRange)
	assert.Zero(t, r.LiveTotal(), "nothing allocated for invalid data")
}

func TestMeshDelete(t *testing.T) {
	r := gltest.NewRecorder()
	ms, err := glgpu.NewMesh(r, quad)
	require.NoError(t, err)
	ms.Delete()
	ms.Delete()
	assert.Zero(t, r.LiveTotal())
	assert.Empty(t, r.DoubleDeletes)
}
