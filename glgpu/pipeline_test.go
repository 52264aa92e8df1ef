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
)

const vertSrc = `#version 330 core
layout (location = 0) in vec3 aPos;
void main()
{
	gl_Position = vec4(aPos.x, aPos.y, aPos.z, 1.0);
}
`

const orangeSrc = `#version 330 core
out vec4 FragColor;
void main()
{
	FragColor = vec4(1.0f, 0.5f, 0.2f, 1.0f);
}
`

const yellowSrc = `#version 330 core
out vec4 FragColor;
void main()
{
	FragColor = vec4(1.0f, 1.0f, 0.0f, 1.0f);
}
`

func TestShaderCompile(t *testing.T) {
	r := gltest.NewRecorder()
	sh := glgpu.NewShader(r, "vert", glgpu.VertexShader)
	require.NoError(t, sh.Compile(vertSrc))
	assert.True(t, sh.IsCompiled())
	assert.Equal(t, vertSrc, sh.Source())
	assert.True(t, r.IsLive(gltest.Shader, sh.Handle()))

	sh.Delete()
	sh.Delete()
	assert.False(t, sh.IsCompiled())
	assert.Zero(t, r.Live(gltest.Shader))
	assert.Empty(t, r.DoubleDeletes)
}

func TestShaderCompileError(t *testing.T) {
	r := gltest.NewRecorder()
	sh := glgpu.NewShader(r, "broken", glgpu.FragmentShader)
	err := sh.Compile("#version 330 core\nvoid main() {")
	var ce *glgpu.ShaderCompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "broken", ce.Name)
	assert.Equal(t, glgpu.FragmentShader, ce.Type)
	assert.Contains(t, ce.Log, "unbalanced")
	assert.False(t, sh.IsCompiled())
	assert.Zero(t, r.Live(gltest.Shader), "failed shader is deleted")
}

func TestProgramOutlivesStages(t *testing.T) {
	r := gltest.NewRecorder()
	pb := glgpu.NewPipelineBuilder(r)
	_, err := pb.AddStage("vert", glgpu.VertexShader, vertSrc)
	require.NoError(t, err)
	_, err = pb.AddStage("orange", glgpu.FragmentShader, orangeSrc)
	require.NoError(t, err)
	pr, err := pb.Link("orange", "vert", "orange")
	require.NoError(t, err)
	assert.Equal(t, []string{"vert", "orange"}, pr.Stages())

	pb.Release()
	assert.Zero(t, r.Live(gltest.Shader))
	assert.True(t, r.IsLinked(pr.Handle()))
	require.NoError(t, pr.Activate())
	_, _, cur := r.Bound()
	assert.Equal(t, pr.Handle(), cur)
	assert.Empty(t, glgpu.Errors(r))
}

func TestSharedVertexStage(t *testing.T) {
	r := gltest.NewRecorder()
	pb := glgpu.NewPipelineBuilder(r)
	_, err := pb.AddStage("vert", glgpu.VertexShader, vertSrc)
	require.NoError(t, err)
	_, err = pb.AddStage("orange", glgpu.FragmentShader, orangeSrc)
	require.NoError(t, err)
	_, err = pb.AddStage("yellow", glgpu.FragmentShader, yellowSrc)
	require.NoError(t, err)

	a, err := pb.Link("a", "vert", "orange")
	require.NoError(t, err)
	b, err := pb.Link("b", "vert", "yellow")
	require.NoError(t, err)
	assert.NotEqual(t, a.Handle(), b.Handle())
	assert.Equal(t, 3, r.Created(gltest.Shader), "vertex stage compiled once")

	pb.Release()
	assert.True(t, r.IsLinked(a.Handle()))
	assert.True(t, r.IsLinked(b.Handle()))
	a.Delete()
	b.Delete()
	assert.Zero(t, r.LiveTotal())
	assert.Empty(t, r.DoubleDeletes)
}

func TestPipelineBuilderErrors(t *testing.T) {
	r := gltest.NewRecorder()
	pb := glgpu.NewPipelineBuilder(r)
	_, err := pb.AddStage("vert", glgpu.VertexShader, vertSrc)
	require.NoError(t, err)
	_, err = pb.AddStage("vert", glgpu.VertexShader, vertSrc)
	assert.Error(t, err, "duplicate stage name")

	_, err = pb.Link("p", "vert", "missing")
	assert.ErrorIs(t, err, glgpu.ErrUnknownStage)

	_, err = pb.Link("p", "vert")
	var le *glgpu.LinkError
	assert.ErrorAs(t, err, &le)
	assert.Equal(t, "p", le.Name)
	assert.Zero(t, r.Live(gltest.Program))

	_, err = pb.AddStage("bad", glgpu.FragmentShader, "void main() {}")
	assert.Error(t, err)
	assert.Nil(t, pb.Stage("bad"))
	pb.Release()
	assert.Zero(t, r.LiveTotal())
}

func TestProgramNotLinked(t *testing.T) {
	r := gltest.NewRecorder()
	pr := glgpu.NewProgram(r, "none")
	assert.ErrorIs(t, pr.Activate(), glgpu.ErrNotLinked)
	sh := glgpu.NewShader(r, "vert", glgpu.VertexShader)
	assert.Error(t, pr.Link(sh), "uncompiled shader")
	pr.Delete()
	assert.Zero(t, r.Count("DeleteProgram"))
}
