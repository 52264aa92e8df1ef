// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package app

import (
	"bytes"
	"errors"
	"image"
	"testing"

	"cogentcore.org/glbasics/config"
	"cogentcore.org/glbasics/glgpu"
	"cogentcore.org/glbasics/glgpu/gltest"
	"cogentcore.org/glbasics/oswin"
	"cogentcore.org/glbasics/oswin/oswintest"
	"cogentcore.org/glbasics/scene"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newGL returns a recorder that raises errors for calls made
// while no window of sys has a current context.
func newGL(sys *oswintest.System) *gltest.Recorder {
	r := gltest.NewRecorder()
	r.Current = func() bool { return sys.Current() != nil }
	return r
}

func runScene(t *testing.T, name string, frames int) (*gltest.Recorder, *oswintest.System) {
	t.Helper()
	sys := oswintest.NewSystem()
	r := newGL(sys)
	cfg := config.Default()
	cfg.Scene = name
	cfg.Render.MaxFrames = frames
	n, err := Run(cfg, sys, gltest.Loader(r))
	require.NoError(t, err)
	assert.Equal(t, frames, n)
	return r, sys
}

func assertReleased(t *testing.T, r *gltest.Recorder, sys *oswintest.System) {
	t.Helper()
	assert.Zero(t, r.LiveTotal(), "leaked GL objects")
	assert.Empty(t, r.DoubleDeletes, "objects released twice")
	assert.Empty(t, glgpu.Errors(r), "GL errors")
	require.Len(t, sys.Windows, 1)
	assert.Equal(t, 1, sys.Windows[0].Destroyed)
	assert.True(t, sys.Terminated)
}

func TestQuadScenario(t *testing.T) {
	r, sys := runScene(t, "quad", 1)
	require.Len(t, r.Draws, 1)
	d := r.Draws[0]
	assert.True(t, d.Indexed)
	assert.Equal(t, int32(6), d.Count)
	assert.Equal(t, uint32(glgpu.TRIANGLES), d.Mode)
	assert.Equal(t, [4]int32{0, 0, 800, 600}, r.ViewportValue)
	assert.Equal(t, [4]float32{0.2, 0.3, 0.3, 1.0}, r.ClearColorValue)

	assert.Equal(t, 1, r.Created(gltest.Program))
	assert.Equal(t, 2, r.Created(gltest.Shader))
	assert.Equal(t, 2, r.Created(gltest.Buffer))
	assert.Equal(t, 1, r.Created(gltest.VertexArray))
	assertReleased(t, r, sys)
	assert.Equal(t, "TestingWindow", sys.Opts[0].Title)
}

func TestTwoTrianglesScenario(t *testing.T) {
	r, sys := runScene(t, "twotri", 1)
	require.Len(t, r.Draws, 2)
	for _, d := range r.Draws {
		assert.False(t, d.Indexed)
		assert.Equal(t, int32(3), d.Count)
	}
	assert.NotEqual(t, r.Draws[0].Program, r.Draws[1].Program, "each unit selects its own program")
	assert.NotEqual(t, r.Draws[0].VertexArray, r.Draws[1].VertexArray)
	assert.Equal(t, 2, r.Count("UseProgram"))

	assert.Equal(t, 3, r.Created(gltest.Shader), "one shared vertex stage and two fragment stages")
	assert.Equal(t, 2, r.Created(gltest.Program))
	assert.Equal(t, 2, r.Created(gltest.Buffer))
	assertReleased(t, r, sys)
}

func TestExitKey(t *testing.T) {
	sys := oswintest.NewSystem()
	r := newGL(sys)
	sys.OnPoll = func(poll int) {
		if poll == 3 {
			sys.Windows[0].SetKey(oswin.KeyEscape, oswin.Press)
		}
	}
	cfg := config.Default()
	n, err := Run(cfg, sys, gltest.Loader(r))
	require.NoError(t, err)
	assert.Equal(t, 5, n)
	assert.Len(t, r.Draws, 5)
	assertReleased(t, r, sys)
}

func TestBootstrapInitFailure(t *testing.T) {
	sys := oswintest.NewSystem()
	sys.InitErr = errors.New("no display")
	_, err := Bootstrap(config.Default().WindowOptions("t"), sys, gltest.Loader(gltest.NewRecorder()))
	var ce *glgpu.ContextCreationError
	require.ErrorAs(t, err, &ce)
	assert.ErrorContains(t, err, "no display")
	assert.False(t, sys.Terminated, "nothing acquired")
}

func TestBootstrapWindowFailure(t *testing.T) {
	sys := oswintest.NewSystem()
	sys.FailCreate = true
	_, err := Bootstrap(config.Default().WindowOptions("t"), sys, gltest.Loader(gltest.NewRecorder()))
	var ce *glgpu.ContextCreationError
	require.ErrorAs(t, err, &ce)
	assert.Contains(t, err.Error(), "window creation failed")
	assert.True(t, sys.Terminated)
}

func TestBootstrapLoaderFailure(t *testing.T) {
	for _, fail := range []string{"noprocs", "loader"} {
		sys := oswintest.NewSystem()
		load := gltest.Loader(gltest.NewRecorder())
		if fail == "noprocs" {
			sys.NoProcs = true
		} else {
			load = gltest.FailLoader
		}
		_, err := Bootstrap(config.Default().WindowOptions("t"), sys, load)
		var le *glgpu.LoaderInitError
		require.ErrorAs(t, err, &le, fail)
		require.Len(t, sys.Windows, 1)
		assert.Equal(t, 1, sys.Windows[0].Destroyed, fail)
		assert.True(t, sys.Terminated, fail)
	}
}

func TestBootstrapMakesCurrent(t *testing.T) {
	sys := oswintest.NewSystem()
	r := newGL(sys)
	ctx, err := Bootstrap(&oswin.WindowOptions{Size: image.Pt(320, 200), GLMajor: 3, GLMinor: 3}, sys, gltest.Loader(r))
	require.NoError(t, err)
	assert.Equal(t, sys.Windows[0], sys.Current())
	assert.Equal(t, [4]int32{0, 0, 320, 200}, r.ViewportValue)
	assert.Empty(t, glgpu.Errors(r))
	ctx.Destroy()
	ctx.Destroy()
	assert.Equal(t, 1, sys.Windows[0].Destroyed)
}

func TestBuildFailureReleases(t *testing.T) {
	r := gltest.NewRecorder()
	sc := scene.TwoTriangles()
	sc.Stages[2].Source = "#version 330 core\nvoid main() {"
	_, err := Build(r, sc)
	var ce *glgpu.ShaderCompileError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "yellow", ce.Name)
	assert.Zero(t, r.LiveTotal())
	assert.Empty(t, r.DoubleDeletes)

	sc = scene.Quad()
	sc.Units[0].Mesh = "none"
	_, err = Build(r, sc)
	assert.Error(t, err)
}

func TestRunErrors(t *testing.T) {
	cfg := config.Default()
	cfg.Scene = "cube"
	_, err := Run(cfg, oswintest.NewSystem(), gltest.FailLoader)
	assert.Error(t, err)

	sys := oswintest.NewSystem()
	cfg = config.Default()
	_, err = Run(cfg, sys, gltest.FailLoader)
	var le *glgpu.LoaderInitError
	assert.ErrorAs(t, err, &le)
	assert.True(t, sys.Terminated)
}

func TestMainExitStatus(t *testing.T) {
	var buf bytes.Buffer
	sys := oswintest.NewSystem()
	r := newGL(sys)
	code := Main("glbasics", []string{"--scene", "twotri", "--frames", "2", "--no-color"}, &buf, sys, gltest.Loader(r))
	assert.Equal(t, 0, code)
	assert.Len(t, r.Draws, 4)
	assert.Contains(t, buf.String(), "frames=2")

	buf.Reset()
	assert.Equal(t, 2, Main("glbasics", []string{"--width", "0"}, &buf, oswintest.NewSystem(), gltest.FailLoader))
	assert.Contains(t, buf.String(), "window size")

	buf.Reset()
	sys = oswintest.NewSystem()
	sys.FailCreate = true
	assert.Equal(t, 1, Main("glbasics", []string{"--no-color"}, &buf, sys, gltest.FailLoader))
	assert.Contains(t, buf.String(), "window creation failed")

	buf.Reset()
	assert.Equal(t, 0, Main("glbasics", []string{"--help"}, &buf, oswintest.NewSystem(), gltest.FailLoader))
	assert.Contains(t, buf.String(), "--scene")
}
