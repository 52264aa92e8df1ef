// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package app ties the window system, GL context, scene resources
// and frame loop together: bootstrap, build, run, teardown.
package app

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"cogentcore.org/glbasics/base/logx"
	"cogentcore.org/glbasics/config"
	"cogentcore.org/glbasics/glgpu"
	"cogentcore.org/glbasics/oswin"
	"cogentcore.org/glbasics/render"
	"cogentcore.org/glbasics/scene"
	"github.com/spf13/pflag"
)

// Context is a window with its current GL context.
// All GL objects built on GL belong to it, and must be released
// before Destroy.
type Context struct {
	System oswin.System
	Window oswin.Window
	GL     glgpu.API
}

// Bootstrap initializes the window system, opens the window,
// makes its context current and loads the GL entry points.
// Window system failures return a [*glgpu.ContextCreationError]
// and loader failures a [*glgpu.LoaderInitError]; in both cases
// everything acquired so far has been released.
// Must be called on the main thread.
func Bootstrap(opts *oswin.WindowOptions, sys oswin.System, load glgpu.Loader) (*Context, error) {
	if err := sys.Init(); err != nil {
		return nil, &glgpu.ContextCreationError{Err: err}
	}
	ctx := &Context{System: sys}
	win, err := sys.CreateWindow(opts)
	if err == nil && win == nil {
		err = errors.New("no window returned")
	}
	if err != nil {
		ctx.Destroy()
		return nil, &glgpu.ContextCreationError{Err: err}
	}
	ctx.Window = win
	win.MakeContextCurrent()

	gl, err := load(sys.ProcAddress)
	if err == nil && gl == nil {
		err = errors.New("no API returned")
	}
	if err != nil {
		ctx.Destroy()
		return nil, &glgpu.LoaderInitError{Err: err}
	}
	ctx.GL = gl
	gl.Viewport(0, 0, int32(opts.Size.X), int32(opts.Size.Y))
	slog.Info("max attribs in vertex shader", "n", gl.GetIntegerv(glgpu.MAX_VERTEX_ATTRIBS))
	return ctx, nil
}

// Destroy destroys the window and terminates the window system.
// It is safe to call more than once.
func (ctx *Context) Destroy() {
	if ctx.Window != nil {
		ctx.Window.Destroy()
		ctx.Window = nil
	}
	if ctx.System != nil {
		ctx.System.Terminate()
		ctx.System = nil
	}
	ctx.GL = nil
}

// Built is a scene uploaded to a GL context.
type Built struct {
	glgpu.Resources

	// Units are the draw units, in scene order.
	Units []render.DrawUnit
}

// Build uploads the meshes of the scene, then compiles its stages
// and links its programs. Stages are deleted once all programs are
// linked. On error, everything built is released.
func Build(gl glgpu.API, sc *scene.Scene) (*Built, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	b := &Built{}
	err := b.build(gl, sc)
	if err != nil {
		b.Release()
		return nil, err
	}
	return b, nil
}

func (b *Built) build(gl glgpu.API, sc *scene.Scene) error {
	for _, md := range sc.Meshes {
		ms, err := glgpu.NewMesh(gl, md)
		if err != nil {
			return err
		}
		b.AddMesh(ms)
	}

	pb := glgpu.NewPipelineBuilder(gl)
	defer pb.Release()
	for _, st := range sc.Stages {
		if _, err := pb.AddStage(st.Name, st.Type, st.Source); err != nil {
			return err
		}
	}
	for _, pl := range sc.Pipelines {
		pr, err := pb.Link(pl.Name, pl.Stages...)
		if err != nil {
			return err
		}
		b.AddProgram(pr)
	}

	for _, u := range sc.Units {
		b.Units = append(b.Units, render.DrawUnit{Program: b.ProgramByName(u.Pipeline), Mesh: b.MeshByName(u.Mesh)})
	}
	return nil
}

// Run renders the configured scene until the window closes,
// returning the number of frames drawn. All GPU objects, the window
// and the window system are released on every return path.
func Run(cfg *config.Config, sys oswin.System, load glgpu.Loader) (int, error) {
	sc, err := scene.ByName(cfg.Scene)
	if err != nil {
		return 0, err
	}
	ctx, err := Bootstrap(cfg.WindowOptions(sc.Title), sys, load)
	if err != nil {
		return 0, err
	}
	defer ctx.Destroy()

	b, err := Build(ctx.GL, sc)
	if err != nil {
		return 0, fmt.Errorf("scene %s: %w", sc.Name, err)
	}
	defer b.Release()

	lp := &render.Loop{
		Window:      ctx.Window,
		System:      ctx.System,
		GL:          ctx.GL,
		ClearColor:  cfg.Render.ClearColor,
		ExitKey:     cfg.ExitKey(),
		Units:       b.Units,
		MaxFrames:   cfg.Render.MaxFrames,
		CheckErrors: cfg.Render.CheckErrors,
	}
	slog.Info("rendering", "scene", sc.Name, "units", len(lp.Units))
	n := lp.Run()
	slog.Info("closed", "scene", sc.Name, "frames", n, "glErrors", lp.ErrorCount)
	return n, nil
}

// Main parses args into a config, sets up logging to logw and runs,
// returning the process exit status: 0 on success, 2 for invalid
// arguments and 1 for any other failure.
func Main(name string, args []string, logw io.Writer, sys oswin.System, load glgpu.Loader) int {
	fl := config.NewFlags(name)
	fl.FlagSet().SetOutput(logw)
	cfg, err := fl.Parse(args)
	if errors.Is(err, pflag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintf(logw, "%s: %v\n", name, err)
		return 2
	}
	logx.Init(logw, cfg.Log.Color)
	if err := logx.SetLevel(cfg.Log.Level); err != nil {
		slog.Warn(err.Error())
	}
	if _, err := Run(cfg, sys, load); err != nil {
		slog.Error(err.Error())
		return 1
	}
	return 0
}
