// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene defines the fixed scenes that can be rendered:
// their geometry, shader stages, programs and draw order.
package scene

import (
	_ "embed"
	"fmt"
	"sort"

	"cogentcore.org/glbasics/glgpu"
	"golang.org/x/image/math/f32"
)

//go:embed shaders/position.vert
var positionVert string

//go:embed shaders/orange.frag
var orangeFrag string

//go:embed shaders/yellow.frag
var yellowFrag string

// Stage is a named shader stage source.
type Stage struct {
	Name   string
	Type   glgpu.ShaderTypes
	Source string
}

// Pipeline is a program linked from named stages.
type Pipeline struct {
	Name   string
	Stages []string
}

// Unit draws the named mesh with the named pipeline.
type Unit struct {
	Pipeline string
	Mesh     string
}

// Scene is everything needed to build and draw one frame.
type Scene struct {
	Name      string
	Title     string
	Stages    []Stage
	Pipelines []Pipeline
	Meshes    []glgpu.MeshData
	Units     []Unit
}

// Validate checks that every name referenced by the scene is defined.
func (sc *Scene) Validate() error {
	stages := map[string]bool{}
	for _, st := range sc.Stages {
		stages[st.Name] = true
	}
	pipes := map[string]bool{}
	for _, pl := range sc.Pipelines {
		for _, sn := range pl.Stages {
			if !stages[sn] {
				return fmt.Errorf("scene %s: pipeline %s uses unknown stage %s", sc.Name, pl.Name, sn)
			}
		}
		pipes[pl.Name] = true
	}
	meshes := map[string]bool{}
	for i := range sc.Meshes {
		if err := sc.Meshes[i].Validate(); err != nil {
			return fmt.Errorf("scene %s: %w", sc.Name, err)
		}
		meshes[sc.Meshes[i].Name] = true
	}
	for _, u := range sc.Units {
		if !pipes[u.Pipeline] {
			return fmt.Errorf("scene %s: unit uses unknown pipeline %s", sc.Name, u.Pipeline)
		}
		if !meshes[u.Mesh] {
			return fmt.Errorf("scene %s: unit uses unknown mesh %s", sc.Name, u.Mesh)
		}
	}
	return nil
}

// Quad is a rectangle drawn as two indexed triangles sharing an edge,
// with one orange program.
func Quad() *Scene {
	return &Scene{
		Name:  "quad",
		Title: "TestingWindow",
		Stages: []Stage{
			{Name: "position", Type: glgpu.VertexShader, Source: positionVert},
			{Name: "orange", Type: glgpu.FragmentShader, Source: orangeFrag},
		},
		Pipelines: []Pipeline{{Name: "orange", Stages: []string{"position", "orange"}}},
		Meshes: []glgpu.MeshData{{
			Name: "rect",
			Positions: []f32.Vec3{
				{0.5, 0.5, 0.0},   // top right
				{0.5, -0.5, 0.0},  // bottom right
				{-0.5, 0.5, 0.0},  // top left
				{-0.5, -0.5, 0.0}, // bottom left
			},
			Indexes: []uint32{
				0, 1, 2,
				1, 3, 2,
			},
		}},
		Units: []Unit{{Pipeline: "orange", Mesh: "rect"}},
	}
}

// TwoTriangles is two separate triangles side by side, each in its
// own buffers, drawn by two programs sharing one vertex stage with
// different fragment stages.
func TwoTriangles() *Scene {
	return &Scene{
		Name:  "twotri",
		Title: "TestingWindow",
		Stages: []Stage{
			{Name: "position", Type: glgpu.VertexShader, Source: positionVert},
			{Name: "orange", Type: glgpu.FragmentShader, Source: orangeFrag},
			{Name: "yellow", Type: glgpu.FragmentShader, Source: yellowFrag},
		},
		Pipelines: []Pipeline{
			{Name: "orange", Stages: []string{"position", "orange"}},
			{Name: "yellow", Stages: []string{"position", "yellow"}},
		},
		Meshes: []glgpu.MeshData{
			{Name: "left", Positions: []f32.Vec3{{-0.9, -0.5, 0.0}, {0.0, -0.5, 0.0}, {-0.45, 0.5, 0.0}}},
			{Name: "right", Positions: []f32.Vec3{{0.0, -0.5, 0.0}, {0.9, -0.5, 0.0}, {0.45, 0.5, 0.0}}},
		},
		Units: []Unit{
			{Pipeline: "orange", Mesh: "left"},
			{Pipeline: "yellow", Mesh: "right"},
		},
	}
}

// Scenes maps scene names to their constructors.
var Scenes = map[string]func() *Scene{
	"quad":   Quad,
	"twotri": TwoTriangles,
}

// Names returns the sorted names of all scenes.
func Names() []string {
	nms := make([]string, 0, len(Scenes))
	for nm := range Scenes {
		nms = append(nms, nm)
	}
	sort.Strings(nms)
	return nms
}

// ByName returns a new scene of given name.
func ByName(name string) (*Scene, error) {
	fn, ok := Scenes[name]
	if !ok {
		return nil, fmt.Errorf("unknown scene %q, must be one of %v", name, Names())
	}
	return fn(), nil
}
