// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"log/slog"
)

// Resources owns the long-lived GPU objects of a GL context:
// meshes (vertex arrays and buffers) and programs, by name.
// Release deletes every one of them exactly once.
type Resources struct {
	meshes   []*Mesh
	programs []*Program
	released bool
}

// AddMesh takes ownership of the mesh.
func (rs *Resources) AddMesh(ms *Mesh) *Mesh {
	rs.meshes = append(rs.meshes, ms)
	return ms
}

// AddProgram takes ownership of the program.
func (rs *Resources) AddProgram(pr *Program) *Program {
	rs.programs = append(rs.programs, pr)
	return pr
}

// Meshes returns the owned meshes, in the order added.
func (rs *Resources) Meshes() []*Mesh {
	return rs.meshes
}

// Programs returns the owned programs, in the order added.
func (rs *Resources) Programs() []*Program {
	return rs.programs
}

// MeshByName returns the mesh of given name, or nil.
func (rs *Resources) MeshByName(name string) *Mesh {
	for _, ms := range rs.meshes {
		if ms.Name == name {
			return ms
		}
	}
	return nil
}

// ProgramByName returns the program of given name, or nil.
func (rs *Resources) ProgramByName(name string) *Program {
	for _, pr := range rs.programs {
		if pr.Name() == name {
			return pr
		}
	}
	return nil
}

// Release deletes all meshes then all programs, in reverse order
// of addition. It is safe to call more than once.
func (rs *Resources) Release() {
	if rs.released {
		return
	}
	for i := len(rs.meshes) - 1; i >= 0; i-- {
		rs.meshes[i].Delete()
	}
	for i := len(rs.programs) - 1; i >= 0; i-- {
		rs.programs[i].Delete()
	}
	slog.Debug("glgpu released resources", "meshes", len(rs.meshes), "programs", len(rs.programs))
	rs.meshes = nil
	rs.programs = nil
	rs.released = true
}
