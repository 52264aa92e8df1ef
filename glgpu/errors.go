// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyMesh is returned when building a mesh with no positions.
	ErrEmptyMesh = errors.New("glgpu: mesh has no vertex positions")

	// ErrIndexRange is returned when a mesh index is not a valid vertex.
	ErrIndexRange = errors.New("glgpu: mesh index out of range")

	// ErrUnknownStage is returned when linking a stage that was not added.
	ErrUnknownStage = errors.New("glgpu: unknown shader stage")

	// ErrNotLinked is returned when using a program that is not linked.
	ErrNotLinked = errors.New("glgpu: program not linked")
)

// ContextCreationError is returned when the window or its GL
// context could not be created.
type ContextCreationError struct {
	Err error
}

func (e *ContextCreationError) Error() string {
	return fmt.Sprintf("window creation failed: %v", e.Err)
}

func (e *ContextCreationError) Unwrap() error { return e.Err }

// LoaderInitError is returned when the GL entry points could not be
// resolved against the current context.
type LoaderInitError struct {
	Err error
}

func (e *LoaderInitError) Error() string {
	return fmt.Sprintf("GL loader init failed: %v", e.Err)
}

func (e *LoaderInitError) Unwrap() error { return e.Err }

// ShaderCompileError is returned when a shader stage fails to compile.
// Log is the info log of the driver.
type ShaderCompileError struct {
	Name string
	Type ShaderTypes
	Log  string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("glgpu: %s shader %q failed to compile: %s", e.Type, e.Name, e.Log)
}

// LinkError is returned when a program fails to link.
type LinkError struct {
	Name string
	Log  string
}

func (e *LinkError) Error() string {
	return fmt.Sprintf("glgpu: program %q failed to link: %s", e.Name, e.Log)
}
