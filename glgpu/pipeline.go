// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import (
	"fmt"
	"log/slog"
)

// PipelineBuilder compiles named shader stages and links them into
// programs. A stage can be shared by any number of programs, for
// example one vertex stage with several fragment stages.
// Release deletes all stages once the programs are linked.
type PipelineBuilder struct {
	gl     API
	stages map[string]*Shader
	order  []string
}

// NewPipelineBuilder returns a builder on the given GL context.
func NewPipelineBuilder(gl API) *PipelineBuilder {
	return &PipelineBuilder{gl: gl, stages: map[string]*Shader{}}
}

// AddStage compiles the given source as a stage of given type and
// unique name.
func (pb *PipelineBuilder) AddStage(name string, typ ShaderTypes, src string) (*Shader, error) {
	if _, has := pb.stages[name]; has {
		return nil, fmt.Errorf("glgpu PipelineBuilder: stage %s already added", name)
	}
	sh := NewShader(pb.gl, name, typ)
	if err := sh.Compile(src); err != nil {
		return nil, err
	}
	pb.stages[name] = sh
	pb.order = append(pb.order, name)
	return sh, nil
}

// Stage returns the stage of given name, or nil.
func (pb *PipelineBuilder) Stage(name string) *Shader {
	return pb.stages[name]
}

// Link links a new program of given name from the named stages,
// which must include one vertex and one fragment stage.
func (pb *PipelineBuilder) Link(name string, stages ...string) (*Program, error) {
	shs := make([]*Shader, 0, len(stages))
	var has [ShaderTypesN]bool
	for _, sn := range stages {
		sh, ok := pb.stages[sn]
		if !ok {
			return nil, fmt.Errorf("%w: %s in program %s", ErrUnknownStage, sn, name)
		}
		has[sh.Type()] = true
		shs = append(shs, sh)
	}
	for st := VertexShader; st < ShaderTypesN; st++ {
		if !has[st] {
			return nil, &LinkError{Name: name, Log: fmt.Sprintf("no %s stage", st)}
		}
	}
	pr := NewProgram(pb.gl, name)
	if err := pr.Link(shs...); err != nil {
		return nil, err
	}
	slog.Debug("glgpu linked program", "name", name, "stages", stages)
	return pr, nil
}

// Release deletes every stage, in the order added.
// Programs linked from them remain valid.
func (pb *PipelineBuilder) Release() {
	for _, sn := range pb.order {
		pb.stages[sn].Delete()
	}
	pb.stages = map[string]*Shader{}
	pb.order = nil
}
