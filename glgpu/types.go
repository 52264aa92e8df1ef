// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package glgpu

import "fmt"

// ShaderTypes is a list of GPU shader (pipeline stage) types
type ShaderTypes int32

const (
	VertexShader ShaderTypes = iota
	FragmentShader

	ShaderTypesN
)

var shaderTypeNames = [ShaderTypesN]string{"vertex", "fragment"}

func (st ShaderTypes) String() string {
	if st < 0 || st >= ShaderTypesN {
		return fmt.Sprintf("ShaderTypes(%d)", int32(st))
	}
	return shaderTypeNames[st]
}

// GLType returns the GL enum for creating a shader of this type.
func (st ShaderTypes) GLType() uint32 {
	return glShaders[st]
}

var glShaders = map[ShaderTypes]uint32{
	VertexShader:   VERTEX_SHADER,
	FragmentShader: FRAGMENT_SHADER,
}

// Float32Bytes is the size of a float32 vertex component in bytes.
const Float32Bytes = 4

// PositionComponents is the number of float32 components of a position.
const PositionComponents = 3

// PositionStride is the byte stride between consecutive positions.
const PositionStride = PositionComponents * Float32Bytes

// PositionLocation is the shader attribute location of the position input
// (layout (location = 0) in vec3 aPos).
const PositionLocation = 0
