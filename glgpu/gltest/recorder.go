// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gltest provides a fake [glgpu.API] that records calls and
// models enough GL object and binding state to check resource
// lifetimes and draw calls without a GPU.
package gltest

import (
	"errors"
	"fmt"
	"strings"
	"unsafe"

	"cogentcore.org/glbasics/glgpu"
)

// Kinds are the kinds of GL object tracked by the [Recorder].
type Kinds int32

const (
	Buffer Kinds = iota
	VertexArray
	Shader
	Program

	KindsN
)

var kindNames = [KindsN]string{"buffer", "vertex array", "shader", "program"}

func (k Kinds) String() string {
	if k < 0 || k >= KindsN {
		return fmt.Sprintf("Kinds(%d)", int32(k))
	}
	return kindNames[k]
}

// Attrib is a vertex attribute configured on a vertex array.
type Attrib struct {
	Buffer     uint32
	Size       int32
	Type       uint32
	Normalized bool
	Stride     int32
	Offset     uintptr
	Enabled    bool
}

// Draw is one recorded draw call.
type Draw struct {
	Mode        uint32
	Indexed     bool
	First       int32
	Count       int32
	Program     uint32
	VertexArray uint32
}

type object struct {
	kind    Kinds
	handle  uint32
	deleted bool

	// buffer
	target uint32
	size   int
	usage  uint32

	// vertex array
	attribs map[uint32]*Attrib
	element uint32

	// shader
	shaderType uint32
	src        string
	compiled   bool

	// program
	attached []uint32
	linked   bool

	infoLog string
}

// Recorder is a fake GL context. The zero value is not usable;
// use [NewRecorder].
type Recorder struct {
	// Calls lists the name of every API call made, in order.
	Calls []string

	// Draws lists every draw call made, in order.
	Draws []Draw

	// DoubleDeletes lists deletions of objects that were already
	// deleted or never created.
	DoubleDeletes []string

	// Clears counts Clear calls.
	Clears int

	// ClearColorValue is the last color set with ClearColor.
	ClearColorValue [4]float32

	// ViewportValue is the last viewport set.
	ViewportValue [4]int32

	// MaxVertexAttribs is returned for GL_MAX_VERTEX_ATTRIBS.
	MaxVertexAttribs int32

	// Current, if set, reports whether the context is current;
	// calls made while it returns false raise INVALID_OPERATION.
	Current func() bool

	next        uint32
	objs        map[uint32]*object
	errs        []uint32
	arrayBuffer uint32
	element0    uint32
	vao         uint32
	program     uint32
}

// NewRecorder returns a new fake GL context.
func NewRecorder() *Recorder {
	return &Recorder{objs: map[uint32]*object{}, MaxVertexAttribs: 16}
}

// Loader returns a [glgpu.Loader] that returns the recorder once
// the entry points needed resolve to non-nil addresses.
func Loader(r *Recorder) glgpu.Loader {
	return func(procAddress func(name string) unsafe.Pointer) (glgpu.API, error) {
		for _, name := range []string{"glClear", "glDrawArrays", "glCreateShader"} {
			if procAddress(name) == nil {
				return nil, fmt.Errorf("gltest: entry point %s not found", name)
			}
		}
		return r, nil
	}
}

// FailLoader is a [glgpu.Loader] that always fails.
func FailLoader(procAddress func(name string) unsafe.Pointer) (glgpu.API, error) {
	return nil, errors.New("gltest: loader failure")
}

func (r *Recorder) call(name string) {
	r.Calls = append(r.Calls, name)
	if r.Current != nil && !r.Current() {
		r.raise(glgpu.INVALID_OPERATION)
	}
}

func (r *Recorder) raise(code uint32) {
	for _, c := range r.errs {
		if c == code {
			return
		}
	}
	r.errs = append(r.errs, code)
}

func (r *Recorder) gen(kind Kinds) *object {
	r.next++
	ob := &object{kind: kind, handle: r.next}
	r.objs[ob.handle] = ob
	return ob
}

// live returns the live object of given kind and handle, or nil.
func (r *Recorder) live(kind Kinds, h uint32) *object {
	ob, ok := r.objs[h]
	if !ok || ob.deleted || ob.kind != kind {
		return nil
	}
	return ob
}

func (r *Recorder) del(kind Kinds, h uint32) *object {
	if h == 0 {
		return nil
	}
	ob := r.live(kind, h)
	if ob == nil {
		r.DoubleDeletes = append(r.DoubleDeletes, fmt.Sprintf("%s %d", kind, h))
		return nil
	}
	ob.deleted = true
	return ob
}

////////  glgpu.API

func (r *Recorder) Viewport(x, y, width, height int32) {
	r.call("Viewport")
	if width < 0 || height < 0 {
		r.raise(glgpu.INVALID_VALUE)
		return
	}
	r.ViewportValue = [4]int32{x, y, width, height}
}

func (r *Recorder) ClearColor(cr, cg, cb, ca float32) {
	r.call("ClearColor")
	r.ClearColorValue = [4]float32{cr, cg, cb, ca}
}

func (r *Recorder) Clear(mask uint32) {
	r.call("Clear")
	if mask&^(glgpu.COLOR_BUFFER_BIT|glgpu.DEPTH_BUFFER_BIT) != 0 {
		r.raise(glgpu.INVALID_VALUE)
		return
	}
	r.Clears++
}

func (r *Recorder) GetIntegerv(pname uint32) int32 {
	r.call("GetIntegerv")
	if pname == glgpu.MAX_VERTEX_ATTRIBS {
		return r.MaxVertexAttribs
	}
	r.raise(glgpu.INVALID_ENUM)
	return 0
}

func (r *Recorder) GetError() uint32 {
	if len(r.errs) == 0 {
		return glgpu.NO_ERROR
	}
	c := r.errs[0]
	r.errs = r.errs[1:]
	return c
}

func (r *Recorder) GenBuffer() uint32 {
	r.call("GenBuffer")
	return r.gen(Buffer).handle
}

func (r *Recorder) BindBuffer(target, buffer uint32) {
	r.call("BindBuffer")
	if buffer != 0 {
		ob := r.live(Buffer, buffer)
		if ob == nil {
			r.raise(glgpu.INVALID_OPERATION)
			return
		}
		ob.target = target
	}
	switch target {
	case glgpu.ARRAY_BUFFER:
		r.arrayBuffer = buffer
	case glgpu.ELEMENT_ARRAY_BUFFER:
		if va := r.live(VertexArray, r.vao); va != nil {
			va.element = buffer
		} else {
			r.element0 = buffer
		}
	default:
		r.raise(glgpu.INVALID_ENUM)
	}
}

func (r *Recorder) boundBuffer(target uint32) uint32 {
	switch target {
	case glgpu.ARRAY_BUFFER:
		return r.arrayBuffer
	case glgpu.ELEMENT_ARRAY_BUFFER:
		if va := r.live(VertexArray, r.vao); va != nil {
			return va.element
		}
		return r.element0
	}
	return 0
}

func (r *Recorder) BufferData(target uint32, size int, data unsafe.Pointer, usage uint32) {
	r.call("BufferData")
	if size < 0 {
		r.raise(glgpu.INVALID_VALUE)
		return
	}
	ob := r.live(Buffer, r.boundBuffer(target))
	if ob == nil {
		r.raise(glgpu.INVALID_OPERATION)
		return
	}
	ob.size = size
	ob.usage = usage
}

func (r *Recorder) DeleteBuffer(buffer uint32) {
	r.call("DeleteBuffer")
	if r.del(Buffer, buffer) == nil {
		return
	}
	if r.arrayBuffer == buffer {
		r.arrayBuffer = 0
	}
	if r.element0 == buffer {
		r.element0 = 0
	}
	if va := r.live(VertexArray, r.vao); va != nil && va.element == buffer {
		va.element = 0
	}
}

func (r *Recorder) GenVertexArray() uint32 {
	r.call("GenVertexArray")
	ob := r.gen(VertexArray)
	ob.attribs = map[uint32]*Attrib{}
	return ob.handle
}

func (r *Recorder) BindVertexArray(array uint32) {
	r.call("BindVertexArray")
	if array != 0 && r.live(VertexArray, array) == nil {
		r.raise(glgpu.INVALID_OPERATION)
		return
	}
	r.vao = array
}

func (r *Recorder) attrib(index uint32) *Attrib {
	va := r.live(VertexArray, r.vao)
	if va == nil || int32(index) >= r.MaxVertexAttribs {
		return nil
	}
	at, ok := va.attribs[index]
	if !ok {
		at = &Attrib{}
		va.attribs[index] = at
	}
	return at
}

func (r *Recorder) VertexAttribPointer(index uint32, size int32, xtype uint32, normalized bool, stride int32, offset uintptr) {
	r.call("VertexAttribPointer")
	at := r.attrib(index)
	if at == nil || r.arrayBuffer == 0 {
		r.raise(glgpu.INVALID_OPERATION)
		return
	}
	if size < 1 || size > 4 || stride < 0 {
		r.raise(glgpu.INVALID_VALUE)
		return
	}
	at.Buffer = r.arrayBuffer
	at.Size = size
	at.Type = xtype
	at.Normalized = normalized
	at.Stride = stride
	at.Offset = offset
}

func (r *Recorder) EnableVertexAttribArray(index uint32) {
	r.call("EnableVertexAttribArray")
	at := r.attrib(index)
	if at == nil {
		r.raise(glgpu.INVALID_OPERATION)
		return
	}
	at.Enabled = true
}

func (r *Recorder) DeleteVertexArray(array uint32) {
	r.call("DeleteVertexArray")
	if r.del(VertexArray, array) != nil && r.vao == array {
		r.vao = 0
	}
}

func (r *Recorder) CreateShader(xtype uint32) uint32 {
	r.call("CreateShader")
	if xtype != glgpu.VERTEX_SHADER && xtype != glgpu.FRAGMENT_SHADER {
		r.raise(glgpu.INVALID_ENUM)
		return 0
	}
	ob := r.gen(Shader)
	ob.shaderType = xtype
	return ob.handle
}

func (r *Recorder) ShaderSource(shader uint32, src string) {
	r.call("ShaderSource")
	ob := r.live(Shader, shader)
	if ob == nil {
		r.raise(glgpu.INVALID_VALUE)
		return
	}
	ob.src = src
}

// CompileShader accepts source that declares a #version, defines
// main and has balanced braces; anything else fails with a log.
func (r *Recorder) CompileShader(shader uint32) {
	r.call("CompileShader")
	ob := r.live(Shader, shader)
	if ob == nil {
		r.raise(glgpu.INVALID_VALUE)
		return
	}
	switch {
	case !strings.HasPrefix(strings.TrimSpace(ob.src), "#version"):
		ob.infoLog = "0:1: error: missing #version directive"
	case !strings.Contains(ob.src, "void main"):
		ob.infoLog = "0:1: error: no main function"
	case strings.Count(ob.src, "{") != strings.Count(ob.src, "}"):
		ob.infoLog = "0:1: error: syntax error, unbalanced braces"
	default:
		ob.infoLog = ""
		ob.compiled = true
		return
	}
	ob.compiled = false
}

func (r *Recorder) GetShaderiv(shader, pname uint32) int32 {
	r.call("GetShaderiv")
	ob := r.live(Shader, shader)
	if ob == nil {
		r.raise(glgpu.INVALID_VALUE)
		return 0
	}
	switch pname {
	case glgpu.COMPILE_STATUS:
		if ob.compiled {
			return glgpu.TRUE
		}
		return glgpu.FALSE
	case glgpu.INFO_LOG_LENGTH:
		if ob.infoLog == "" {
			return 0
		}
		return int32(len(ob.infoLog) + 1)
	}
	r.raise(glgpu.INVALID_ENUM)
	return 0
}

func (r *Recorder) GetShaderInfoLog(shader uint32) string {
	r.call("GetShaderInfoLog")
	ob := r.live(Shader, shader)
	if ob == nil {
		r.raise(glgpu.INVALID_VALUE)
		return ""
	}
	return ob.infoLog
}

func (r *Recorder) DeleteShader(shader uint32) {
	r.call("DeleteShader")
	r.del(Shader, shader)
}

func (r *Recorder) CreateProgram() uint32 {
	r.call("CreateProgram")
	return r.gen(Program).handle
}

func (r *Recorder) AttachShader(program, shader uint32) {
	r.call("AttachShader")
	pr := r.live(Program, program)
	sh := r.live(Shader, shader)
	if pr == nil || sh == nil {
		r.raise(glgpu.INVALID_VALUE)
		return
	}
	for _, h := range pr.attached {
		if h == shader {
			r.raise(glgpu.INVALID_OPERATION)
			return
		}
	}
	pr.attached = append(pr.attached, shader)
}

func (r *Recorder) DetachShader(program, shader uint32) {
	r.call("DetachShader")
	pr := r.live(Program, program)
	if pr == nil {
		r.raise(glgpu.INVALID_VALUE)
		return
	}
	for i, h := range pr.attached {
		if h == shader {
			pr.attached = append(pr.attached[:i], pr.attached[i+1:]...)
			return
		}
	}
	r.raise(glgpu.INVALID_OPERATION)
}

// LinkProgram links if exactly one compiled vertex and one compiled
// fragment shader are attached. The linked state does not refer to
// the shaders afterwards.
func (r *Recorder) LinkProgram(program uint32) {
	r.call("LinkProgram")
	pr := r.live(Program, program)
	if pr == nil {
		r.raise(glgpu.INVALID_VALUE)
		return
	}
	nvert, nfrag := 0, 0
	for _, h := range pr.attached {
		sh := r.live(Shader, h)
		if sh == nil || !sh.compiled {
			pr.linked = false
			pr.infoLog = fmt.Sprintf("error: shader %d is not compiled", h)
			return
		}
		if sh.shaderType == glgpu.VERTEX_SHADER {
			nvert++
		} else {
			nfrag++
		}
	}
	if nvert != 1 || nfrag != 1 {
		pr.linked = false
		pr.infoLog = fmt.Sprintf("error: need one vertex and one fragment shader, have %d and %d", nvert, nfrag)
		return
	}
	pr.linked = true
	pr.infoLog = ""
}

func (r *Recorder) GetProgramiv(program, pname uint32) int32 {
	r.call("GetProgramiv")
	pr := r.live(Program, program)
	if pr == nil {
		r.raise(glgpu.INVALID_VALUE)
		return 0
	}
	switch pname {
	case glgpu.LINK_STATUS:
		if pr.linked {
			return glgpu.TRUE
		}
		return glgpu.FALSE
	case glgpu.INFO_LOG_LENGTH:
		if pr.infoLog == "" {
			return 0
		}
		return int32(len(pr.infoLog) + 1)
	}
	r.raise(glgpu.INVALID_ENUM)
	return 0
}

func (r *Recorder) GetProgramInfoLog(program uint32) string {
	r.call("GetProgramInfoLog")
	pr := r.live(Program, program)
	if pr == nil {
		r.raise(glgpu.INVALID_VALUE)
		return ""
	}
	return pr.infoLog
}

func (r *Recorder) UseProgram(program uint32) {
	r.call("UseProgram")
	if program != 0 {
		pr := r.live(Program, program)
		if pr == nil || !pr.linked {
			r.raise(glgpu.INVALID_OPERATION)
			return
		}
	}
	r.program = program
}

func (r *Recorder) DeleteProgram(program uint32) {
	r.call("DeleteProgram")
	if r.del(Program, program) != nil && r.program == program {
		r.program = 0
	}
}

// drawable reports whether a draw can be issued with the current state.
func (r *Recorder) drawable() bool {
	pr := r.live(Program, r.program)
	va := r.live(VertexArray, r.vao)
	return pr != nil && pr.linked && va != nil
}

func (r *Recorder) DrawArrays(mode uint32, first, count int32) {
	r.call("DrawArrays")
	if first < 0 || count < 0 {
		r.raise(glgpu.INVALID_VALUE)
		return
	}
	if !r.drawable() {
		r.raise(glgpu.INVALID_OPERATION)
		return
	}
	r.Draws = append(r.Draws, Draw{Mode: mode, First: first, Count: count, Program: r.program, VertexArray: r.vao})
}

func (r *Recorder) DrawElements(mode uint32, count int32, xtype uint32, offset uintptr) {
	r.call("DrawElements")
	if count < 0 {
		r.raise(glgpu.INVALID_VALUE)
		return
	}
	if xtype != glgpu.UNSIGNED_INT {
		r.raise(glgpu.INVALID_ENUM)
		return
	}
	if !r.drawable() || r.live(VertexArray, r.vao).element == 0 {
		r.raise(glgpu.INVALID_OPERATION)
		return
	}
	r.Draws = append(r.Draws, Draw{Mode: mode, Indexed: true, Count: count, Program: r.program, VertexArray: r.vao})
}

////////  Inspection

// Live returns the number of objects of given kind not yet deleted.
func (r *Recorder) Live(kind Kinds) int {
	n := 0
	for _, ob := range r.objs {
		if ob.kind == kind && !ob.deleted {
			n++
		}
	}
	return n
}

// LiveTotal returns the number of objects of any kind not yet deleted.
func (r *Recorder) LiveTotal() int {
	n := 0
	for k := Buffer; k < KindsN; k++ {
		n += r.Live(k)
	}
	return n
}

// Created returns the number of objects of given kind ever created.
func (r *Recorder) Created(kind Kinds) int {
	n := 0
	for _, ob := range r.objs {
		if ob.kind == kind {
			n++
		}
	}
	return n
}

// IsLive returns whether the handle names a live object of given kind.
func (r *Recorder) IsLive(kind Kinds, h uint32) bool {
	return r.live(kind, h) != nil
}

// BufferSize returns the size in bytes last uploaded to the buffer.
func (r *Recorder) BufferSize(buffer uint32) int {
	if ob, ok := r.objs[buffer]; ok && ob.kind == Buffer {
		return ob.size
	}
	return -1
}

// BufferUsage returns the usage hint last given for the buffer.
func (r *Recorder) BufferUsage(buffer uint32) uint32 {
	if ob, ok := r.objs[buffer]; ok && ob.kind == Buffer {
		return ob.usage
	}
	return 0
}

// VertexAttrib returns the attribute at index of the vertex array.
func (r *Recorder) VertexAttrib(array, index uint32) (Attrib, bool) {
	ob, ok := r.objs[array]
	if !ok || ob.kind != VertexArray {
		return Attrib{}, false
	}
	at, ok := ob.attribs[index]
	if !ok {
		return Attrib{}, false
	}
	return *at, true
}

// ElementBuffer returns the element buffer bound to the vertex array.
func (r *Recorder) ElementBuffer(array uint32) uint32 {
	if ob, ok := r.objs[array]; ok && ob.kind == VertexArray {
		return ob.element
	}
	return 0
}

// IsLinked returns whether the program is live and linked.
func (r *Recorder) IsLinked(program uint32) bool {
	pr := r.live(Program, program)
	return pr != nil && pr.linked
}

// Bound returns the current array buffer, vertex array and program.
func (r *Recorder) Bound() (arrayBuffer, vertexArray, program uint32) {
	return r.arrayBuffer, r.vao, r.program
}

// Count returns how many times the named call was made.
func (r *Recorder) Count(name string) int {
	n := 0
	for _, c := range r.Calls {
		if c == name {
			n++
		}
	}
	return n
}

// Reset clears the recorded calls and draws, keeping object state.
func (r *Recorder) Reset() {
	r.Calls = nil
	r.Draws = nil
	r.Clears = 0
}
