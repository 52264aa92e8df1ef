// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package glgpu manages OpenGL objects for simple rendering: vertex and
index buffers, vertex arrays, shader stages and linked programs.

Every object is created on an explicit [API], which stands for one GL
context. That context must be current on the calling thread for all
calls; this is not checked. Objects carry an init flag so that Delete
releases the GL handle at most once, and [Resources] owns the
long-lived objects of a context so they can all be released together.
*/
package glgpu
