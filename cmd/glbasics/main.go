// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command glbasics opens a window and renders one of the
// built-in scenes with OpenGL until Escape is pressed or the
// window is closed.
package main

import (
	"os"
	"runtime"

	"cogentcore.org/glbasics/app"
	"cogentcore.org/glbasics/glgpu/glcore"
	"cogentcore.org/glbasics/oswin/glfwos"
)

func init() {
	// must lock main thread for glfw and gl!
	runtime.LockOSThread()
}

func main() {
	os.Exit(app.Main("glbasics", os.Args[1:], os.Stderr, glfwos.NewSystem(), glcore.Load))
}
