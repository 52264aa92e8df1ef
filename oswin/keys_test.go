// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oswin

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKey(t *testing.T) {
	k, err := ParseKey(" Escape ")
	assert.NoError(t, err)
	assert.Equal(t, KeyEscape, k)

	k, err = ParseKey("q")
	assert.NoError(t, err)
	assert.Equal(t, KeyQ, k)

	_, err = ParseKey("unknown")
	assert.Error(t, err)
	_, err = ParseKey("f13")
	assert.Error(t, err)

	assert.Equal(t, "space", KeySpace.String())
	assert.Equal(t, "Key(99)", Key(99).String())
}

func TestActionPressed(t *testing.T) {
	assert.False(t, Release.Pressed())
	assert.True(t, Press.Pressed())
	assert.True(t, Repeat.Pressed())
}

func TestWindowOptionsValidate(t *testing.T) {
	o := &WindowOptions{Size: image.Pt(800, 600), GLMajor: 3, GLMinor: 3}
	assert.NoError(t, o.Validate())
	o.Size.Y = 0
	assert.Error(t, o.Validate())
	o.Size.Y = 600
	o.GLMajor = 0
	assert.Error(t, o.Validate())
}
