// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package oswin

import (
	"fmt"
	"strings"
)

// Key is a keyboard key that can be queried with [Window.Key].
type Key int32

const (
	KeyUnknown Key = iota
	KeyEscape
	KeyEnter
	KeySpace
	KeyQ

	KeysN
)

var keyNames = [KeysN]string{"unknown", "escape", "enter", "space", "q"}

func (k Key) String() string {
	if k < 0 || k >= KeysN {
		return fmt.Sprintf("Key(%d)", int32(k))
	}
	return keyNames[k]
}

// ParseKey returns the key of the given name (case insensitive).
func ParseKey(name string) (Key, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for k := KeyEscape; k < KeysN; k++ {
		if keyNames[k] == name {
			return k, nil
		}
	}
	return KeyUnknown, fmt.Errorf("oswin: unknown key %q", name)
}

// Action is the state of a key.
type Action int32

const (
	Release Action = iota
	Press
	Repeat
)

// Pressed returns whether the key is down.
func (a Action) Pressed() bool {
	return a == Press || a == Repeat
}
