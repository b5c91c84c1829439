// Copyright ©2026 The ctlfft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ctlfft_debug

package vecarith

import "fmt"

// debug is true when the ctlfft_debug build tag is set, enabling the
// precondition assertions in check.
const debug = true

func check(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
