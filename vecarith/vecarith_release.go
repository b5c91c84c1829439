// Copyright ©2026 The ctlfft Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !ctlfft_debug

package vecarith

// debug is false in release builds: precondition checks compile to nothing.
const debug = false

func check(cond bool, format string, args ...any) {}
