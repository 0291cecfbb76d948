// Copyright (c) 2019 Jacob Hughes. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package exec

import (
	"unsafe"
)

// Entry returns a Go function value which enters the native code at
// addr.  A Go function value points at a word holding the code address,
// so a heap-allocated word stands in for the closure object; the
// generated code must ignore the closure context register.
//
// The native code takes no Go-visible arguments and must preserve the
// registers the Go runtime relies on across calls.  On amd64 the
// runtime's g register (r14) is within the System V callee-saved set
// the trampoline spills, and x15 is untouched; on arm64 the g register
// (x28) is within the AAPCS64 callee-saved set.
func Entry(addr uintptr) func() {
	p := new(uintptr)
	*p = addr
	return *(*func())(unsafe.Pointer(&p))
}
