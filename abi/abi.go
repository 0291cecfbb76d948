// Copyright (c) 2019 Jacob Hughes. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package abi describes the calling-convention facts which the spill
// trampoline depends on: the callee-saved register set, the layout of
// the spilled frame, and the stack alignment unit.
//
// Caller-saved registers never appear in the frame: a caller-saved
// value which survives the call into the trampoline has already been
// written to stack memory by the calling code's own spills.
package abi

// Slot is one word of the spilled frame.
type Slot struct {
	Reg    string // Convention name of the saved register.
	Offset int32  // Byte offset from the handoff pointer.
}
