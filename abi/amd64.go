// Copyright (c) 2019 Jacob Hughes. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (amd64 || gcamd64) && !gcarm64
// +build amd64 gcamd64
// +build !gcarm64

package abi

const (
	WordSize   = 8
	StackAlign = 16

	// System V AMD64: rbx, rbp, r12-r15 are callee-saved.  Six words
	// are already a multiple of StackAlign, so no padding slot is
	// needed to keep the nested call site aligned.
	SpillSlots = 6
	PadSlots   = 0

	FrameSize = (SpillSlots + PadSlots) * WordSize
)

// FrameSlots returns the spilled-frame layout in ascending address
// order.  The trampoline pushes in the reverse order, rbp first.
func FrameSlots() []Slot {
	return []Slot{
		{"r15", 0 * WordSize},
		{"r14", 1 * WordSize},
		{"r13", 2 * WordSize},
		{"r12", 3 * WordSize},
		{"rbx", 4 * WordSize},
		{"rbp", 5 * WordSize},
	}
}
