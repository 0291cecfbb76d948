// Copyright (c) 2020 Jacob Hughes. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (arm64 || gcarm64) && !gcamd64
// +build arm64 gcarm64
// +build !gcamd64

package abi

const (
	WordSize   = 8
	StackAlign = 16

	// AAPCS64: x19-x28 are callee-saved; x29 is the frame pointer.
	// x30 (the link register) is clobbered by the nested call, so it
	// is part of the frame as well.  Twelve words are a multiple of
	// StackAlign: no padding slot.
	SpillSlots = 12
	PadSlots   = 0

	FrameSize = (SpillSlots + PadSlots) * WordSize
)

// FrameSlots returns the spilled-frame layout in ascending address
// order.  The frame record (x29, x30) is stored lowest, matching the
// conventional AAPCS64 prologue.
func FrameSlots() []Slot {
	return []Slot{
		{"x29", 0 * WordSize},
		{"x30", 1 * WordSize},
		{"x19", 2 * WordSize},
		{"x20", 3 * WordSize},
		{"x21", 4 * WordSize},
		{"x22", 5 * WordSize},
		{"x23", 6 * WordSize},
		{"x24", 7 * WordSize},
		{"x25", 8 * WordSize},
		{"x26", 9 * WordSize},
		{"x27", 10 * WordSize},
		{"x28", 11 * WordSize},
	}
}
