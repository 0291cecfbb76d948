// Copyright (c) 2020 Jacob Hughes. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package in encodes the A64 instructions which the spill trampoline is
// built from.  All loads, stores and arithmetic use the 64-bit form.
package in

const (
	// Unconditional branch (register)
	BR  = Reg(0x6b<<25 | 0<<21 | 0x1f<<16)
	BLR = Reg(0x6b<<25 | 1<<21 | 0x1f<<16)
	RET = Reg(0x6b<<25 | 2<<21 | 0x1f<<16)

	// Load/store register pair (signed offset, pre/post-indexed)
	STP     = RegRegRegImm7(2<<30 | 5<<27 | 2<<23 | 0<<22)
	STPpre  = RegRegRegImm7(2<<30 | 5<<27 | 3<<23 | 0<<22)
	LDP     = RegRegRegImm7(2<<30 | 5<<27 | 2<<23 | 1<<22)
	LDPpost = RegRegRegImm7(2<<30 | 5<<27 | 1<<23 | 1<<22)

	// Load/store register (unsigned immediate)
	STR = RegRegImm12(3<<30 | 7<<27 | 1<<24 | 0<<22)
	LDR = RegRegImm12(3<<30 | 7<<27 | 1<<24 | 1<<22)

	// Add/subtract (immediate)
	ADDi = RegRegImm12(1<<31 | 0<<30 | 0<<29 | 0x11<<24)
	SUBi = RegRegImm12(1<<31 | 1<<30 | 0<<29 | 0x11<<24)

	// Move wide (immediate)
	MOVZ = RegImm16Hw(1<<31 | 2<<29 | 0x25<<23)
	MOVK = RegImm16Hw(1<<31 | 3<<29 | 0x25<<23)

	// Address generation
	ADRP = RegImm21(1<<31 | 0x10<<24)
)
