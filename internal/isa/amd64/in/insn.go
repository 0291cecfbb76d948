// Copyright (c) 2019 Jacob Hughes. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package in encodes the x86-64 instructions which the spill trampoline
// and its native test stubs are built from.  All data operations have a
// fixed 64-bit operand size: the spilled frame is defined in
// pointer-sized words only.
package in

const (
	// Opcode bits of some instructions are located at this offset in the
	// ModRM byte (ModRO part).
	opcodeBase = 3
)

const (
	PUSHo  = O(0x50)
	POPo   = O(0x58)
	MOVmr  = RM(0x89) // register parameters reversed
	MOV    = RM(0x8b)
	LEA    = RM(0x8d) // RegReg is invalid
	MOV64i = OI(0xb8)
	RET    = NP(0xc3)

	ADDi = MI(0x81<<16 | 0x83<<8 | 0<<opcodeBase)
	SUBi = MI(0x81<<16 | 0x83<<8 | 5<<opcodeBase)

	POP  = M(0x8f<<8 | 0<<opcodeBase)
	CALL = M(0xff<<8 | 2<<opcodeBase)
	PUSH = M(0xff<<8 | 6<<opcodeBase)
)
