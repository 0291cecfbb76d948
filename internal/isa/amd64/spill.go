// Copyright (c) 2019 Jacob Hughes. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (amd64 || gcamd64) && !gcarm64
// +build amd64 gcamd64
// +build !gcarm64

package amd64

import (
	"github.com/jacob-hughes/gcmalloc/internal/code"
	"github.com/jacob-hughes/gcmalloc/internal/isa/amd64/in"
)

// Argument block slot offsets, relative to the start of the block.
const (
	ArgScanner = 0 // scanner entry address
	ArgContext = 8 // pass-through context word
)

// AssembleSpill emits the spill trampoline.  argsAddr is the address of
// the argument block relative to the start of the text.
//
// The routine pushes the callee-saved registers, loads the context word
// into the scanner's first argument register and the post-spill stack
// pointer into the second, and calls the scanner entry address.  The
// six-word frame keeps the call site's 16-byte alignment class intact
// for any convention-legal entry alignment.  On return the frame is
// popped and all spilled registers are restored.
func AssembleSpill(text *code.Buf, argsAddr int32) {
	for _, r := range SpillRegs {
		in.PUSHo.Reg(text, r)
	}

	in.MOV.RegMemRIP(text, RegCtxArg, argsAddr+ArgContext)
	in.MOVmr.RegReg(text, RSP, RegSPArg)
	in.MOV.RegMemRIP(text, RegScratch, argsAddr+ArgScanner)
	in.CALL.Reg(text, RegScratch)

	for i := len(SpillRegs) - 1; i >= 0; i-- {
		in.POPo.Reg(text, SpillRegs[i])
	}

	in.RET.Simple(text)
}
