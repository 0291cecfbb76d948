// Copyright (c) 2020 Jacob Hughes. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (arm64 || gcarm64) && !gcamd64
// +build arm64 gcarm64
// +build !gcamd64

package arm64

import (
	"github.com/jacob-hughes/gcmalloc/internal/code"
	"github.com/jacob-hughes/gcmalloc/internal/isa/arm64/in"
)

// Argument block slot offsets, relative to the start of the block.
const (
	ArgScanner = 0
	ArgContext = 8
)

const frameSize = 96 // twelve words; a multiple of the 16-byte alignment unit

// AssembleSpill emits the spill trampoline.  argsAddr is the address of
// the argument block relative to the start of the text; it must be
// page-aligned because the block is addressed with ADRP (the text
// itself starts on a page boundary).
//
// The frame record goes in with the pre-indexed store that allocates
// the frame, then the callee-saved pairs above it.  The scanner gets
// the context word in x0 and the post-spill stack pointer in x1.
func AssembleSpill(text *code.Buf, argsAddr int32) {
	if argsAddr&0xfff != 0 {
		panic("argument block is not page-aligned")
	}

	text.PutUint32(in.STPpre.RtRt2RnI7(FP, LR, SP, in.Imm7(-frameSize/8)))
	for i, pair := range SpillPairs[1:] {
		offset := int32(i+1) * 16
		text.PutUint32(in.STP.RtRt2RnI7(pair[0], pair[1], SP, in.Imm7(offset/8)))
	}

	// The ADRP is within the first text page, so the page delta is
	// exactly the argument block offset.
	text.PutUint32(in.ADRP.RdI21(RegScratch, argsAddr>>12))
	text.PutUint32(in.LDR.RdRnI12(RegCtxArg, RegScratch, in.Imm12(ArgContext/8)))
	text.PutUint32(in.ADDi.RdRnI12(RegSPArg, SP, 0))
	text.PutUint32(in.LDR.RdRnI12(RegScratch, RegScratch, in.Imm12(ArgScanner/8)))
	text.PutUint32(in.BLR.Rn(RegScratch))

	for i, pair := range SpillPairs[1:] {
		offset := int32(i+1) * 16
		text.PutUint32(in.LDP.RtRt2RnI7(pair[0], pair[1], SP, in.Imm7(offset/8)))
	}
	text.PutUint32(in.LDPpost.RtRt2RnI7(FP, LR, SP, in.Imm7(frameSize/8)))

	text.PutUint32(in.RET.Rn(LR))
}
