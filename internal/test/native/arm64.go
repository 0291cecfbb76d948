// Copyright (c) 2020 Jacob Hughes. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux && arm64 && !gcamd64
// +build linux,arm64,!gcamd64

package native

import (
	"github.com/jacob-hughes/gcmalloc/abi"
	"github.com/jacob-hughes/gcmalloc/internal/code"
	"github.com/jacob-hughes/gcmalloc/internal/exec"
	isa "github.com/jacob-hughes/gcmalloc/internal/isa/arm64"
	"github.com/jacob-hughes/gcmalloc/internal/isa/arm64/in"
	"github.com/jacob-hughes/gcmalloc/internal/reg"
)

const (
	// CanMisalign: the stack pointer must keep 16-byte alignment
	// whenever it is used for an access, so there is only one legal
	// alignment class to call in.
	CanMisalign = false

	// CallOverhead: BLR passes the return address in x30, consuming no
	// stack.
	CallOverhead = 0
)

// mov64 loads a 64-bit immediate with a move-wide sequence.
func mov64(text *code.Buf, r reg.R, val uint64) {
	text.PutUint32(in.MOVZ.RdI16Hw(r, uint32(val), 0))
	for hw := uint32(1); hw < 4; hw++ {
		text.PutUint32(in.MOVK.RdI16Hw(r, uint32(val>>(16*hw)), hw))
	}
}

// storeSP materializes the data block address in the scratch register
// and stores the stack pointer to the given data word.
func storeSP(text *code.Buf, argsAddr int32, word uint64) {
	text.PutUint32(in.ADRP.RdI21(isa.RegScratch, argsAddr>>12))
	text.PutUint32(in.ADDi.RdRnI12(isa.RegCtxArg, isa.SP, 0))
	text.PutUint32(in.STR.RdRnI12(isa.RegCtxArg, isa.RegScratch, in.Imm12(word)))
}

func NewRecorder(words int) (*Recorder, error) {
	m, err := exec.NewMapping(textCap, (2+words)*8)
	if err != nil {
		return nil, err
	}

	err = build(m, func(text *code.Buf, argsAddr int32) {
		text.PutUint32(in.ADRP.RdI21(isa.RegScratch, argsAddr>>12))
		text.PutUint32(in.STR.RdRnI12(isa.RegCtxArg, isa.RegScratch, in.Imm12(0)))
		text.PutUint32(in.STR.RdRnI12(isa.RegSPArg, isa.RegScratch, in.Imm12(1)))
		for i := 0; i < words; i++ {
			// x0 is free once it has been stored.
			text.PutUint32(in.LDR.RdRnI12(isa.RegCtxArg, isa.RegSPArg, in.Imm12(uint64(i))))
			text.PutUint32(in.STR.RdRnI12(isa.RegCtxArg, isa.RegScratch, in.Imm12(uint64(2+i))))
		}
		text.PutUint32(in.RET.Rn(isa.LR))
	})
	if err != nil {
		m.Close()
		return nil, err
	}

	return &Recorder{m, words}, nil
}

// NewSeeder builds a harness calling target.  Seeds are given in
// abi.FrameSlots order (ascending frame offsets).  The x30 seed is
// never observable: BLR replaces the register with the return address
// before the target can spill it.
func NewSeeder(target uintptr, seeds []uint64, misalign bool) (*Seeder, error) {
	if len(seeds) != abi.SpillSlots {
		panic("wrong number of seed values")
	}
	if misalign {
		panic("stack pointer must keep 16-byte alignment")
	}

	m, err := exec.NewMapping(textCap, (2+abi.SpillSlots)*8)
	if err != nil {
		return nil, err
	}

	var retAddr uintptr

	err = build(m, func(text *code.Buf, argsAddr int32) {
		text.PutUint32(in.STPpre.RtRt2RnI7(isa.FP, isa.LR, isa.SP, in.Imm7(-abi.FrameSize/8)))
		for i, pair := range isa.SpillPairs[1:] {
			offset := int32(i+1) * 16
			text.PutUint32(in.STP.RtRt2RnI7(pair[0], pair[1], isa.SP, in.Imm7(offset/8)))
		}

		mov64(text, isa.FP, seeds[0])
		for i := 0; i < 10; i++ {
			mov64(text, isa.X19+reg.R(i), seeds[2+i])
		}

		storeSP(text, argsAddr, 0)
		mov64(text, isa.RegSPArg, uint64(target)) // x1 is dead until the target loads it.
		text.PutUint32(in.BLR.Rn(isa.RegSPArg))
		retAddr = m.TextAddr() + uintptr(text.Addr)
		storeSP(text, argsAddr, 1)

		text.PutUint32(in.STR.RdRnI12(isa.FP, isa.RegScratch, in.Imm12(2)))
		text.PutUint32(in.STR.RdRnI12(isa.LR, isa.RegScratch, in.Imm12(3)))
		for i := 0; i < 10; i++ {
			text.PutUint32(in.STR.RdRnI12(isa.X19+reg.R(i), isa.RegScratch, in.Imm12(uint64(4+i))))
		}

		for i, pair := range isa.SpillPairs[1:] {
			offset := int32(i+1) * 16
			text.PutUint32(in.LDP.RtRt2RnI7(pair[0], pair[1], isa.SP, in.Imm7(offset/8)))
		}
		text.PutUint32(in.LDPpost.RtRt2RnI7(isa.FP, isa.LR, isa.SP, in.Imm7(abi.FrameSize/8)))
		text.PutUint32(in.RET.Rn(isa.LR))
	})
	if err != nil {
		m.Close()
		return nil, err
	}

	return &Seeder{m: m, call: exec.Entry(m.TextAddr()), retAddr: retAddr}, nil
}

// FrameSeeds returns the values the spilled frame and the post-call
// registers must hold after a call seeded with seeds.  The x30 slot
// holds the return address, the live link-register value at the safe
// point.
func (s *Seeder) FrameSeeds(seeds []uint64) []uint64 {
	expect := append([]uint64(nil), seeds...)
	expect[1] = uint64(s.retAddr)
	return expect
}
