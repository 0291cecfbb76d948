// Copyright (c) 2019 Jacob Hughes. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux && amd64 && !gcarm64
// +build linux,amd64,!gcarm64

package native

import (
	"github.com/jacob-hughes/gcmalloc/abi"
	"github.com/jacob-hughes/gcmalloc/internal/code"
	"github.com/jacob-hughes/gcmalloc/internal/exec"
	isa "github.com/jacob-hughes/gcmalloc/internal/isa/amd64"
	"github.com/jacob-hughes/gcmalloc/internal/isa/amd64/in"
)

const (
	// CanMisalign: both 16-byte stack alignment classes are legal at a
	// call site, so the harness can exercise the odd one.
	CanMisalign = true

	// CallOverhead is the stack consumed by the call instruction itself:
	// the pushed return address sits between SPBefore and the frame.
	CallOverhead = abi.WordSize
)

func NewRecorder(words int) (*Recorder, error) {
	m, err := exec.NewMapping(textCap, (2+words)*8)
	if err != nil {
		return nil, err
	}

	err = build(m, func(text *code.Buf, argsAddr int32) {
		in.MOVmr.RegMemRIP(text, isa.RegCtxArg, argsAddr+0)
		in.MOVmr.RegMemRIP(text, isa.RegSPArg, argsAddr+8)
		for i := 0; i < words; i++ {
			in.MOV.RegMemDisp(text, isa.RegScratch, isa.RegSPArg, int32(i)*8)
			in.MOVmr.RegMemRIP(text, isa.RegScratch, argsAddr+16+int32(i)*8)
		}
		in.RET.Simple(text)
	})
	if err != nil {
		m.Close()
		return nil, err
	}

	return &Recorder{m, words}, nil
}

// NewSeeder builds a harness calling target.  Seeds are given in
// abi.FrameSlots order (ascending frame offsets).
func NewSeeder(target uintptr, seeds []uint64, misalign bool) (*Seeder, error) {
	if len(seeds) != len(isa.SpillRegs) {
		panic("wrong number of seed values")
	}

	m, err := exec.NewMapping(textCap, (2+len(isa.SpillRegs))*8)
	if err != nil {
		return nil, err
	}

	err = build(m, func(text *code.Buf, argsAddr int32) {
		for _, r := range isa.SpillRegs {
			in.PUSHo.Reg(text, r)
		}
		for i, r := range isa.SpillRegs {
			// SpillRegs is in push order; seeds are in frame order.
			in.MOV64i.RegImm64(text, r, int64(seeds[len(seeds)-1-i]))
		}

		if misalign {
			in.SUBi.RegImm(text, isa.RSP, 8)
		}
		in.MOVmr.RegMemRIP(text, isa.RSP, argsAddr+0)
		in.MOV64i.RegImm64(text, isa.RegScratch, int64(target))
		in.CALL.Reg(text, isa.RegScratch)
		in.MOVmr.RegMemRIP(text, isa.RSP, argsAddr+8)
		for i, r := range isa.SpillRegs {
			in.MOVmr.RegMemRIP(text, r, argsAddr+16+int32(len(isa.SpillRegs)-1-i)*8)
		}
		if misalign {
			in.ADDi.RegImm(text, isa.RSP, 8)
		}

		for i := len(isa.SpillRegs) - 1; i >= 0; i-- {
			in.POPo.Reg(text, isa.SpillRegs[i])
		}
		in.RET.Simple(text)
	})
	if err != nil {
		m.Close()
		return nil, err
	}

	return &Seeder{m: m, call: exec.Entry(m.TextAddr())}, nil
}

// FrameSeeds returns the values the spilled frame and the post-call
// registers must hold after a call seeded with seeds.
func (s *Seeder) FrameSeeds(seeds []uint64) []uint64 {
	return append([]uint64(nil), seeds...)
}
