// Copyright (c) 2020 Jacob Hughes. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package in

import (
	"github.com/jacob-hughes/gcmalloc/internal/reg"
)

// Imm7 masks a load/store-pair offset field value.  The caller scales
// the byte offset down by the access size first.
func Imm7(i int32) uint32 { return uint32(i) & 0x7f }

// Imm12 masks an unsigned immediate field value.
func Imm12(i uint64) uint32 { return uint32(i) & 0xfff }

type (
	Reg           uint32
	RegRegImm12   uint32
	RegRegRegImm7 uint32
	RegImm16Hw    uint32
	RegImm21      uint32
)

func (op Reg) Rn(rn reg.R) uint32 {
	return uint32(op) | uint32(rn)<<5
}

func (op RegRegImm12) RdRnI12(rd, rn reg.R, imm uint32) uint32 {
	return uint32(op) | imm<<10 | uint32(rn)<<5 | uint32(rd)
}

func (op RegRegRegImm7) RtRt2RnI7(rt, rt2, rn reg.R, imm uint32) uint32 {
	return uint32(op) | imm<<15 | uint32(rt2)<<10 | uint32(rn)<<5 | uint32(rt)
}

// RdI16Hw places imm in the 16-bit group hw (0 is bits 0-15).
func (op RegImm16Hw) RdI16Hw(rd reg.R, imm, hw uint32) uint32 {
	return uint32(op) | hw<<21 | (imm&0xffff)<<5 | uint32(rd)
}

// RdI21 encodes a page delta.  The low two bits land in immlo, the rest
// in immhi.
func (op RegImm21) RdI21(rd reg.R, pages int32) uint32 {
	return uint32(op) | uint32(pages&3)<<29 | (uint32(pages>>2)&0x7ffff)<<5 | uint32(rd)
}
