// Copyright (c) 2019 Jacob Hughes. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package in

import (
	"encoding/binary"

	"github.com/jacob-hughes/gcmalloc/internal/code"
	"github.com/jacob-hughes/gcmalloc/internal/reg"
)

// addrDisp is the operand of a RIP-relative instruction: the distance
// from the end of the instruction to the target address.
func addrDisp(currentAddr, insnSize, targetAddr int32) int32 {
	siteAddr := currentAddr + insnSize
	return targetAddr - siteAddr
}

type output struct {
	buf    [16]byte
	offset uint8
}

func (o *output) len() int           { return int(o.offset) }
func (o *output) copy(target []byte) { copy(target, o.buf[:o.offset]) }

func (o *output) byte(b byte) {
	o.buf[o.offset] = b
	o.offset++
}

func (o *output) rex(wrxb rexWRXB) {
	o.buf[o.offset] = Rex | byte(wrxb)
	o.offset++
}

func (o *output) rexIf(wrxb rexWRXB) {
	o.buf[o.offset] = Rex | byte(wrxb)
	o.offset += bit(wrxb != 0)
}

func (o *output) mod(mod Mod, ro ModRO, rm ModRM) {
	o.buf[o.offset] = byte(mod) | byte(ro) | byte(rm)
	o.offset++
}

func (o *output) int32(val int32) {
	binary.LittleEndian.PutUint32(o.buf[o.offset:], uint32(val))
	o.offset += 4
}

func (o *output) int64(val int64) {
	binary.LittleEndian.PutUint64(o.buf[o.offset:], uint64(val))
	o.offset += 8
}

func (o *output) int(val int32, size uint8) {
	// Little-endian byte order works for any size
	binary.LittleEndian.PutUint32(o.buf[o.offset:], uint32(val))
	o.offset += size
}

// NP

type NP byte

func (op NP) Simple(text *code.Buf) {
	text.PutByte(byte(op))
}

// O - register in opcode byte

type O byte

func (op O) Reg(text *code.Buf, r reg.R) {
	var o output
	o.rexIf(regRexB(r))
	o.byte(byte(op) + byte(r&7))
	o.copy(text.Extend(o.len()))
}

// M - no register operand in opcode; always 64-bit by default
// (PUSH, POP, CALL), so no RexW.

type M uint16 // opcode byte and ModRO byte

func (op M) Reg(text *code.Buf, r reg.R) {
	var o output
	o.rexIf(regRexB(r))
	o.byte(byte(op >> 8))
	o.mod(ModReg, ModRO(op), regRM(r))
	o.copy(text.Extend(o.len()))
}

// RM (MR) - 64-bit operand size

type RM byte // opcode byte

func (op RM) RegReg(text *code.Buf, r, r2 reg.R) {
	var o output
	o.rex(RexW | regRexR(r) | regRexB(r2))
	o.byte(byte(op))
	o.mod(ModReg, regRO(r), regRM(r2))
	o.copy(text.Extend(o.len()))
}

// RegMemDisp encodes a memory operand with base register and
// displacement.  Bases rsp and r12 would need a SIB byte and are not
// supported.
func (op RM) RegMemDisp(text *code.Buf, r, base reg.R, disp int32) {
	mod, dispSize := dispModSize(disp)
	if regRM(base) == ModRMSIB {
		panic("memory base register needs SIB byte")
	}
	if mod == ModMem && regRM(base) == ModRMRIP {
		// rbp/r13 with no displacement would encode as RIP-relative.
		mod = ModMemDisp8
		dispSize = 1
	}

	var o output
	o.rex(RexW | regRexR(r) | regRexB(base))
	o.byte(byte(op))
	o.mod(mod, regRO(r), regRM(base))
	o.int(disp, dispSize)
	o.copy(text.Extend(o.len()))
}

// RegMemRIP encodes a RIP-relative memory operand.  targetAddr is
// relative to the start of the text.
func (op RM) RegMemRIP(text *code.Buf, r reg.R, targetAddr int32) {
	var o output
	o.rex(RexW | regRexR(r))
	o.byte(byte(op))
	o.mod(ModMem, regRO(r), ModRMRIP)
	o.int32(addrDisp(text.Addr, int32(o.len())+4, targetAddr))
	o.copy(text.Extend(o.len()))
}

// OI - register in opcode byte, 64-bit immediate

type OI byte

func (op OI) RegImm64(text *code.Buf, r reg.R, val int64) {
	var o output
	o.rex(RexW | regRexB(r))
	o.byte(byte(op) + byte(r&7))
	o.int64(val)
	o.copy(text.Extend(o.len()))
}

// MI - 64-bit operand size, sign-extended immediate

type MI uint32 // two opcode bytes (64-bit value, 8-bit value) and ModRO byte

func (op MI) opcode8() byte  { return byte(op >> 8) }
func (op MI) opcode32() byte { return byte(op >> 16) }

func (op MI) RegImm(text *code.Buf, r reg.R, val int32) {
	var o output
	o.rex(RexW | regRexB(r))
	if int32(int8(val)) == val {
		o.byte(op.opcode8())
		o.mod(ModReg, ModRO(op), regRM(r))
		o.byte(byte(val))
	} else {
		o.byte(op.opcode32())
		o.mod(ModReg, ModRO(op), regRM(r))
		o.int32(val)
	}
	o.copy(text.Extend(o.len()))
}
