// Copyright (c) 2019 Jacob Hughes. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package in

import (
	"bytes"
	"testing"

	"github.com/jacob-hughes/gcmalloc/buffer"
	"github.com/jacob-hughes/gcmalloc/internal/code"
	"github.com/jacob-hughes/gcmalloc/internal/reg"
)

const (
	rax = reg.R(0)
	rcx = reg.R(1)
	rbx = reg.R(3)
	rsp = reg.R(4)
	rbp = reg.R(5)
	rsi = reg.R(6)
	rdi = reg.R(7)
	r12 = reg.R(12)
	r13 = reg.R(13)
	r15 = reg.R(15)
)

func encode(f func(text *code.Buf)) []byte {
	text := &code.Buf{Sink: buffer.NewDynamic(nil)}
	f(text)
	return text.Bytes()
}

func TestEncoding(t *testing.T) {
	for _, test := range []struct {
		name  string
		emit  func(text *code.Buf)
		bytes []byte
	}{
		{"push rbp", func(text *code.Buf) { PUSHo.Reg(text, rbp) }, []byte{0x55}},
		{"push rbx", func(text *code.Buf) { PUSHo.Reg(text, rbx) }, []byte{0x53}},
		{"push r12", func(text *code.Buf) { PUSHo.Reg(text, r12) }, []byte{0x41, 0x54}},
		{"push r15", func(text *code.Buf) { PUSHo.Reg(text, r15) }, []byte{0x41, 0x57}},
		{"pop rbp", func(text *code.Buf) { POPo.Reg(text, rbp) }, []byte{0x5d}},
		{"pop r15", func(text *code.Buf) { POPo.Reg(text, r15) }, []byte{0x41, 0x5f}},

		{"push rax modrm", func(text *code.Buf) { PUSH.Reg(text, rax) }, []byte{0xff, 0xf0}},
		{"pop rcx modrm", func(text *code.Buf) { POP.Reg(text, rcx) }, []byte{0x8f, 0xc1}},
		{"call rax", func(text *code.Buf) { CALL.Reg(text, rax) }, []byte{0xff, 0xd0}},
		{"call r12", func(text *code.Buf) { CALL.Reg(text, r12) }, []byte{0x41, 0xff, 0xd4}},

		{"mov rsi, rsp", func(text *code.Buf) { MOVmr.RegReg(text, rsp, rsi) }, []byte{0x48, 0x89, 0xe6}},
		{"mov r13, rax", func(text *code.Buf) { MOV.RegReg(text, r13, rax) }, []byte{0x4c, 0x8b, 0xe8}},

		{"mov rax, [rsi]", func(text *code.Buf) { MOV.RegMemDisp(text, rax, rsi, 0) }, []byte{0x48, 0x8b, 0x06}},
		{"mov rax, [rsi+16]", func(text *code.Buf) { MOV.RegMemDisp(text, rax, rsi, 16) }, []byte{0x48, 0x8b, 0x46, 0x10}},
		{"mov rax, [rbp]", func(text *code.Buf) { MOV.RegMemDisp(text, rax, rbp, 0) }, []byte{0x48, 0x8b, 0x45, 0x00}},
		{"mov rax, [rsi+128]", func(text *code.Buf) { MOV.RegMemDisp(text, rax, rsi, 128) }, []byte{0x48, 0x8b, 0x86, 0x80, 0x00, 0x00, 0x00}},

		{"mov rdi, [rip+4]", func(text *code.Buf) { MOV.RegMemRIP(text, rdi, 11) }, []byte{0x48, 0x8b, 0x3d, 0x04, 0x00, 0x00, 0x00}},
		{"mov [rip+4], rsp", func(text *code.Buf) { MOVmr.RegMemRIP(text, rsp, 11) }, []byte{0x48, 0x89, 0x25, 0x04, 0x00, 0x00, 0x00}},

		{"mov rbx, imm64", func(text *code.Buf) { MOV64i.RegImm64(text, rbx, 0x1122334455667788) }, []byte{0x48, 0xbb, 0x88, 0x77, 0x66, 0x55, 0x44, 0x33, 0x22, 0x11}},
		{"mov r15, imm64", func(text *code.Buf) { MOV64i.RegImm64(text, r15, -1) }, []byte{0x49, 0xbf, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},

		{"add rsp, 8", func(text *code.Buf) { ADDi.RegImm(text, rsp, 8) }, []byte{0x48, 0x83, 0xc4, 0x08}},
		{"sub rsp, 8", func(text *code.Buf) { SUBi.RegImm(text, rsp, 8) }, []byte{0x48, 0x83, 0xec, 0x08}},
		{"sub rsp, 160", func(text *code.Buf) { SUBi.RegImm(text, rsp, 160) }, []byte{0x48, 0x81, 0xec, 0xa0, 0x00, 0x00, 0x00}},

		{"ret", func(text *code.Buf) { RET.Simple(text) }, []byte{0xc3}},
	} {
		t.Run(test.name, func(t *testing.T) {
			if b := encode(test.emit); !bytes.Equal(b, test.bytes) {
				t.Errorf("encoded % x, expected % x", b, test.bytes)
			}
		})
	}
}

// RIP-relative displacements are relative to the end of the instruction,
// so the encoding depends on the position within the text.
func TestEncodingRIPDisp(t *testing.T) {
	text := &code.Buf{Sink: buffer.NewDynamic(nil)}
	RET.Simple(text) // Start at nonzero address.
	MOV.RegMemRIP(text, rax, 4096)

	expect := []byte{0xc3, 0x48, 0x8b, 0x05, 0xf8, 0x0f, 0x00, 0x00}
	if b := text.Bytes(); !bytes.Equal(b, expect) {
		t.Errorf("encoded % x, expected % x", b, expect)
	}
}

func TestEncodingSIBPanic(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("no panic for SIB base register")
		}
	}()

	encode(func(text *code.Buf) { MOV.RegMemDisp(text, rax, rsp, 0) })
}
