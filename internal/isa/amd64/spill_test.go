// Copyright (c) 2019 Jacob Hughes. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build (amd64 || gcamd64) && !gcarm64
// +build amd64 gcamd64
// +build !gcarm64

package amd64

import (
	"bytes"
	"testing"

	"github.com/jacob-hughes/gcmalloc/abi"
	"github.com/jacob-hughes/gcmalloc/buffer"
	"github.com/jacob-hughes/gcmalloc/internal/code"
	"github.com/jacob-hughes/gcmalloc/internal/reg"
)

func TestAssembleSpill(t *testing.T) {
	text := &code.Buf{Sink: buffer.NewDynamic(nil)}
	AssembleSpill(text, 4096)

	expect := []byte{
		0x55,       // push rbp
		0x53,       // push rbx
		0x41, 0x54, // push r12
		0x41, 0x55, // push r13
		0x41, 0x56, // push r14
		0x41, 0x57, // push r15
		0x48, 0x8b, 0x3d, 0xf7, 0x0f, 0x00, 0x00, // mov rdi, [rip+4087]
		0x48, 0x89, 0xe6, // mov rsi, rsp
		0x48, 0x8b, 0x05, 0xe5, 0x0f, 0x00, 0x00, // mov rax, [rip+4069]
		0xff, 0xd0, // call rax
		0x41, 0x5f, // pop r15
		0x41, 0x5e, // pop r14
		0x41, 0x5d, // pop r13
		0x41, 0x5c, // pop r12
		0x5b,       // pop rbx
		0x5d,       // pop rbp
		0xc3,       // ret
	}

	if b := text.Bytes(); !bytes.Equal(b, expect) {
		t.Errorf("assembled:\n% x\nexpected:\n% x", b, expect)
	}
}

// The push order must invert the frame layout: the last register pushed
// lands at the handoff pointer.
func TestSpillRegsFrame(t *testing.T) {
	names := map[reg.R]string{
		RBP: "rbp",
		RBX: "rbx",
		R12: "r12",
		R13: "r13",
		R14: "r14",
		R15: "r15",
	}

	slots := abi.FrameSlots()
	if len(slots) != len(SpillRegs) {
		t.Fatalf("%d frame slots, %d spill registers", len(slots), len(SpillRegs))
	}

	for i, r := range SpillRegs {
		slot := slots[len(slots)-1-i]
		if slot.Reg != names[r] {
			t.Errorf("push %d is %s, frame slot at offset %d is %s", i, names[r], slot.Offset, slot.Reg)
		}
		if slot.Offset != int32(len(slots)-1-i)*abi.WordSize {
			t.Errorf("frame slot %s has offset %d", slot.Reg, slot.Offset)
		}
	}
}
