// Copyright (c) 2019 Jacob Hughes. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build linux && ((amd64 && !gcarm64) || (arm64 && !gcamd64))
// +build linux
// +build amd64,!gcarm64 arm64,!gcamd64

// Package native builds native test doubles for the spill trampoline:
// a scanner stub which records its arguments and the spilled frame, and
// a harness which seeds the callee-saved registers with known values
// before entering the trampoline.
package native

import (
	"encoding/binary"

	"github.com/pkg/errors"

	"github.com/jacob-hughes/gcmalloc/abi"
	"github.com/jacob-hughes/gcmalloc/buffer"
	"github.com/jacob-hughes/gcmalloc/internal/code"
	"github.com/jacob-hughes/gcmalloc/internal/exec"
)

const textCap = 512

func build(m *exec.Mapping, assemble func(text *code.Buf, argsAddr int32)) error {
	text := &code.Buf{Sink: buffer.NewDynamicHint(nil, textCap)}
	assemble(text, int32(m.DataAddr()-m.TextAddr()))

	b := text.Bytes()
	if len(b) > len(m.Text()) {
		return errors.Errorf("native stub text is %d bytes, mapping holds %d", len(b), len(m.Text()))
	}
	copy(m.Text(), b)

	return m.Seal()
}

// Recorder is a generated scanner routine.  When called through the
// trampoline it stores its two arguments and copies the given number of
// words upward from the handoff pointer into its data block.
type Recorder struct {
	m     *exec.Mapping
	words int
}

func (r *Recorder) Entry() uintptr { return r.m.TextAddr() }

func (r *Recorder) Ctx() uintptr {
	return uintptr(binary.LittleEndian.Uint64(r.m.Data()))
}

func (r *Recorder) Handoff() uintptr {
	return uintptr(binary.LittleEndian.Uint64(r.m.Data()[8:]))
}

func (r *Recorder) Frame() []uint64 {
	frame := make([]uint64, r.words)
	for i := range frame {
		frame[i] = binary.LittleEndian.Uint64(r.m.Data()[16+i*8:])
	}
	return frame
}

func (r *Recorder) Reset() {
	data := r.m.Data()
	for i := range data {
		data[i] = 0
	}
}

func (r *Recorder) Close() error { return r.m.Close() }

// Seeder is a generated harness routine.  It saves the Go runtime's
// callee-saved registers, loads a seed value into every register of the
// spill set, records the stack pointer, and calls the target (a spill
// trampoline).  After the call returns it stores the spill set again so
// that restoration can be checked.
type Seeder struct {
	m       *exec.Mapping
	call    func()
	retAddr uintptr
}

// Call enters the harness.
func (s *Seeder) Call() { s.call() }

// SPBefore is the stack pointer recorded immediately before the call to
// the target.
func (s *Seeder) SPBefore() uintptr {
	return uintptr(binary.LittleEndian.Uint64(s.m.Data()))
}

// SPAfter is the stack pointer recorded immediately after the target
// returned.
func (s *Seeder) SPAfter() uintptr {
	return uintptr(binary.LittleEndian.Uint64(s.m.Data()[8:]))
}

// Regs returns the spill set register values observed after the target
// returned, in abi.FrameSlots order.
func (s *Seeder) Regs() []uint64 {
	regs := make([]uint64, abi.SpillSlots)
	for i := range regs {
		regs[i] = binary.LittleEndian.Uint64(s.m.Data()[16+i*8:])
	}
	return regs
}

func (s *Seeder) Close() error { return s.m.Close() }
