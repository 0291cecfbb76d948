// Copyright (c) 2019 Jacob Hughes. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gcmalloc

import (
	"unsafe"

	"golang.org/x/xerrors"

	"github.com/jacob-hughes/gcmalloc/buffer"
	"github.com/jacob-hughes/gcmalloc/internal/code"
	"github.com/jacob-hughes/gcmalloc/internal/exec"
)

// maxTextSize bounds the assembled trampoline on any supported
// architecture.
const maxTextSize = 128

// Config for trampoline building.  The zero value is the default
// configuration.
type Config struct {
	// Text is the working buffer for assembly.  If nil, a suitable
	// buffer is allocated.  The buffer contents reflect the final text
	// after Build returns.
	Text TextBuffer
}

// Trampoline is an executable register-spill routine bound to a
// per-instance argument block.
//
// An instance is meant to be invoked by a single thread of the
// collected program: the argument block makes concurrent Spill calls on
// the same instance race.  In a multi-threaded program each thread
// reaching a safe point invokes its own trampoline on its own stack.
type Trampoline struct {
	m     *exec.Mapping
	text  []byte
	enter func()
}

// Build assembles the spill trampoline for the host architecture and
// places it in executable memory.
func Build(config *Config) (*Trampoline, error) {
	var b TextBuffer
	if config != nil && config.Text != nil {
		b = config.Text
	} else {
		b = buffer.NewDynamicHint(nil, maxTextSize)
	}

	m, err := exec.NewMapping(maxTextSize, argsSize)
	if err != nil {
		return nil, xerrors.Errorf("trampoline mapping: %w", err)
	}

	text := &code.Buf{Sink: b}
	assembleSpill(text, int32(m.DataAddr()-m.TextAddr()))

	if len(b.Bytes()) > len(m.Text()) {
		m.Close()
		return nil, xerrors.New("trampoline text exceeds mapping")
	}
	copy(m.Text(), b.Bytes())

	if err := m.Seal(); err != nil {
		m.Close()
		return nil, xerrors.Errorf("trampoline text protection: %w", err)
	}

	return &Trampoline{
		m:     m,
		text:  m.Text()[:len(b.Bytes())],
		enter: exec.Entry(m.TextAddr()),
	}, nil
}

// Spill pushes the callee-saved register set onto the calling thread's
// stack and calls the scanner with (context, handoff pointer) in the
// platform convention's first two argument registers.  The handoff
// pointer is the lowest address of the spilled frame; abi.FrameSlots
// gives the frame layout above it.
//
// The scanner must be a native routine following the platform C calling
// convention.  It must return normally, preserve the convention's
// callee-saved registers, and stay shallow on the calling stack (a
// scanner needing depth switches to its own stack; its worklist lives
// behind the context word).  There is no error path: an invalid scanner
// address or a stack overflow during the spill is undefined behavior,
// detected only by external tooling.
//
// The trampoline preserves the caller's 16-byte stack alignment class
// but does not establish one: entered from Go, where call sites keep
// only word alignment, the scanner may run in either class.  A scanner
// compiled to assume an aligned entry (e.g. C code with aligned vector
// spills) must not be entered this way.
func (t *Trampoline) Spill(scanner uintptr, context unsafe.Pointer) {
	t.arm(scanner, context)
	t.enter()
}

func (t *Trampoline) arm(scanner uintptr, context unsafe.Pointer) {
	args := t.m.Data()
	*(*uintptr)(unsafe.Pointer(&args[argScanner])) = scanner
	*(*uintptr)(unsafe.Pointer(&args[argContext])) = uintptr(context)
}

// Text returns a read-only view of the assembled routine, e.g. for
// disassembly with the dump package.
func (t *Trampoline) Text() []byte {
	return t.text
}

// Close releases the executable mapping.  The trampoline must not be
// invoked afterwards.
func (t *Trampoline) Close() error {
	return t.m.Close()
}
