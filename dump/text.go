// Copyright (c) 2019 Jacob Hughes. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build cgo
// +build cgo

// Package dump disassembles trampoline text.
package dump

import (
	"fmt"
	"io"

	"github.com/bnagy/gapstone"
)

// Text writes a disassembly listing of the trampoline text.  Registers
// with a fixed role are renamed to their role.  textAddr may be zero
// for a relative listing.
func Text(w io.Writer, text []byte, textAddr uintptr) (err error) {
	engine, err := gapstone.New(csArch, csMode)
	if err != nil {
		return
	}
	defer engine.Close()

	if csSyntax != 0 {
		err = engine.SetOption(gapstone.CS_OPT_SYNTAX, csSyntax)
		if err != nil {
			return
		}
	}

	insns, err := engine.Disasm(text, uint64(textAddr), 0)
	if err != nil {
		return
	}

	for _, insn := range insns {
		_, err = fmt.Fprintf(w, "%8x\t%s\t%s\n", insn.Address, insn.Mnemonic, rewriteOperands(insn.OpStr))
		if err != nil {
			return
		}
	}

	return
}
