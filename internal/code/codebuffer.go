// Copyright (c) 2019 Jacob Hughes. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package code carries assembly state across emitter calls.
package code

// Sink receives emitted machine code.  The buffer package provides
// implementations.
type Sink interface {
	Bytes() []byte
	Extend(n int) []byte
	PutByte(byte)
	PutUint32(uint32) // Little-endian byte order.
}

// Buf combines the sink with the emission address.  Addr is the offset
// of the next instruction from the start of the text; the
// program-counter-relative emitters read it to compute displacements,
// so all emission must go through the Buf methods which keep it
// current.
type Buf struct {
	Sink
	Addr int32
}

func (text *Buf) Extend(n int) (b []byte) {
	b = text.Sink.Extend(n)
	text.Addr += int32(n)
	return
}

func (text *Buf) PutByte(x byte) {
	text.Sink.PutByte(x)
	text.Addr++
}

func (text *Buf) PutUint32(x uint32) {
	text.Sink.PutUint32(x)
	text.Addr += 4
}
