// Copyright (c) 2019 Jacob Hughes. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package buffer

import (
	"encoding/binary"
)

// Fixed is a fixed-capacity implementation of TextBuffer.  Extension
// beyond the underlying slice's capacity panics with ErrStaticSize.
type Fixed struct {
	b []byte
}

// NewFixed buffer.  The slice must be empty.
func NewFixed(b []byte) *Fixed  { return &Fixed{b} }
func (f *Fixed) Bytes() []byte  { return f.b }
func (f *Fixed) PutByte(b byte) { f.Extend(1)[0] = b }

func (f *Fixed) PutUint32(i uint32) {
	binary.LittleEndian.PutUint32(f.Extend(4), i)
}

func (f *Fixed) Extend(n int) []byte {
	b := f.b
	offset := len(b)
	if offset+n > cap(b) {
		panic(ErrStaticSize)
	}
	b = b[:offset+n]
	f.b = b
	return b[offset:]
}
