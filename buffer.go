// Copyright (c) 2019 Jacob Hughes. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package gcmalloc

// TextBuffer is a buffer for trampoline machine code.  Implementations
// are available in the buffer package.
type TextBuffer interface {
	Bytes() []byte
	Extend(n int) []byte
	PutByte(byte)
	PutUint32(uint32) // Little-endian byte order.
}
