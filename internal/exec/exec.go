// Copyright (c) 2019 Jacob Hughes. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package exec places generated code in executable memory.
package exec

import (
	"unsafe"

	"golang.org/x/sys/unix"
)

// Mapping is a single anonymous mapping holding an executable text
// region followed by a writable data region, each page-aligned.  The
// fixed distance between the two lets the text address the data with
// program-counter-relative instructions.
type Mapping struct {
	mem  []byte
	text []byte
	data []byte
}

// NewMapping allocates a read-write mapping with room for textSize
// bytes of text and dataSize bytes of data.  Seal makes the text
// executable after it has been filled in.
func NewMapping(textSize, dataSize int) (*Mapping, error) {
	textLen := alignSize(textSize)
	dataLen := alignSize(dataSize)

	mem, err := unix.Mmap(-1, 0, textLen+dataLen, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_PRIVATE|unix.MAP_ANON)
	if err != nil {
		return nil, err
	}

	return &Mapping{
		mem:  mem,
		text: mem[:textLen:textLen],
		data: mem[textLen:],
	}, nil
}

func (m *Mapping) Text() []byte { return m.text }
func (m *Mapping) Data() []byte { return m.data }

func (m *Mapping) TextAddr() uintptr { return uintptr(unsafe.Pointer(&m.text[0])) }
func (m *Mapping) DataAddr() uintptr { return uintptr(unsafe.Pointer(&m.data[0])) }

// Seal write-protects the text region and makes it executable.
func (m *Mapping) Seal() error {
	return unix.Mprotect(m.text, unix.PROT_READ|unix.PROT_EXEC)
}

func (m *Mapping) Close() error {
	mem := m.mem
	m.mem = nil
	m.text = nil
	m.data = nil
	if mem == nil {
		return nil
	}
	return unix.Munmap(mem)
}

func alignSize(size int) int {
	page := unix.Getpagesize()
	return (size + page - 1) &^ (page - 1)
}
