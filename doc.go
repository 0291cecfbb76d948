// Copyright (c) 2019 Jacob Hughes. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gcmalloc provides the root-enumeration handoff of a
// conservative garbage collector: a register-spill trampoline which
// forces every callee-saved register onto the stack and hands the
// resulting stack pointer to a scanning routine.  With the spilled
// frame in place, the region from the handoff pointer up to the thread
// stack base holds every value that was live only in a callee-saved
// register at the safe point, alongside the spills already performed by
// compiled code.
//
// The trampoline is assembled at run time for the host architecture
// from a fixed table of callee-saved registers (package abi) and placed
// in executable memory.  Register spilling is inherently
// platform-specific; amd64 (System V) and arm64 (AAPCS64) are
// supported.
//
// The scanner is an external collaborator, supplied per invocation as a
// native entry address.  See Trampoline.Spill for its contract.  The
// scanning algorithm itself, marking, sweeping and thread rendezvous
// are outside this package.
package gcmalloc
