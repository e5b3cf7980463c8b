// This file is part of bfvm - https://github.com/db47h/bfvm
//
// Copyright 2016 Denis Bernard <db047h@gmail.com>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package disasm writes human readable listings of programs for the
// github.com/db47h/bfvm/vm package.
//
// Each line of a listing holds the position of an instruction in the program
// text followed by its mnemonic:
//
//	asm	op	argument
//	---	--	-----------------------------------------------------
//	right	>	repeat count if > 1
//	left	<	repeat count if > 1
//	inc	+	repeat count if > 1
//	dec	-	repeat count if > 1
//	out	.
//	jz	[	position of the matching ], ??? if not appended yet
//	jnz	]	position of the matching [
//	#	#
//
// Other bytes are no-ops and do not appear in listings.
package disasm

import (
	"fmt"
	"io"
	"strconv"

	"github.com/db47h/bfvm/internal/ngi"
	"github.com/db47h/bfvm/vm"
)

// Disassemble writes a disassembly of the instruction at position pc in code
// to the specified io.Writer and returns the position of the next
// instruction and any write error. Runs of identical >, <, + and -
// instructions are written as a single instruction with a repeat count.
//
// jumps is the jump table returned by vm.Match. If nil, bracket arguments are
// written as ???.
func Disassemble(code string, jumps []int, pc int, w io.Writer) (next int, err error) {
	ew, _ := w.(*ngi.ErrWriter)
	if ew == nil {
		ew = ngi.NewErrWriter(w)
	}

	op := code[pc]
	name := vm.OpName(op)
	if name == "" {
		ew.WriteString("nop")
		return pc + 1, ew.Err
	}
	ew.WriteString(name)
	next = pc + 1
	switch op {
	case vm.OpRight, vm.OpLeft, vm.OpInc, vm.OpDec:
		for next < len(code) && code[next] == op {
			next++
		}
		if n := next - pc; n > 1 {
			ew.WriteByte(' ')
			ew.WriteString(strconv.Itoa(n))
		}
	case vm.OpJz, vm.OpJnz:
		ew.WriteByte(' ')
		if pc < len(jumps) && jumps[pc] >= 0 {
			ew.WriteString(strconv.Itoa(jumps[pc]))
		} else {
			ew.WriteString("???")
		}
	}
	return next, ew.Err
}

// DisassembleAll writes a disassembly of the whole program to the specified
// io.Writer, indenting loop bodies. It returns an error if code has
// unbalanced brackets (unclosed loops are accepted) or on write errors.
func DisassembleAll(code string, w io.Writer) error {
	jumps, err := vm.Match(code)
	if err != nil {
		return err
	}
	ew := ngi.NewErrWriter(w)
	depth := 0
	for pc := 0; pc < len(code); {
		op := code[pc]
		if vm.OpName(op) == "" {
			pc++
			continue
		}
		if op == vm.OpJnz {
			depth--
		}
		fmt.Fprintf(ew, "% 10d\t", pc)
		for k := 0; k < depth; k++ {
			ew.WriteString("  ")
		}
		pc, _ = Disassemble(code, jumps, pc, ew)
		if op == vm.OpJz {
			depth++
		}
		ew.WriteByte('\n')
		if ew.Err != nil {
			return ew.Err
		}
	}
	return nil
}
