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

package vm

import "github.com/pkg/errors"

// badJump panics: the jump table does not match the program. This cannot
// happen with code added through LoadCode and AppendCode.
func (i *Instance) badJump(pc int) {
	panic(errors.Errorf("corrupted jump table @pc=%d/%d: %q -> %d", pc, len(i.code), i.code[pc], i.jumps[pc]))
}

// NextOutput resumes execution of the program and runs until the next output
// instruction, returning the value of the current cell and true. The program
// counter is left on the instruction following the output, so the next call
// picks up from there.
//
// If the program counter reaches the end of the program, NextOutput returns
// false and the instance is halted. It stays halted until code is loaded or
// appended.
//
// A '[' whose ']' has not been appended yet is executed normally when the
// current cell is not zero. If the cell is zero, NextOutput returns false
// with the program counter left on that '[', and the instance is halted until
// more code is appended.
//
// There is no step limit: a loop that never outputs anything will never
// return.
func (i *Instance) NextOutput() (Cell, bool) {
	var (
		code  = i.code
		jumps = i.jumps
		tape  = i.tape
		pc    = i.pc
		ptr   = i.ptr
	)
	i.insCount = 0
	for pc < len(code) {
		switch code[pc] {
		case OpRight:
			ptr++
			if ptr == len(tape) {
				ptr = 0
			}
		case OpLeft:
			if ptr == 0 {
				ptr = len(tape)
			}
			ptr--
		case OpInc:
			tape[ptr]++
		case OpDec:
			tape[ptr]--
		case OpOut:
			i.insCount++
			i.pc, i.ptr = pc+1, ptr
			return tape[ptr], true
		case OpJz:
			if tape[ptr] == 0 {
				to := jumps[pc]
				if to == noJump {
					i.pc, i.ptr, i.halted = pc, ptr, true
					return 0, false
				}
				if to <= pc || to >= len(code) || code[to] != OpJnz {
					i.pc, i.ptr = pc, ptr
					i.badJump(pc)
				}
				pc = to
			}
		case OpJnz:
			if tape[ptr] != 0 {
				to := jumps[pc]
				if to < 0 || to >= pc || code[to] != OpJz {
					i.pc, i.ptr = pc, ptr
					i.badJump(pc)
				}
				pc = to
			}
		}
		pc++
		i.insCount++
	}
	i.pc, i.ptr, i.halted = pc, ptr, true
	return 0, false
}
