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

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrUnbalancedBrackets is the cause of all errors returned when a program
// has a ']' without a matching '[', or, in strict mode, a '[' that is never
// closed. Use errors.Cause or errors.Is to test for it.
var ErrUnbalancedBrackets = errors.New("unbalanced brackets")

// noJump marks a '[' whose partner has not been seen yet.
const noJump = -1

// match pairs the brackets of code[from:] and records them in jumps, which
// must be at least as long as code. open holds the positions of the '[' left
// open before from; the updated stack is returned.
func match(code []byte, jumps []int, from int, open []int) ([]int, error) {
	for pc := from; pc < len(code); pc++ {
		switch code[pc] {
		case OpJz:
			jumps[pc] = noJump
			open = append(open, pc)
		case OpJnz:
			n := len(open) - 1
			if n < 0 {
				return open, errors.Wrapf(ErrUnbalancedBrackets, "unexpected ']' at position %d", pc)
			}
			to := open[n]
			open = open[:n]
			jumps[to], jumps[pc] = pc, to
		}
	}
	return open, nil
}

func unclosed(open []int) error {
	return errors.Wrapf(ErrUnbalancedBrackets, "unclosed '[' at position %d", open[len(open)-1])
}

// resize returns s with length n, reusing its storage when possible. Slots
// beyond the previous length are not cleared.
func resize(s []int, n int) []int {
	if n <= cap(s) {
		return s[:n]
	}
	return append(s[:cap(s)], make([]int, n-cap(s))...)
}

// Match returns the jump table for the given program: the entry at each
// bracket position is the position of its partner. Unmatched '[' and
// non-bracket positions hold -1.
func Match(code string) ([]int, error) {
	jumps := make([]int, len(code))
	for k := range jumps {
		jumps[k] = noJump
	}
	if _, err := match([]byte(code), jumps, 0, nil); err != nil {
		return nil, err
	}
	return jumps, nil
}

// LoadCode replaces the program with code. The tape is zeroed, and both the
// data pointer and the program counter are reset to 0.
//
// If code has a ']' with no matching '[', the returned error's cause is
// ErrUnbalancedBrackets and the instance is left with an empty program.
func (i *Instance) LoadCode(code string) error {
	clear(i.tape)
	i.ptr, i.pc, i.halted = 0, 0, false
	i.code = append(i.code[:0], code...)
	i.jumps = resize(i.jumps, len(i.code))
	open, err := match(i.code, i.jumps, 0, i.open[:0])
	if err == nil && i.strict && len(open) > 0 {
		err = unclosed(open)
	}
	if err != nil {
		i.code, i.jumps, i.open = i.code[:0], i.jumps[:0], open[:0]
		return err
	}
	i.open = open
	return nil
}

// AppendCode appends code to the current program. The tape, data pointer and
// program counter are left untouched, so that a halted instance resumes
// execution with the new instructions on the next call to NextOutput.
//
// Only the appended code is scanned for brackets, using the '[' left open by
// previous calls. On error, the instance is left exactly as it was before the
// call.
func (i *Instance) AppendCode(code string) error {
	base := len(i.code)
	i.code = append(i.code, code...)
	i.jumps = resize(i.jumps, len(i.code))
	if !strings.ContainsAny(code, "[]") {
		i.halted = false
		return nil
	}
	// work on a copy of the stack: a failed append must not lose the
	// positions it popped.
	open, err := match(i.code, i.jumps, base, append(i.scratch[:0], i.open...))
	if err == nil && i.strict && len(open) > 0 {
		err = unclosed(open)
	}
	if err != nil {
		for _, pc := range i.open {
			i.jumps[pc] = noJump
		}
		i.code, i.jumps, i.scratch = i.code[:base], i.jumps[:base], open[:0]
		return err
	}
	i.open, i.scratch = open, i.open[:0]
	i.halted = false
	return nil
}
