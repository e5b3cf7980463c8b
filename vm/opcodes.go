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

// Instruction set. Any other byte in a program is a no-op.
const (
	OpRight   = '>'
	OpLeft    = '<'
	OpInc     = '+'
	OpDec     = '-'
	OpOut     = '.'
	OpJz      = '['
	OpJnz     = ']'
	OpComment = '#'
)

var opcodes = [256]string{
	OpRight:   "right",
	OpLeft:    "left",
	OpInc:     "inc",
	OpDec:     "dec",
	OpOut:     "out",
	OpJz:      "jz",
	OpJnz:     "jnz",
	OpComment: "#",
}

// IsInstruction returns true if b is one of the seven executable
// instructions. The comment marker is not an instruction.
func IsInstruction(b byte) bool {
	return b != OpComment && opcodes[b] != ""
}

// OpName returns the mnemonic for b, or an empty string if b is a no-op.
func OpName(b byte) string {
	return opcodes[b]
}
