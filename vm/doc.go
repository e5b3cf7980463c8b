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

// Package vm implements an embeddable VM for the eight instruction tape
// language commonly known as brainfuck, minus the input instruction.
//
// Programs operate on a fixed size circular tape of byte cells:
//
//	>	move the data pointer right, wrapping to the first cell
//	<	move the data pointer left, wrapping to the last cell
//	+	increment the current cell (255 + 1 = 0)
//	-	decrement the current cell (0 - 1 = 255)
//	.	output the current cell
//	[	jump past the matching ] if the current cell is 0
//	]	jump back to the matching [ if the current cell is not 0
//	#	comment
//
// Any other byte is a no-op.
//
// The VM is driven incrementally: the caller loads a program with LoadCode,
// optionally extends it with AppendCode, then calls NextOutput repeatedly.
// Each call runs the program until the next output instruction and suspends
// there, so output is pulled one value at a time. AppendCode only scans the
// new code for brackets, which makes it cheap to grow a program in a tight
// loop, for example when searching for a program that produces a given output.
//
// An Instance is not safe for concurrent use.
package vm
