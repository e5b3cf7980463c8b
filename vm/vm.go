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

// Cell is the raw type stored in a tape location.
type Cell uint8

// DefaultTapeSize is the tape length used when no TapeSize option is given.
const DefaultTapeSize = 200

// Instance represents a VM instance.
type Instance struct {
	pc       int    // Program Counter (aka. Instruction Pointer)
	ptr      int    // data pointer
	tape     []Cell // circular
	code     []byte
	jumps    []int // jump table, indexed by program position
	open     []int // '[' positions still waiting for their ']'
	scratch  []int
	halted   bool
	strict   bool
	insCount int64
}

// Option interface
type Option func(*Instance) error

// TapeSize sets the tape length in cells. The tape is reallocated, zeroed and
// the data pointer reset to the first cell. The default is DefaultTapeSize.
func TapeSize(size int) Option {
	return func(i *Instance) error {
		if size <= 0 {
			return errors.Errorf("invalid tape size %d", size)
		}
		i.tape = make([]Cell, size)
		i.ptr = 0
		return nil
	}
}

// StrictBrackets controls how programs with unmatched '[' are handled.
//
// In strict mode, LoadCode and AppendCode fail with ErrUnbalancedBrackets if
// any '[' is left open once the new code has been scanned. Otherwise (the
// default), open loops are accepted and may be closed by a later AppendCode.
// See NextOutput for how execution treats them in the meantime.
//
// Switching to strict mode does not revalidate the current program.
func StrictBrackets(strict bool) Option {
	return func(i *Instance) error { i.strict = strict; return nil }
}

// SetOptions sets the provided options.
func (i *Instance) SetOptions(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(i); err != nil {
			return err
		}
	}
	return nil
}

// New creates a new VM instance with a zeroed tape, the data pointer on the
// first cell and an empty program.
//
// Options will be set by calling SetOptions.
func New(opts ...Option) (*Instance, error) {
	i := new(Instance)
	if err := i.SetOptions(opts...); err != nil {
		return nil, err
	}
	if i.tape == nil {
		i.tape = make([]Cell, DefaultTapeSize)
	}
	return i, nil
}

// Len returns the program length in bytes.
func (i *Instance) Len() int {
	return len(i.code)
}

// Pending returns the number of '[' in the program that have not been closed
// yet.
func (i *Instance) Pending() int {
	return len(i.open)
}

// Halted returns true if the last call to NextOutput could not produce a
// value and no code has been loaded or appended since.
func (i *Instance) Halted() bool {
	return i.halted
}

// InstructionCount returns the number of instructions executed by the last
// call to NextOutput.
func (i *Instance) InstructionCount() int64 {
	return i.insCount
}
