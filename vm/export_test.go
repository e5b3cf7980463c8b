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

// Test helpers exposing internal state.

func (i *Instance) Ptr() int { return i.ptr }

func (i *Instance) PC() int { return i.pc }

func (i *Instance) CellAt(n int) Cell { return i.tape[n] }

func (i *Instance) TapeLen() int { return len(i.tape) }

func (i *Instance) SetJump(pc, to int) { i.jumps[pc] = to }
