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

package disasm_test

import (
	"bytes"
	"strconv"
	"testing"

	"github.com/db47h/bfvm/disasm"
	"github.com/db47h/bfvm/vm"
	"github.com/pkg/errors"
)

func TestDisassemble(t *testing.T) {
	for _, test := range []struct {
		code  string
		jumps []int
		pc    int
		exp   string
		next  int
	}{
		{"++.", nil, 0, "inc 2", 2},
		{"++.", nil, 1, "inc", 2},
		{"++.", nil, 2, "out", 3},
		{">>>><", nil, 0, "right 4", 4},
		{"<<", nil, 0, "left 2", 2},
		{"-+-", nil, 0, "dec", 1},
		{"[]", nil, 0, "jz ???", 1},
		{"[]", []int{1, 0}, 0, "jz 1", 1},
		{"[]", []int{1, 0}, 1, "jnz 0", 2},
		{"#", nil, 0, "#", 1},
		{"x+", nil, 0, "nop", 1},
	} {
		var b bytes.Buffer
		next, err := disasm.Disassemble(test.code, test.jumps, test.pc, &b)
		if err != nil {
			t.Fatal(err)
		}
		if b.String() != test.exp || next != test.next {
			t.Errorf("%q @%d: expected %q, %d, got %q, %d", test.code, test.pc, test.exp, test.next, b.String(), next)
		}
	}
}

func TestDisassembleAll(t *testing.T) {
	for _, test := range []struct {
		code string
		exp  string
	}{
		{
			"+++[>++<-]>.#x",
			"         0\tinc 3\n" +
				"         3\tjz 9\n" +
				"         4\t  right\n" +
				"         5\t  inc 2\n" +
				"         7\t  left\n" +
				"         8\t  dec\n" +
				"         9\tjnz 3\n" +
				"        10\tright\n" +
				"        11\tout\n" +
				"        12\t#\n",
		},
		{
			"[+ [",
			"         0\tjz ???\n" +
				"         1\t  inc\n" +
				"         3\t  jz ???\n",
		},
		{"hello world", ""},
	} {
		var b bytes.Buffer
		if err := disasm.DisassembleAll(test.code, &b); err != nil {
			t.Fatal(err)
		}
		if s := b.String(); s != test.exp {
			t.Errorf("%q: Expected:\n%s\ngot: %s", test.code, strconv.Quote(test.exp), strconv.Quote(s))
		}
	}
}

type failWriter struct{ n int }

func (w *failWriter) Write(p []byte) (int, error) {
	if w.n == 0 {
		return 0, errors.New("disk full")
	}
	w.n--
	return len(p), nil
}

func TestDisassembleAll_errors(t *testing.T) {
	if err := disasm.DisassembleAll("+]", new(bytes.Buffer)); errors.Cause(err) != vm.ErrUnbalancedBrackets {
		t.Errorf("Expected ErrUnbalancedBrackets, got %v", err)
	}
	if err := disasm.DisassembleAll("+-+-", &failWriter{3}); err == nil {
		t.Error("Expected write error")
	}
}
