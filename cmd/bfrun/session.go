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

package main

import (
	"bufio"
	"strings"

	"github.com/db47h/bfvm/disasm"
	"github.com/db47h/bfvm/internal/logs"
	"github.com/db47h/bfvm/vm"
	"github.com/pkg/errors"
)

var errUnknownCommand = errors.New("unknown command")

// session feeds code to a VM instance and copies its output.
type session struct {
	vm    *vm.Instance
	out   *bufio.Writer
	log   *logs.Logger
	code  strings.Builder // current program, for listings
	max   int             // output limit, 0 for none
	count int             // bytes output so far
}

func (s *session) limited() bool {
	return s.max > 0 && s.count >= s.max
}

func (s *session) load(name, code string) error {
	if err := s.vm.LoadCode(code); err != nil {
		s.code.Reset()
		return errors.Wrap(err, name)
	}
	s.code.Reset()
	s.code.WriteString(code)
	s.log.Debug("code loaded", "source", name, "len", len(code), "pending", s.vm.Pending())
	return nil
}

func (s *session) append(name, code string) error {
	if err := s.vm.AppendCode(code); err != nil {
		return errors.Wrap(err, name)
	}
	s.code.WriteString(code)
	s.log.Debug("code appended", "source", name, "len", len(code), "pending", s.vm.Pending())
	return nil
}

// drain writes the program output until the VM halts or the output limit is
// reached, and returns the number of bytes written.
func (s *session) drain() (int, error) {
	n := 0
	for !s.limited() {
		v, ok := s.vm.NextOutput()
		if !ok {
			s.log.Debug("halted", "outputs", n, "pending", s.vm.Pending())
			break
		}
		if err := s.out.WriteByte(byte(v)); err != nil {
			return n, errors.Wrap(err, "write failed")
		}
		n++
		s.count++
	}
	if s.limited() {
		s.log.Info("output limit reached", "max", s.max)
	}
	return n, errors.Wrap(s.out.Flush(), "write failed")
}

// exec runs one line of interactive input. It returns true if the session
// should end.
func (s *session) exec(line string) (quit bool, err error) {
	cmd := strings.TrimSpace(line)
	switch {
	case cmd == ":quit":
		return true, nil
	case cmd == ":reset":
		err = s.load(":reset", "")
	case cmd == ":list":
		return false, s.list()
	case strings.HasPrefix(cmd, ":load"):
		err = s.load(":load", strings.TrimSpace(cmd[len(":load"):]))
	case strings.HasPrefix(cmd, ":"):
		return false, errors.Wrap(errUnknownCommand, cmd)
	default:
		err = s.append("input", line)
	}
	if err != nil {
		return false, err
	}
	n, err := s.drain()
	if err == nil && n > 0 {
		// keep the prompt on its own line
		err = s.out.WriteByte('\n')
		if err == nil {
			err = s.out.Flush()
		}
	}
	return false, err
}

func (s *session) list() error {
	if err := disasm.DisassembleAll(s.code.String(), s.out); err != nil {
		return err
	}
	return errors.Wrap(s.out.Flush(), "write failed")
}
