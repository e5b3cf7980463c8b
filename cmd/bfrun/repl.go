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
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/db47h/bfvm/vm"
	"github.com/peterh/liner"
	"github.com/pkg/errors"
)

const (
	historyFile = ".bfrun_history"
	promptMain  = "bf> "
	promptCont  = "... " // inside an unclosed loop
)

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, historyFile)
}

// repl runs an interactive session on the terminal until EOF or :quit.
// Errors in the input are reported on stderr and do not end the session.
func repl(s *session, stderr io.Writer) error {
	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	hist := historyPath()
	if hist != "" {
		if f, err := os.Open(hist); err == nil {
			ln.ReadHistory(f)
			f.Close()
		}
		defer func() {
			if f, err := os.Create(hist); err == nil {
				ln.WriteHistory(f)
				f.Close()
			}
		}()
	}

	for {
		prompt := promptMain
		if s.vm.Pending() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		switch err {
		case nil:
		case liner.ErrPromptAborted:
			continue
		case io.EOF:
			return nil
		default:
			return errors.Wrap(err, "read failed")
		}
		if line != "" {
			ln.AppendHistory(line)
		}
		quit, err := s.exec(line)
		if err != nil {
			switch errors.Cause(err) {
			case vm.ErrUnbalancedBrackets, errUnknownCommand:
				fmt.Fprintf(stderr, "%v\n", err)
				s.log.Debug("input rejected", "error", err)
			default:
				return err
			}
		}
		if quit {
			return nil
		}
	}
}
