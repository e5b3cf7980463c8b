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
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/db47h/bfvm/internal/logs"
	"github.com/db47h/bfvm/internal/ngi"
	"github.com/db47h/bfvm/vm"
	"github.com/pkg/errors"
)

type fileList []string

func (f *fileList) String() string     { return "" }
func (f *fileList) Set(s string) error { *f = append(*f, s); return nil }
func (f *fileList) Get() interface{}   { return *f }

type source struct {
	name string
	code string
}

func readSources(inline string, files []string) ([]source, error) {
	var srcs []source
	if inline != "" {
		srcs = append(srcs, source{"-e", inline})
	}
	for _, fn := range files {
		b, err := os.ReadFile(fn)
		if err != nil {
			return nil, errors.Wrap(err, "read program")
		}
		srcs = append(srcs, source{fn, string(b)})
	}
	return srcs, nil
}

func isStdinTerminal(stdin io.Reader) bool {
	f, ok := stdin.(*os.File)
	return ok && isTerminal(f.Fd())
}

func atExit(stderr io.Writer, err error, debug bool) int {
	if err == nil {
		return 0
	}
	if !debug {
		fmt.Fprintf(stderr, "%v\n", err)
	} else {
		fmt.Fprintf(stderr, "%+v\n", err)
	}
	return 1
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	var withFiles fileList

	fs := flag.NewFlagSet("bfrun", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var (
		cfgFile     = fs.String("config", "", "load configuration from TOML file `filename`")
		tapeSize    = fs.Int("tape", vm.DefaultTapeSize, "tape size in cells")
		strict      = fs.Bool("strict", false, "reject programs with unclosed loops")
		inline      = fs.String("e", "", "program `code`, loaded before any file")
		maxOut      = fs.Int("max", 0, "stop after `n` output bytes (0 means no limit)")
		list        = fs.Bool("list", false, "print a program listing instead of running it")
		interactive = fs.Bool("i", false, "interactive mode")
		logLevel    = fs.String("log-level", "info", "log `level`: debug, info, warn or error")
		logFile     = fs.String("log", "", "also log to `filename` in JSON format")
		debug       = fs.Bool("debug", false, "print errors with stack traces")
	)
	fs.Var(&withFiles, "with", "append program `filename` (can be specified multiple times)")
	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return 0
		}
		return 2
	}

	var err error
	cfg := defaultConfig()
	if *cfgFile != "" {
		if cfg, err = loadConfig(*cfgFile); err != nil {
			return atExit(stderr, err, *debug)
		}
	}
	// flags set on the command line override the configuration file
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "tape":
			cfg.VM.TapeSize = *tapeSize
		case "strict":
			cfg.VM.Strict = *strict
		case "max":
			cfg.Output.MaxBytes = *maxOut
		case "log-level":
			cfg.Log.Level = *logLevel
		case "log":
			cfg.Log.File = *logFile
		}
	})

	level, err := logs.ParseLevel(cfg.Log.Level)
	if err != nil {
		return atExit(stderr, err, *debug)
	}
	log, err := logs.New(stderr, level, cfg.Log.File)
	if err != nil {
		return atExit(stderr, err, *debug)
	}
	defer log.Close()

	ew := ngi.NewErrWriter(stdout)
	out := bufio.NewWriter(ew)
	err = execute(cfg, log, out, stdin, stderr, *inline, append(withFiles, fs.Args()...), *list, *interactive)
	if err != nil {
		log.Debug("exit", "error", err)
	} else {
		log.Debug("exit", "bytes", ew.N)
	}
	return atExit(stderr, err, *debug)
}

func execute(cfg *Config, log *logs.Logger, out *bufio.Writer, stdin io.Reader, stderr io.Writer, inline string, files []string, list, interactive bool) error {
	if cfg.Output.MaxBytes < 0 {
		return errors.Errorf("invalid output limit %d", cfg.Output.MaxBytes)
	}
	i, err := vm.New(vm.TapeSize(cfg.VM.TapeSize), vm.StrictBrackets(cfg.VM.Strict))
	if err != nil {
		return err
	}
	s := &session{vm: i, out: out, log: log, max: cfg.Output.MaxBytes}

	srcs, err := readSources(inline, files)
	if err != nil {
		return err
	}
	if len(srcs) == 0 && !interactive {
		if isStdinTerminal(stdin) {
			interactive = true
		} else {
			b, err := io.ReadAll(stdin)
			if err != nil {
				return errors.Wrap(err, "read program")
			}
			srcs = append(srcs, source{"stdin", string(b)})
		}
	}
	for n, src := range srcs {
		if n == 0 {
			err = s.load(src.name, src.code)
		} else {
			err = s.append(src.name, src.code)
		}
		if err != nil {
			return err
		}
	}

	switch {
	case list:
		return s.list()
	case interactive:
		if _, err = s.drain(); err != nil {
			return err
		}
		return repl(s, stderr)
	}
	if _, err = s.drain(); err != nil {
		return err
	}
	if i.Halted() && i.Pending() > 0 {
		log.Warn("program ends inside an unclosed loop", "pending", i.Pending())
	}
	return nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
