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

// The bfrun command line tool runs programs with the package
// github.com/db47h/bfvm/vm and prints their output.
//
// Usage:
//
//	bfrun [flags] [filename ...]
//
//	-config filename
//		  load configuration from TOML file filename
//	-debug
//		  print errors with stack traces
//	-e code
//		  program code, loaded before any file
//	-i
//		  interactive mode
//	-list
//		  print a program listing instead of running it
//	-log filename
//		  also log to filename in JSON format
//	-log-level level
//		  log level: debug, info, warn or error (default info)
//	-max n
//		  stop after n output bytes (0 means no limit)
//	-strict
//		  reject programs with unclosed loops
//	-tape n
//		  tape size in cells (default 200)
//	-with filename
//		  append program filename (can be specified multiple times)
//
// Program sources are, in order: the -e code, the -with files, then the
// files given as arguments. The first source replaces the VM program and
// every following one is appended to it, so a loop may be opened in one
// source and closed in another (unless -strict is set). If no source is
// given, the program is read from stdin, or bfrun starts in interactive mode
// if stdin is a terminal.
//
// -i: in interactive mode, each input line is appended to the program and
// the output it produces is printed right away. Lines starting with a colon
// are commands:
//
//	:load code	replace the program with code
//	:reset		clear the program and the tape
//	:list		print the program listing
//	:quit		exit (as does CTRL-D)
//
// -config: the configuration file may set any of the following. Flags given
// on the command line take precedence.
//
//	[vm]
//	tape_size = 200
//	strict = false
//
//	[output]
//	max_bytes = 0
//
//	[log]
//	level = "info"
//	file = ""
//
// -max: bounds the output only. A program stuck in a loop that never outputs
// anything will run forever.
package main
