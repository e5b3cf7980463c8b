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

// Package ngi holds helpers shared by the bfvm packages and commands.
package ngi

import (
	"io"

	"github.com/pkg/errors"
)

// ErrWriter counts the bytes written to an io.Writer and remembers the first
// write error. Once a write has failed, nothing more is written and every
// call returns that error.
//
// Listings and program output go through an ErrWriter so that callers can
// issue a series of writes and check Err once.
type ErrWriter struct {
	w   io.Writer
	N   int64 // bytes written so far
	Err error
}

// NewErrWriter returns a new ErrWriter.
func NewErrWriter(w io.Writer) *ErrWriter {
	return &ErrWriter{w: w}
}

func (w *ErrWriter) Write(p []byte) (int, error) {
	if w.Err != nil {
		return 0, w.Err
	}
	n, err := w.w.Write(p)
	w.N += int64(n)
	if err == nil && n < len(p) {
		err = io.ErrShortWrite
	}
	if err != nil {
		w.Err = errors.Wrap(err, "write failed")
	}
	return n, w.Err
}

// WriteString implements io.StringWriter.
func (w *ErrWriter) WriteString(s string) (int, error) {
	return w.Write([]byte(s))
}

// WriteByte implements io.ByteWriter.
func (w *ErrWriter) WriteByte(c byte) error {
	_, err := w.Write([]byte{c})
	return err
}
