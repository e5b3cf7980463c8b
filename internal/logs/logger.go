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

// Package logs builds the loggers used by the bfvm commands.
package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/pkg/errors"
	slogmulti "github.com/samber/slog-multi"
)

// ParseLevel converts a level name (debug, info, warn or error) to a
// slog.Level.
func ParseLevel(name string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return 0, errors.Errorf("invalid log level %q", name)
	}
	return l, nil
}

// Logger fans records out to a text handler and, optionally, a JSON handler on
// a log file. All handlers share the same level.
type Logger struct {
	*slog.Logger
	Level *slog.LevelVar
	file  io.Closer
}

// New returns a Logger writing text records to w. If fileName is not empty,
// records are also appended to that file in JSON format.
func New(w io.Writer, level slog.Level, fileName string) (*Logger, error) {
	l := &Logger{Level: new(slog.LevelVar)}
	l.Level.Set(level)
	opts := &slog.HandlerOptions{Level: l.Level}
	handlers := []slog.Handler{slog.NewTextHandler(w, opts)}
	if fileName != "" {
		f, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			return nil, errors.Wrap(err, "open log file")
		}
		l.file = f
		handlers = append(handlers, slog.NewJSONHandler(f, opts))
	}
	l.Logger = slog.New(slogmulti.Fanout(handlers...))
	return l, nil
}

// Close closes the log file, if any.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return errors.Wrap(err, "close log file")
}
