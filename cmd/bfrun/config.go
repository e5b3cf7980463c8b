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
	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Config holds the settings read from a configuration file.
type Config struct {
	VM     VMConfig     `toml:"vm"`
	Output OutputConfig `toml:"output"`
	Log    LogConfig    `toml:"log"`
}

// VMConfig configures the VM instance.
type VMConfig struct {
	TapeSize int  `toml:"tape_size"`
	Strict   bool `toml:"strict"`
}

// OutputConfig configures program output.
type OutputConfig struct {
	MaxBytes int `toml:"max_bytes"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level string `toml:"level"`
	File  string `toml:"file"`
}

func defaultConfig() *Config {
	return &Config{
		VM:  VMConfig{TapeSize: 200},
		Log: LogConfig{Level: "info"},
	}
}

// loadConfig reads the configuration file fileName over the defaults.
// Unknown keys are an error.
func loadConfig(fileName string) (*Config, error) {
	cfg := defaultConfig()
	md, err := toml.DecodeFile(fileName, cfg)
	if err != nil {
		return nil, errors.Wrap(err, "load configuration")
	}
	if und := md.Undecoded(); len(und) > 0 {
		return nil, errors.Errorf("%s: unknown configuration key %q", fileName, und[0].String())
	}
	if cfg.VM.TapeSize <= 0 {
		return nil, errors.Errorf("%s: invalid tape_size %d", fileName, cfg.VM.TapeSize)
	}
	if cfg.Output.MaxBytes < 0 {
		return nil, errors.Errorf("%s: invalid max_bytes %d", fileName, cfg.Output.MaxBytes)
	}
	return cfg, nil
}
