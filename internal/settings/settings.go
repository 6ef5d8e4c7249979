// Copyright 2025 Florian Zenker (flo@znkr.io)
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

// Package settings reads the YAML configuration file of the worddiff command.
package settings

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/VimWei/worddiff/internal/textfile"
)

// Settings is the root of the configuration file.
type Settings struct {
	Compare Compare `yaml:"compare"`
	Input   Input   `yaml:"input"`
	Report  Report  `yaml:"report"`
	Log     Log     `yaml:"log"`
}

type Compare struct {
	PreserveCase bool `yaml:"preserve_case"`
	MaxCells     int  `yaml:"max_cells" validate:"gte=0"`
	Parallelism  int  `yaml:"parallelism" validate:"gte=0"` // 0 means GOMAXPROCS
	Context      int  `yaml:"context" validate:"gte=0,lte=1000"`
}

type Input struct {
	// Encodings are tried in order when decoding input files.
	Encodings []string `yaml:"encodings" validate:"min=1,dive,encoding"`
}

type Report struct {
	Console   bool     `yaml:"console"`
	Color     bool     `yaml:"color"`
	Unified   bool     `yaml:"unified"`
	Formats   []string `yaml:"formats" validate:"dive,oneof=json csv html"`
	OutputDir string   `yaml:"output_dir" validate:"required"`
	Prefix    string   `yaml:"prefix" validate:"required,excludesall=/\\"`
}

type Log struct {
	Level      string `yaml:"level" validate:"loglevel"`
	Format     string `yaml:"format" validate:"oneof=console json"`
	File       string `yaml:"file"`
	MaxSizeMB  int    `yaml:"max_size_mb" validate:"gte=0"`
	MaxBackups int    `yaml:"max_backups" validate:"gte=0"`
}

// Default returns the settings used for everything the configuration file doesn't set.
func Default() Settings {
	return Settings{
		Compare: Compare{
			MaxCells: 1 << 24,
			Context:  3,
		},
		Input: Input{
			Encodings: append([]string(nil), textfile.DefaultEncodings...),
		},
		Report: Report{
			Console:   true,
			Color:     true,
			OutputDir: "data/output",
			Prefix:    "diff_result",
		},
		Log: Log{
			Level:      "info",
			Format:     "console",
			MaxSizeMB:  10,
			MaxBackups: 3,
		},
	}
}

// Load reads the configuration file at path. An empty path yields the default settings.
func Load(path string) (Settings, error) {
	if path == "" {
		s := Default()
		return s, s.Validate()
	}
	f, err := os.Open(path)
	if err != nil {
		return Settings{}, fmt.Errorf("failed to open settings: %w", err)
	}
	defer f.Close()
	s, err := Parse(f)
	if err != nil {
		return Settings{}, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes a configuration file on top of the defaults and validates the result. Unknown
// keys are rejected.
func Parse(r io.Reader) (Settings, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Settings{}, err
	}
	s := Default()
	if len(bytes.TrimSpace(data)) > 0 {
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&s); err != nil {
			return Settings{}, fmt.Errorf("failed to parse settings: %w", err)
		}
	}
	if err := s.Validate(); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// Validate checks all values against their constraints.
func (s *Settings) Validate() error {
	if err := validate.Struct(s); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, len(verrs))
			for i, fe := range verrs {
				msgs[i] = fmt.Sprintf("%s: failed %q validation (value %v)", fe.Namespace(), fe.Tag(), fe.Value())
			}
			return fmt.Errorf("invalid settings: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid settings: %w", err)
	}
	return nil
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("encoding", func(fl validator.FieldLevel) bool {
		return textfile.Supported(fl.Field().String())
	})
	_ = v.RegisterValidation("loglevel", func(fl validator.FieldLevel) bool {
		switch strings.ToLower(fl.Field().String()) {
		case "trace", "debug", "info", "warn", "error", "fatal", "panic", "disabled":
			return true
		default:
			return false
		}
	})
	return v
}
