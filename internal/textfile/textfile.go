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

// Package textfile loads text files of unknown encoding for comparison.
package textfile

import (
	"bytes"
	"compress/gzip"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ulikunitz/xz"
	"github.com/zeebo/blake3"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/simplifiedchinese"
)

var (
	ErrEmptyPath   = errors.New("empty path")
	ErrNotRegular  = errors.New("not a regular file")
	ErrUndecodable = errors.New("no encoding matches")
)

// Encoding names accepted by [Load].
const (
	UTF8    = "utf-8"
	GBK     = "gbk"
	GB18030 = "gb18030"
	Latin1  = "iso-8859-1"
)

// DefaultEncodings is the order in which encodings are tried if [Load] is called without any.
var DefaultEncodings = []string{UTF8, GBK, GB18030, Latin1}

var decoders = map[string]encoding.Encoding{
	GBK:     simplifiedchinese.GBK,
	GB18030: simplifiedchinese.GB18030,
	Latin1:  charmap.ISO8859_1,
}

// Supported reports whether name is an encoding [Load] can decode.
func Supported(name string) bool {
	_, ok := decoders[name]
	return ok || name == UTF8
}

// File is a decoded text file.
type File struct {
	Path     string
	Name     string // Base name of Path
	Size     int64  // Size on disk
	Encoding string // Encoding the contents were decoded from
	Digest   string // Hex encoded BLAKE3 digest of the contents on disk
	Text     string
}

// Load reads the file at path and decodes it with the first of the given encodings that can
// represent its contents. Files ending in ".gz" or ".xz" are decompressed first.
func Load(path string, encodings ...string) (*File, error) {
	if path == "" {
		return nil, ErrEmptyPath
	}
	if len(encodings) == 0 {
		encodings = DefaultEncodings
	}

	fi, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !fi.Mode().IsRegular() {
		return nil, fmt.Errorf("%s: %w", path, ErrNotRegular)
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	sum := blake3.Sum256(raw)

	data, err := decompress(path, raw)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to decompress: %w", path, err)
	}

	text, enc, err := decode(data, encodings)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return &File{
		Path:     path,
		Name:     filepath.Base(path),
		Size:     fi.Size(),
		Encoding: enc,
		Digest:   hex.EncodeToString(sum[:]),
		Text:     text,
	}, nil
}

func decompress(path string, data []byte) ([]byte, error) {
	var r io.Reader
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		defer zr.Close()
		r = zr
	case ".xz":
		xr, err := xz.NewReader(bytes.NewReader(data))
		if err != nil {
			return nil, err
		}
		r = xr
	default:
		return data, nil
	}
	return io.ReadAll(r)
}

// decode tries the encodings in order. The decoders of x/text substitute invalid input with
// U+FFFD instead of failing, a decoding is rejected if it contains the replacement character and
// the input is not valid UTF-8 on its own.
func decode(data []byte, encodings []string) (text, enc string, err error) {
	for _, name := range encodings {
		if name == UTF8 {
			if utf8.Valid(data) {
				return string(data), name, nil
			}
			continue
		}
		e, ok := decoders[name]
		if !ok {
			return "", "", fmt.Errorf("unsupported encoding %q", name)
		}
		out, err := e.NewDecoder().Bytes(data)
		if err != nil || bytes.ContainsRune(out, utf8.RuneError) {
			continue
		}
		return string(out), name, nil
	}
	return "", "", fmt.Errorf("tried %s: %w", strings.Join(encodings, ", "), ErrUndecodable)
}
