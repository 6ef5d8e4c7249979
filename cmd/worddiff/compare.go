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

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/VimWei/worddiff"
	"github.com/VimWei/worddiff/internal/logger"
	"github.com/VimWei/worddiff/internal/settings"
	"github.com/VimWei/worddiff/internal/textfile"
	"github.com/VimWei/worddiff/report"
	"github.com/VimWei/worddiff/report/color"
)

type compareCmd struct {
	Old string `arg:"" help:"Old version of the text." type:"path"`
	New string `arg:"" help:"New version of the text." type:"path"`

	JSON         bool   `name:"json" help:"Write a JSON report to the output directory."`
	HTML         bool   `name:"html" help:"Write an HTML report to the output directory."`
	CSV          bool   `name:"csv" help:"Write a CSV report to the output directory."`
	OutputDir    string `help:"Directory for report files." type:"path" placeholder:"DIR"`
	Prefix       string `help:"File name prefix for report files." placeholder:"PREFIX"`
	NoColor      bool   `help:"Disable colors in console output."`
	Quiet        bool   `short:"q" help:"Don't print the console report."`
	Unified      bool   `help:"Print the differences as hunks of words with context."`
	Context      *int   `help:"Number of equal words around unified hunks." placeholder:"N"`
	PreserveCase bool   `help:"Compare words case sensitively."`
}

var renderers = map[string]func(io.Writer, report.Input) error{
	"json": report.JSON,
	"csv":  report.CSV,
	"html": report.HTML,
}

func (c *compareCmd) Run(e *env) error {
	s, err := loadSettings(e.cli, func(s *settings.Settings) {
		if c.JSON {
			s.Report.Formats = append(s.Report.Formats, "json")
		}
		if c.HTML {
			s.Report.Formats = append(s.Report.Formats, "html")
		}
		if c.CSV {
			s.Report.Formats = append(s.Report.Formats, "csv")
		}
		if c.OutputDir != "" {
			s.Report.OutputDir = c.OutputDir
		}
		if c.Prefix != "" {
			s.Report.Prefix = c.Prefix
		}
		if c.NoColor {
			s.Report.Color = false
		}
		if c.Quiet {
			s.Report.Console = false
		}
		if c.Unified {
			s.Report.Unified = true
		}
		if c.Context != nil {
			s.Compare.Context = *c.Context
		}
		if c.PreserveCase {
			s.Compare.PreserveCase = true
		}
	})
	if err != nil {
		return err
	}
	colors := s.Report.Color && isTerminal(e.stdout)

	log, closer, err := logger.New(logConfig(s.Log, !colors), e.stderr)
	if err != nil {
		return err
	}
	defer closer.Close()

	runID := uuid.NewString()
	log = log.With().Str("run_id", runID).Logger()
	start := time.Now()

	var oldFile, newFile *textfile.File
	var g errgroup.Group
	g.Go(func() (err error) {
		oldFile, err = textfile.Load(c.Old, s.Input.Encodings...)
		return err
	})
	g.Go(func() (err error) {
		newFile, err = textfile.Load(c.New, s.Input.Encodings...)
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}
	for _, f := range []*textfile.File{oldFile, newFile} {
		log.Debug().Str("file", f.Path).Str("encoding", f.Encoding).Int64("size", f.Size).Str("blake3", f.Digest).Msg("loaded")
	}

	opts := []worddiff.Option{worddiff.MaxCells(s.Compare.MaxCells)}
	if s.Compare.PreserveCase {
		opts = append(opts, worddiff.PreserveCase())
	}
	if s.Compare.Parallelism > 0 {
		opts = append(opts, worddiff.Parallelism(s.Compare.Parallelism))
	}
	cmp := worddiff.Compare(oldFile.Text, newFile.Text, opts...)
	log.Info().
		Int("old_words", len(cmp.Old.Words)).
		Int("new_words", len(cmp.New.Words)).
		Int("differences", cmp.TotalDifferences).
		Float64("similarity", cmp.SimilarityRatio).
		Int("chunks", cmp.Chunks).
		Dur("elapsed", time.Since(start)).
		Msg("compared")

	in := report.Input{
		RunID:      runID,
		OldFile:    reportFile(oldFile),
		NewFile:    reportFile(newFile),
		Comparison: cmp,
	}
	var ropts []worddiff.Option
	if colors {
		ropts = append(ropts, color.TerminalColors())
	}
	if s.Report.Console {
		if err := report.Text(e.stdout, in, ropts...); err != nil {
			return err
		}
	}
	if s.Report.Unified {
		if err := report.Unified(e.stdout, in, append(ropts, worddiff.Context(s.Compare.Context))...); err != nil {
			return err
		}
	}
	if err := writeReports(log, s.Report, in, start); err != nil {
		return err
	}

	if cmp.TotalDifferences > 0 {
		e.code = exitDiffs
	}
	return nil
}

// writeReports writes one file per configured format, named <prefix>_<unix seconds>.<format>.
func writeReports(log zerolog.Logger, s settings.Report, in report.Input, now time.Time) error {
	formats := slices.Clone(s.Formats)
	slices.Sort(formats)
	formats = slices.Compact(formats)
	if len(formats) == 0 {
		return nil
	}
	if err := os.MkdirAll(s.OutputDir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	base := fmt.Sprintf("%s_%d", s.Prefix, now.Unix())
	for _, format := range formats {
		render, ok := renderers[format]
		if !ok {
			return fmt.Errorf("unknown report format %q", format)
		}
		path := filepath.Join(s.OutputDir, base+"."+format)
		if err := writeFile(path, func(w io.Writer) error { return render(w, in) }); err != nil {
			return fmt.Errorf("failed to write %s report: %w", format, err)
		}
		log.Info().Str("format", format).Str("path", path).Msg("report written")
	}
	return nil
}

func writeFile(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := render(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func reportFile(f *textfile.File) report.File {
	return report.File{
		Name:     f.Name,
		Size:     f.Size,
		Encoding: f.Encoding,
		Digest:   f.Digest,
	}
}

func loadSettings(c *cli, override func(*settings.Settings)) (settings.Settings, error) {
	s, err := settings.Load(c.Config)
	if err != nil {
		return settings.Settings{}, err
	}
	if c.LogLevel != "" {
		s.Log.Level = c.LogLevel
	}
	if c.LogFormat != "" {
		s.Log.Format = c.LogFormat
	}
	if c.LogFile != "" {
		s.Log.File = c.LogFile
	}
	if override != nil {
		override(&s)
	}
	return s, s.Validate()
}

func logConfig(s settings.Log, noColor bool) logger.Config {
	return logger.Config{
		Level:      s.Level,
		Format:     logger.Format(s.Format),
		File:       s.File,
		MaxSizeMB:  s.MaxSizeMB,
		MaxBackups: s.MaxBackups,
		NoColor:    noColor,
	}
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}
