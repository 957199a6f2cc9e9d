// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"log/slog"

	"github.com/hpcio/ioroofline/darshanfmt"
)

// A LoadOption configures Load.
type LoadOption func(*loadConfig)

type loadConfig struct {
	suffix    string
	logger    *slog.Logger
	keepEmpty bool
}

// WithSuffix selects input files by name suffix instead of
// darshanfmt.DefaultSuffix.
func WithSuffix(suffix string) LoadOption {
	return func(c *loadConfig) { c.suffix = suffix }
}

// WithLogger logs each file as it is read.
func WithLogger(logger *slog.Logger) LoadOption {
	return func(c *loadConfig) { c.logger = logger }
}

// KeepEmpty keeps a row for input files that contain no counters. By
// default such files are skipped.
func KeepEmpty() LoadOption {
	return func(c *loadConfig) { c.keepEmpty = true }
}

// Records reads every file of files into a Record, in walk order.
// Files without counters are dropped unless keepEmpty is set. The
// first I/O error stops the walk and is returned.
func Records(files *darshanfmt.Files, keepEmpty bool) ([]Record, error) {
	var recs []Record
	for files.Scan() {
		f := files.File()
		if len(f.Counters) == 0 && !keepEmpty {
			if files.Logger != nil {
				files.Logger.Debug("skipping file without counters", "path", f.Path)
			}
			continue
		}
		recs = append(recs, Record{Source: f.Source, Counters: f.Counters})
	}
	if err := files.Err(); err != nil {
		return nil, err
	}
	return recs, nil
}

// Load reads every input file under dir and returns the joined table
// with derived metrics added. A directory without input files yields
// an empty table.
func Load(dir string, opts ...LoadOption) (*Table, error) {
	var cfg loadConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	files := &darshanfmt.Files{Root: dir, Suffix: cfg.suffix, Logger: cfg.logger}
	recs, err := Records(files, cfg.keepEmpty)
	if err != nil {
		return nil, err
	}
	return Derive(Build(recs)), nil
}
