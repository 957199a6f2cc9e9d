// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package darshanfmt

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
)

// DefaultSuffix is the file name suffix of darshan-parser output for
// the POSIX module, one file per traced process.
const DefaultSuffix = ".posix"

// A File is the set of counters read from one input file.
type File struct {
	// Path is the path of the file, including Root.
	Path string
	// Source identifies the file in tables and charts. It is the
	// base name of Path, so two files in different directories
	// can share a Source.
	Source   string
	Counters Counters
}

// A Files reads counters from every matching file under a directory
// tree, one File per input.
//
// Files are visited in lexical path order, so the sequence is the same
// for the same directory contents.
type Files struct {
	// Root is the directory to walk.
	Root string

	// Suffix selects input files by name. If empty, DefaultSuffix
	// is used. All other files are skipped, but every directory
	// is descended into.
	Suffix string

	// Logger, if non-nil, receives a debug record for each file
	// read.
	Logger *slog.Logger

	// paths is the sequence of remaining inputs, or nil if this
	// Files has not started yet. Note that this distinguishes nil
	// from length 0.
	paths []string

	file File
	err  error
}

// init walks Root and collects the input paths.
func (f *Files) init() {
	f.paths = []string{}

	suffix := f.Suffix
	if suffix == "" {
		suffix = DefaultSuffix
	}
	err := filepath.WalkDir(f.Root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), suffix) {
			return nil
		}
		f.paths = append(f.paths, path)
		return nil
	})
	if err != nil {
		f.err = errors.Wrapf(err, "walking %s", f.Root)
	}
}

// Scan reads the next input file and reports whether one was read.
// The caller should use the File method to get its counters. If Scan
// reaches the end of the inputs, or if an I/O error occurs, it returns
// false. In this case, the caller should use the Err method to check
// for errors.
func (f *Files) Scan() bool {
	if f.paths == nil {
		f.init()
	}
	if f.err != nil || len(f.paths) == 0 {
		return false
	}

	path := f.paths[0]
	f.paths = f.paths[1:]

	if f.Logger != nil {
		f.Logger.Debug("processing file", "path", path)
	}
	file, err := os.Open(path)
	if err != nil {
		f.err = errors.Wrap(err, "reading counters")
		return false
	}
	defer file.Close()

	cs, err := Extract(file, path)
	if err != nil {
		f.err = errors.Wrap(err, "reading counters")
		return false
	}
	f.file = File{Path: path, Source: filepath.Base(path), Counters: cs}
	return true
}

// File returns the file that was just read by Scan.
func (f *Files) File() File {
	return f.file
}

// Err returns the I/O error that stopped Scan, if any. If Scan stopped
// because it read every file to completion, or if Scan has not yet
// returned false, Err returns nil.
func (f *Files) Err() error {
	return f.err
}
