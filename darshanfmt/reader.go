// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package darshanfmt reads the counter totals printed by
// darshan-parser --total.
//
// The only lines of interest have the form
//
//	total_<NAMESPACE>_<METRIC>: <number>
//
// where NAMESPACE is one of Namespaces, METRIC consists of upper case
// letters and underscores, and number is an optionally negative
// decimal. Everything else in the file is ignored. Negative values are
// reported unchanged: darshan uses -1 to mark counters it did not
// record.
package darshanfmt

import (
	"bufio"
	"bytes"
	"io"
	"sort"
	"strconv"

	"github.com/pkg/errors"
)

// A Namespace is a darshan module name that prefixes a counter.
type Namespace string

const (
	POSIX Namespace = "POSIX"
	STDIO Namespace = "STDIO"
)

// Namespaces lists the module namespaces the Reader recognizes.
var Namespaces = []Namespace{POSIX, STDIO}

// A Counter is a single counter total read from a log file.
type Counter struct {
	Namespace Namespace
	// Metric is the counter name without its namespace, such as
	// "BYTES_READ" or "F_WRITE_TIME".
	Metric string
	Value  float64

	fileName string
	line     int
}

// Key returns the namespace-qualified counter name, such as
// "POSIX_BYTES_READ".
func (c Counter) Key() string {
	return string(c.Namespace) + "_" + c.Metric
}

// Pos returns the file name and 1-based line number c was read from.
// If c was not read from a file, it returns "", 0.
func (c Counter) Pos() (fileName string, line int) {
	return c.fileName, c.line
}

// String formats c as a counter line. Reading the result back
// produces a Counter with the same key and exactly the same value.
func (c Counter) String() string {
	buf := make([]byte, 0, 48)
	buf = append(buf, totalPrefix...)
	buf = append(buf, c.Key()...)
	buf = append(buf, ": "...)
	buf = strconv.AppendFloat(buf, c.Value, 'f', -1, 64)
	return string(buf)
}

// Counters maps namespace-qualified counter names to their values.
type Counters map[string]float64

// Keys returns the counter names in cs in ascending order.
func (cs Counters) Keys() []string {
	keys := make([]string, 0, len(cs))
	for k := range cs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// A Reader reads counter lines from a darshan-parser total report.
//
// Its API is modeled on bufio.Scanner. To construct a new Reader,
// either call NewReader, or call Reset on a zeroed Reader.
type Reader struct {
	s   *bufio.Scanner
	err error

	fileName string
	line     int

	// q holds the counters found on the current line that have
	// not been returned yet. qPos is the index of the current
	// counter in q.
	q    []Counter
	qPos int
}

// maxLine bounds the length of a single input line.
const maxLine = 1 << 20

// NewReader constructs a Reader that parses counters from r.
// fileName is used in positions and error messages.
func NewReader(r io.Reader, fileName string) *Reader {
	reader := new(Reader)
	reader.Reset(r, fileName)
	return reader
}

// Reset resets the reader to begin reading from a new input.
func (r *Reader) Reset(ior io.Reader, fileName string) {
	r.s = bufio.NewScanner(ior)
	r.s.Buffer(nil, maxLine)
	if fileName == "" {
		fileName = "<unknown>"
	}
	r.fileName = fileName
	r.line = 0
	r.err = nil
	r.q = r.q[:0]
	r.qPos = 0
}

var totalPrefix = []byte("total_")

// Scan advances the reader to the next counter and reports whether
// one was read. The caller should use the Counter method to get it.
// If Scan reaches EOF or an I/O error occurs, it returns false, in
// which case the caller should use the Err method to check for errors.
func (r *Reader) Scan() bool {
	if r.err != nil {
		return false
	}

	if r.qPos+1 < len(r.q) {
		r.qPos++
		return true
	}
	r.qPos = 0
	r.q = r.q[:0]

	for len(r.q) == 0 && r.s.Scan() {
		r.line++
		line := r.s.Bytes()
		// Most lines in a darshan report are per-record
		// counters or comments; skip them quickly.
		if !bytes.Contains(line, totalPrefix) {
			continue
		}
		r.parseLine(line)
	}

	if len(r.q) > 0 {
		return true
	}

	if err := r.s.Err(); err != nil {
		r.err = errors.Wrapf(err, "%s:%d", r.fileName, r.line)
	}
	return false
}

// Counter returns the counter that was just read by Scan.
func (r *Reader) Counter() Counter {
	if r.qPos >= len(r.q) {
		return Counter{}
	}
	return r.q[r.qPos]
}

// Err returns the first non-EOF I/O error that was encountered by the
// Reader.
func (r *Reader) Err() error {
	return r.err
}

// parseLine queues every counter in line. Matches may start anywhere
// in the line and do not overlap.
func (r *Reader) parseLine(line []byte) {
	for len(line) > 0 {
		i := bytes.Index(line, totalPrefix)
		if i < 0 {
			return
		}
		line = line[i+len(totalPrefix):]
		c, n, ok := parseCounter(line)
		if !ok {
			continue
		}
		c.fileName, c.line = r.fileName, r.line
		r.q = append(r.q, c)
		line = line[n:]
	}
}

// parseCounter parses "<NAMESPACE>_<METRIC>: <number>" at the start of
// b. It returns the counter and the number of bytes consumed.
func parseCounter(b []byte) (c Counter, n int, ok bool) {
	ns, ok := parseNamespace(b)
	if !ok {
		return
	}
	n = len(ns) + 1

	// Metric: one or more of [A-Z_].
	start := n
	for n < len(b) && (b[n] >= 'A' && b[n] <= 'Z' || b[n] == '_') {
		n++
	}
	if n == start || !bytes.HasPrefix(b[n:], []byte(": ")) {
		return c, 0, false
	}
	metric := b[start:n]
	n += len(": ")

	num := numberPrefix(b[n:])
	if len(num) == 0 {
		return c, 0, false
	}
	// Numbers too large for a float64 are kept as ±Inf.
	val, err := strconv.ParseFloat(string(num), 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return c, 0, false
	}
	n += len(num)
	return Counter{Namespace: ns, Metric: string(metric), Value: val}, n, true
}

// parseNamespace reports which namespace, followed by an underscore,
// begins b.
func parseNamespace(b []byte) (Namespace, bool) {
	for _, ns := range Namespaces {
		if len(b) > len(ns) && string(b[:len(ns)]) == string(ns) && b[len(ns)] == '_' {
			return ns, true
		}
	}
	return "", false
}

// numberPrefix returns the longest prefix of b of the form
// -?[0-9]+(\.[0-9]+)?, or nil if there is none.
func numberPrefix(b []byte) []byte {
	i := 0
	if i < len(b) && b[i] == '-' {
		i++
	}
	digits := skipDigits(b[i:])
	if digits == 0 {
		return nil
	}
	i += digits
	if i < len(b) && b[i] == '.' {
		if frac := skipDigits(b[i+1:]); frac > 0 {
			i += 1 + frac
		}
	}
	return b[:i]
}

func skipDigits(b []byte) int {
	i := 0
	for i < len(b) && b[i] >= '0' && b[i] <= '9' {
		i++
	}
	return i
}

// Extract reads every counter in r and returns them keyed by their
// namespace-qualified name. If a counter appears more than once, the
// last value wins. An input with no counter lines produces an empty
// map, not an error.
func Extract(r io.Reader, fileName string) (Counters, error) {
	cs := make(Counters)
	reader := NewReader(r, fileName)
	for reader.Scan() {
		c := reader.Counter()
		cs[c.Key()] = c.Value
	}
	if err := reader.Err(); err != nil {
		return nil, err
	}
	return cs, nil
}
