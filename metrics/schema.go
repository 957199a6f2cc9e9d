// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"fmt"

	"github.com/hpcio/ioroofline/darshanfmt"
	"github.com/hpcio/ioroofline/iounit"
)

// SourceColumn names the column holding each row's source file name.
const SourceColumn = "source_name"

// A Counter is one of the POSIX counters the derived metrics are
// computed from.
type Counter int

const (
	BytesRead Counter = iota
	BytesWritten
	ReadTime
	WriteTime
	MetaTime
	Reads
	Writes
	Opens
	Filenos
	Dups
	Seeks
	Stats
	Fsyncs
	Fdsyncs

	numCounters
)

type columnInfo struct {
	name string
	unit string
}

var counterInfo = [numCounters]columnInfo{
	BytesRead:    {"BYTES_READ", iounit.Bytes},
	BytesWritten: {"BYTES_WRITTEN", iounit.Bytes},
	ReadTime:     {"F_READ_TIME", iounit.Seconds},
	WriteTime:    {"F_WRITE_TIME", iounit.Seconds},
	MetaTime:     {"F_META_TIME", iounit.Seconds},
	Reads:        {"READS", iounit.Ops},
	Writes:       {"WRITES", iounit.Ops},
	Opens:        {"OPENS", iounit.Ops},
	Filenos:      {"FILENOS", iounit.Ops},
	Dups:         {"DUPS", iounit.Ops},
	Seeks:        {"SEEKS", iounit.Ops},
	Stats:        {"STATS", iounit.Ops},
	Fsyncs:       {"FSYNCS", iounit.Ops},
	Fdsyncs:      {"FDSYNCS", iounit.Ops},
}

// opCounters are the counters whose sum is io_op_count.
var opCounters = []Counter{Reads, Writes, Opens, Filenos, Dups, Seeks, Stats, Fsyncs, Fdsyncs}

// AllCounters returns every Counter in declaration order.
func AllCounters() []Counter {
	cs := make([]Counter, numCounters)
	for i := range cs {
		cs[i] = Counter(i)
	}
	return cs
}

// Column returns the table column of c, such as "POSIX_BYTES_READ".
func (c Counter) Column() string {
	return darshanfmt.Counter{Namespace: darshanfmt.POSIX, Metric: c.info().name}.Key()
}

// Unit returns the unit of c's values.
func (c Counter) Unit() string {
	return c.info().unit
}

func (c Counter) String() string {
	if c < 0 || c >= numCounters {
		return fmt.Sprintf("Counter(%d)", int(c))
	}
	return c.Column()
}

func (c Counter) info() columnInfo {
	if c < 0 || c >= numCounters {
		panic(fmt.Sprintf("bad Counter %d", int(c)))
	}
	return counterInfo[c]
}

// A Metric is one of the derived columns added by Derive.
type Metric int

const (
	BandwidthRead Metric = iota
	BandwidthWrite
	BandwidthTotal
	IOPSRead
	IOPSWrite
	IOPSTotal
	IOOpCount
	IntensityTotal
	IntensityRead
	IntensityWrite

	numMetrics
)

var metricInfo = [numMetrics]columnInfo{
	BandwidthRead:  {"bandwidth_read", iounit.BytesPerSec},
	BandwidthWrite: {"bandwidth_write", iounit.BytesPerSec},
	BandwidthTotal: {"bandwidth_total", iounit.BytesPerSec},
	IOPSRead:       {"iops_read", iounit.OpsPerSec},
	IOPSWrite:      {"iops_write", iounit.OpsPerSec},
	IOPSTotal:      {"iops_total", iounit.OpsPerSec},
	IOOpCount:      {"io_op_count", iounit.Ops},
	IntensityTotal: {"io_intensity_total", iounit.OpsPerByte},
	IntensityRead:  {"io_intensity_read", iounit.OpsPerByte},
	IntensityWrite: {"io_intensity_write", iounit.OpsPerByte},
}

// AllMetrics returns every Metric in column order.
func AllMetrics() []Metric {
	ms := make([]Metric, numMetrics)
	for i := range ms {
		ms[i] = Metric(i)
	}
	return ms
}

// Column returns the table column of m, such as "bandwidth_read".
func (m Metric) Column() string {
	return m.info().name
}

// Unit returns the unit of m's values.
func (m Metric) Unit() string {
	return m.info().unit
}

func (m Metric) String() string {
	if m < 0 || m >= numMetrics {
		return fmt.Sprintf("Metric(%d)", int(m))
	}
	return m.Column()
}

func (m Metric) info() columnInfo {
	if m < 0 || m >= numMetrics {
		panic(fmt.Sprintf("bad Metric %d", int(m)))
	}
	return metricInfo[m]
}

// UnitOf returns the unit of the named column, or "" if it is not a
// known counter or metric.
func UnitOf(column string) string {
	for _, m := range AllMetrics() {
		if m.Column() == column {
			return m.Unit()
		}
	}
	for _, c := range AllCounters() {
		if c.Column() == column {
			return c.Unit()
		}
	}
	return ""
}
