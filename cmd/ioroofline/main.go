// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Ioroofline draws empirical I/O roofline charts from the counter
// totals of darshan-parser reports.
//
// Usage:
//
//	ioroofline plot [flags] <dir>
//	ioroofline table [flags] <dir>
//	ioroofline peaks [flags]
//
// The plot command reads every *.posix report under dir, derives
// bandwidth, IOPS and operational intensity per report, and draws one
// point per report against the hardware ceilings. By default it draws
// a read, a write and an aggregated chart, named by inserting the mode
// before the extension of -out.
//
// The table command prints the same per-report metrics as a text
// table, CSV, the raw counter table, or an XLSX workbook.
//
// The peaks command prints the ceilings plot would draw. The built-in
// ceilings are a 10G Ethernet link and a SATA SSD; -peaks-file
// replaces them with a YAML list such as
//
//	peaks:
//	  - name: 10G-Ethernet
//	    bandwidth: 1250e6
//	    iops: ethernet-frames
//	  - name: nvme
//	    bandwidth: 3.2e9
//	    iops: 600000
//	    bandwidth_write: 2.9e9
//
// and -peaks-dir adds one ceiling per reference report, measured the
// same way as the plotted points.
package main

import (
	"os"

	"github.com/hpcio/ioroofline/internal/cli"
)

func main() {
	os.Exit(int(cli.Run()))
}
