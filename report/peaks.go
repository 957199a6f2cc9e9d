// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package report

import (
	"io"

	"github.com/olekukonko/tablewriter"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/hpcio/ioroofline/iounit"
	"github.com/hpcio/ioroofline/metrics"
	"github.com/hpcio/ioroofline/peaks"
)

// PeaksText writes one row per peak with its bandwidth in MB/s and its
// IOPS with thousands separators. Read and write ceilings that a peak
// does not define print as "-".
func PeaksText(w io.Writer, ps []peaks.Peak) {
	p := message.NewPrinter(language.English)
	bw := func(v metrics.Value) string {
		if x, ok := v.Float(); ok {
			return iounit.Rate(x)
		}
		return missing
	}
	iops := func(v metrics.Value) string {
		if x, ok := v.Float(); ok {
			return p.Sprintf("%.0f", x)
		}
		return missing
	}

	tw := tablewriter.NewWriter(w)
	tw.SetAutoFormatHeaders(false)
	tw.SetHeader([]string{"name", "bandwidth", "iops", "read bandwidth", "read iops", "write bandwidth", "write iops"})
	align := []int{tablewriter.ALIGN_LEFT}
	for i := 0; i < 6; i++ {
		align = append(align, tablewriter.ALIGN_RIGHT)
	}
	tw.SetColumnAlignment(align)
	for _, pk := range ps {
		tw.Append([]string{
			pk.Name,
			bw(pk.Bandwidth), iops(pk.IOPS),
			bw(pk.BandwidthRead), iops(pk.IOPSRead),
			bw(pk.BandwidthWrite), iops(pk.IOPSWrite),
		})
	}
	tw.Render()
}
