// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package peaks provides the hardware ceilings drawn on a roofline
// chart.
//
// A ceiling comes from the built-in table of constants, from a YAML
// file, or from darshan reports of reference runs that saturated a
// device.
package peaks

import (
	"github.com/hpcio/ioroofline/metrics"
)

// A Peak is a named hardware ceiling. Bandwidths are in bytes/s and
// IOPS in op/s. The read and write variants are optional; a Peak
// without them uses the aggregate values for every mode.
type Peak struct {
	Name           string
	Bandwidth      metrics.Value
	IOPS           metrics.Value
	BandwidthRead  metrics.Value
	IOPSRead       metrics.Value
	BandwidthWrite metrics.Value
	IOPSWrite      metrics.Value
}

// Builtin returns the built-in ceilings: 10G Ethernet and a SATA SSD.
func Builtin() []Peak {
	eth := metrics.Of(TenGigEthernetBandwidth)
	frames := metrics.Of(TenGigEthernetIOPS)
	return []Peak{
		{
			Name:           TenGigEthernetName,
			Bandwidth:      eth,
			IOPS:           frames,
			BandwidthRead:  eth,
			IOPSRead:       frames,
			BandwidthWrite: eth,
			IOPSWrite:      frames,
		},
		{
			Name:           SSDName,
			Bandwidth:      metrics.Of(SSDBandwidth),
			IOPS:           metrics.Of(SSDIOPS),
			BandwidthRead:  metrics.Of(SSDReadBandwidth),
			IOPSRead:       metrics.Of(SSDReadIOPS),
			BandwidthWrite: metrics.Of(SSDWriteBandwidth),
			IOPSWrite:      metrics.Of(SSDWriteIOPS),
		},
	}
}

// Ceiling returns the bandwidth and IOPS of p for mode. For the read
// and write modes it uses the specific pair when both values are
// defined and otherwise the aggregate pair. ok is false if the chosen
// pair is incomplete.
func (p Peak) Ceiling(mode metrics.Mode) (bw, iops float64, ok bool) {
	pair := func(b, i metrics.Value) (float64, float64, bool) {
		bw, ok1 := b.Float()
		iops, ok2 := i.Float()
		return bw, iops, ok1 && ok2
	}
	switch mode {
	case metrics.Read:
		if bw, iops, ok := pair(p.BandwidthRead, p.IOPSRead); ok {
			return bw, iops, true
		}
	case metrics.Write:
		if bw, iops, ok := pair(p.BandwidthWrite, p.IOPSWrite); ok {
			return bw, iops, true
		}
	}
	return pair(p.Bandwidth, p.IOPS)
}

// FromTable returns one Peak per row of t, named by the row's source.
// t must carry the derived metrics (see metrics.Derive). Missing
// metrics stay missing in the Peak.
func FromTable(t *metrics.Table) []Peak {
	get := func(m metrics.Metric, row int) metrics.Value {
		return t.Value(m.Column(), row)
	}
	sources := t.Sources()
	ps := make([]Peak, 0, len(sources))
	for row, name := range sources {
		ps = append(ps, Peak{
			Name:           name,
			Bandwidth:      get(metrics.BandwidthTotal, row),
			IOPS:           get(metrics.IOPSTotal, row),
			BandwidthRead:  get(metrics.BandwidthRead, row),
			IOPSRead:       get(metrics.IOPSRead, row),
			BandwidthWrite: get(metrics.BandwidthWrite, row),
			IOPSWrite:      get(metrics.IOPSWrite, row),
		})
	}
	return ps
}

// FromDirectory measures a Peak from every reference report under dir
// and appends manual. Names are not deduplicated.
func FromDirectory(dir string, manual []Peak, opts ...metrics.LoadOption) ([]Peak, error) {
	t, err := metrics.Load(dir, opts...)
	if err != nil {
		return nil, err
	}
	return append(FromTable(t), manual...), nil
}
