// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package peaks

import (
	"io"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/hpcio/ioroofline/metrics"
)

// EthernetFrames may be given instead of a number for any IOPS field
// of a peaks file. It stands for FramesPerSecondMean.
const EthernetFrames = "ethernet-frames"

// peaksFile is the YAML layout of a peaks file:
//
//	peaks:
//	  - name: 10G-Ethernet
//	    bandwidth: 1250000000
//	    iops: ethernet-frames
//	  - name: SSD
//	    bandwidth: 500000000
//	    iops: 1293116
//	    bandwidth_read: 550000000
//	    iops_read: 90000
type peaksFile struct {
	Peaks []peakFromYAML `yaml:"peaks"`
}

type peakFromYAML struct {
	Name           string    `yaml:"name"`
	Bandwidth      *quantity `yaml:"bandwidth"`
	IOPS           *quantity `yaml:"iops"`
	BandwidthRead  *quantity `yaml:"bandwidth_read,omitempty"`
	IOPSRead       *quantity `yaml:"iops_read,omitempty"`
	BandwidthWrite *quantity `yaml:"bandwidth_write,omitempty"`
	IOPSWrite      *quantity `yaml:"iops_write,omitempty"`
}

// A quantity is a rate read from YAML. It accepts plain numbers,
// numbers in exponent form such as 1250e6, and EthernetFrames.
type quantity float64

func (q *quantity) UnmarshalYAML(n *yaml.Node) error {
	if n.Kind != yaml.ScalarNode {
		return errors.Errorf("line %d: expected a number", n.Line)
	}
	if n.Value == EthernetFrames {
		*q = FramesPerSecondMean
		return nil
	}
	x, err := strconv.ParseFloat(n.Value, 64)
	if err != nil {
		return errors.Errorf("line %d: bad number %q", n.Line, n.Value)
	}
	*q = quantity(x)
	return nil
}

func (q quantity) MarshalYAML() (interface{}, error) {
	return float64(q), nil
}

func (q *quantity) value() metrics.Value {
	if q == nil {
		return metrics.Missing
	}
	return metrics.Of(float64(*q))
}

func toQuantity(v metrics.Value) *quantity {
	x, ok := v.Float()
	if !ok {
		return nil
	}
	q := quantity(x)
	return &q
}

// Load reads a peaks file from r. An empty file yields no peaks.
func Load(r io.Reader) ([]Peak, error) {
	var f peaksFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "parsing peaks")
	}

	ps := make([]Peak, 0, len(f.Peaks))
	for i, y := range f.Peaks {
		p := Peak{
			Name:           y.Name,
			Bandwidth:      y.Bandwidth.value(),
			IOPS:           y.IOPS.value(),
			BandwidthRead:  y.BandwidthRead.value(),
			IOPSRead:       y.IOPSRead.value(),
			BandwidthWrite: y.BandwidthWrite.value(),
			IOPSWrite:      y.IOPSWrite.value(),
		}
		if err := p.Validate(); err != nil {
			return nil, errors.Wrapf(err, "peak %d", i+1)
		}
		ps = append(ps, p)
	}
	return ps, nil
}

// LoadFile reads the peaks file at path.
func LoadFile(path string) ([]Peak, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "reading peaks")
	}
	defer f.Close()
	ps, err := Load(f)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	return ps, nil
}

// Write writes ps to w as a peaks file that Load accepts. Missing
// values are omitted.
func Write(w io.Writer, ps []Peak) error {
	f := peaksFile{Peaks: make([]peakFromYAML, 0, len(ps))}
	for _, p := range ps {
		f.Peaks = append(f.Peaks, peakFromYAML{
			Name:           p.Name,
			Bandwidth:      toQuantity(p.Bandwidth),
			IOPS:           toQuantity(p.IOPS),
			BandwidthRead:  toQuantity(p.BandwidthRead),
			IOPSRead:       toQuantity(p.IOPSRead),
			BandwidthWrite: toQuantity(p.BandwidthWrite),
			IOPSWrite:      toQuantity(p.IOPSWrite),
		})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return errors.Wrap(err, "writing peaks")
	}
	return enc.Close()
}

// Validate checks that p has a name and a positive aggregate
// bandwidth and IOPS, and that any read or write variant is positive.
func (p Peak) Validate() error {
	if p.Name == "" {
		return errors.New("missing name")
	}
	for _, f := range []struct {
		name     string
		v        metrics.Value
		required bool
	}{
		{"bandwidth", p.Bandwidth, true},
		{"iops", p.IOPS, true},
		{"bandwidth_read", p.BandwidthRead, false},
		{"iops_read", p.IOPSRead, false},
		{"bandwidth_write", p.BandwidthWrite, false},
		{"iops_write", p.IOPSWrite, false},
	} {
		x, ok := f.v.Float()
		switch {
		case !ok && f.required:
			return errors.Errorf("%s: missing %s", p.Name, f.name)
		case ok && x <= 0:
			return errors.Errorf("%s: %s must be positive, got %v", p.Name, f.name, x)
		}
	}
	return nil
}
