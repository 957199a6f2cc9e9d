// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package metrics

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// A Mode selects which traffic a roofline describes.
type Mode int

const (
	Aggregated Mode = iota
	Read
	Write
)

// Modes lists every Mode.
var Modes = []Mode{Read, Write, Aggregated}

// ParseMode parses the lower-case name of a Mode.
func ParseMode(s string) (Mode, error) {
	for _, m := range Modes {
		if strings.EqualFold(s, m.String()) {
			return m, nil
		}
	}
	return 0, errors.Errorf("unknown mode %q (want read, write or aggregated)", s)
}

func (m Mode) String() string {
	switch m {
	case Aggregated:
		return "aggregated"
	case Read:
		return "read"
	case Write:
		return "write"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Title returns the capitalized name of m, such as "Read".
func (m Mode) Title() string {
	s := m.String()
	return strings.ToUpper(s[:1]) + s[1:]
}

// Intensity returns the operational intensity metric of m.
func (m Mode) Intensity() Metric {
	switch m {
	case Read:
		return IntensityRead
	case Write:
		return IntensityWrite
	}
	return IntensityTotal
}

// IOPS returns the operation rate metric of m.
func (m Mode) IOPS() Metric {
	switch m {
	case Read:
		return IOPSRead
	case Write:
		return IOPSWrite
	}
	return IOPSTotal
}

// Bandwidth returns the bandwidth metric of m.
func (m Mode) Bandwidth() Metric {
	switch m {
	case Read:
		return BandwidthRead
	case Write:
		return BandwidthWrite
	}
	return BandwidthTotal
}
