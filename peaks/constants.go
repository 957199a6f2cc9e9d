// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package peaks

// Ethernet frame rates. A minimum frame occupies 84 bytes on the wire
// (64 byte frame, preamble and inter-frame gap) and a maximum frame
// 1538 bytes.
const (
	LinkRate      = 1e9 // bit/s
	MinFrameBytes = 84
	MaxFrameBytes = 1538

	FramesPerSecondMax  = LinkRate / (MinFrameBytes * 8)
	FramesPerSecondMin  = LinkRate / (MaxFrameBytes * 8)
	FramesPerSecondMean = (FramesPerSecondMax + FramesPerSecondMin) / 2
)

// Built-in ceilings. Bandwidths are in bytes/s, IOPS in op/s.
const (
	TenGigEthernetName      = "10G-Ethernet"
	TenGigEthernetBandwidth = 1250e6
	TenGigEthernetIOPS      = FramesPerSecondMean

	SSDName           = "SSD"
	SSDBandwidth      = 500e6
	SSDIOPS           = 1293116
	SSDReadBandwidth  = 550e6
	SSDReadIOPS       = 90000
	SSDWriteBandwidth = 450e6
	SSDWriteIOPS      = 82000
)
