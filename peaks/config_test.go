// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package peaks

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hpcio/ioroofline/metrics"
)

func TestLoadFile(t *testing.T) {
	ps, err := LoadFile("testdata/peaks.yaml")
	require.NoError(t, err)
	require.Len(t, ps, 3)

	assert.Equal(t, Peak{
		Name:      "10G-Ethernet",
		Bandwidth: metrics.Of(1250e6),
		IOPS:      metrics.Of(FramesPerSecondMean),
	}, ps[0])
	assert.Equal(t, Peak{
		Name:           "SSD_W_C",
		Bandwidth:      metrics.Of(450e6),
		IOPS:           metrics.Of(1293116),
		BandwidthWrite: metrics.Of(450e6),
		IOPSWrite:      metrics.Of(82000),
	}, ps[1])
	assert.Equal(t, "Measured_W_C", ps[2].Name)

	bw, iops, ok := ps[1].Ceiling(metrics.Write)
	require.True(t, ok)
	assert.Equal(t, 450e6, bw)
	assert.Equal(t, 82000.0, iops)
}

func TestLoadErrors(t *testing.T) {
	for _, test := range []struct {
		name, path, want string
	}{
		{"non-positive", "testdata/bad.yaml", "iops must be positive"},
		{"unknown field", "testdata/typo.yaml", "bandwith"},
		{"missing file", "testdata/nope.yaml", "reading peaks"},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := LoadFile(test.path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.want)
		})
	}

	for _, test := range []struct {
		name, input, want string
	}{
		{"no name", "peaks:\n  - bandwidth: 1\n    iops: 1\n", "missing name"},
		{"no iops", "peaks:\n  - name: x\n    bandwidth: 1\n", "missing iops"},
		{"bad number", "peaks:\n  - name: x\n    bandwidth: fast\n    iops: 1\n", `bad number "fast"`},
		{"not a scalar", "peaks:\n  - name: x\n    bandwidth: [1]\n    iops: 1\n", "expected a number"},
		{"bad variant", "peaks:\n  - name: x\n    bandwidth: 1\n    iops: 1\n    iops_read: 0\n", "iops_read must be positive"},
	} {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(test.input))
			require.Error(t, err)
			assert.Contains(t, err.Error(), test.want)
		})
	}
}

func TestLoadEmpty(t *testing.T) {
	ps, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, ps)
}

func TestWriteRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, Builtin()))
	assert.Contains(t, buf.String(), "name: 10G-Ethernet")

	ps, err := Load(&buf)
	require.NoError(t, err)
	assert.Equal(t, Builtin(), ps)

	// Missing variants are left out.
	buf.Reset()
	require.NoError(t, Write(&buf, []Peak{{Name: "nic", Bandwidth: metrics.Of(1), IOPS: metrics.Of(2)}}))
	assert.NotContains(t, buf.String(), "iops_read")
}
