// This file is part of psg-go.
//
// psg-go is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// psg-go is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with psg-go.  If not, see <https://www.gnu.org/licenses/>.

package filter_test

import (
	"testing"

	"github.com/thedjinn/psg-go/hardware/psg/filter"
	"github.com/thedjinn/psg-go/test"
)

func TestInterpolatorConstant(t *testing.T) {
	ip := filter.Interpolator{}

	// a constant input signal interpolates to the constant at every
	// intermediate point
	for i := 0; i < 4; i++ {
		ip.Feed(0.5)
	}

	test.Equate(t, ip.Interpolate(0.0), 0.5)
	test.Equate(t, ip.Interpolate(0.25), 0.5)
	test.Equate(t, ip.Interpolate(1.0), 0.5)
}

func TestInterpolatorRamp(t *testing.T) {
	ip := filter.Interpolator{}

	// a linear ramp has no curvature so the parabolic term vanishes and
	// interpolation is exact. the interpolation window is centred on the
	// second-newest value
	for i := 0; i < 4; i++ {
		ip.Feed(float64(i))
	}

	test.Equate(t, ip.Interpolate(0.0), 1.0)
	test.Equate(t, ip.Interpolate(0.5), 1.5)
	test.Equate(t, ip.Interpolate(1.0), 2.0)
}

func TestDecimatorDCGain(t *testing.T) {
	dec := filter.Decimator{}

	for i := range dec.Buffer {
		dec.Buffer[i] = 1.0
	}

	// the FIR kernel is normalised to unity gain at DC
	test.EquateTolerance(t, dec.Decimate(0), 1.0, 0.0001)
}

func TestDecimatorLinearity(t *testing.T) {
	a := filter.Decimator{}
	b := filter.Decimator{}

	for i := range a.Buffer {
		v := float64(i%7) - 3.0
		a.Buffer[i] = v
		b.Buffer[i] = v * 2.0
	}

	ra := a.Decimate(filter.Factor)
	rb := b.Decimate(filter.Factor)
	test.EquateTolerance(t, rb, ra*2.0, 1e-12)
}

func TestDCFilterConstant(t *testing.T) {
	dc := filter.DCFilter{}

	// a constant input is pure DC offset. after the delay line has filled,
	// the output must settle at exactly zero (0.5 sums without rounding
	// error)
	var left, right float64
	for i := 0; i < 2048; i++ {
		left, right = dc.Filter(0.5, 0.5)
	}

	test.Equate(t, left, 0.0)
	test.Equate(t, right, 0.0)
}

func TestDCFilterZero(t *testing.T) {
	dc := filter.DCFilter{}

	for i := 0; i < 100; i++ {
		left, right := dc.Filter(0.0, 0.0)
		test.Equate(t, left, 0.0)
		test.Equate(t, right, 0.0)
	}
}
