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

package psg

import (
	"testing"

	"github.com/thedjinn/psg-go/test"
)

func TestNoiseNeverStalls(t *testing.T) {
	ng := NoiseGenerator{}
	ng.reset()

	// a zeroed shift register would stick at zero forever. make sure the
	// generator never reaches that state and that both output values occur
	var zeros, ones int
	for i := 0; i < 300000; i++ {
		if ng.tick() == 0 {
			zeros++
		} else {
			ones++
		}
		test.Equate(t, ng.value != 0, true)
	}

	test.Equate(t, zeros > 0, true)
	test.Equate(t, ones > 0, true)
}

func TestNoiseSequenceLength(t *testing.T) {
	ng := NoiseGenerator{}
	ng.reset()

	// a 17-bit maximal length shift register cycles through every non-zero
	// state. with the minimum period each state lasts two ticks
	start := ng.value
	for i := 0; i < 2*131071; i++ {
		ng.tick()
	}
	test.Equate(t, ng.value, start)
}

func TestNoisePeriodScaling(t *testing.T) {
	// generators with periods p and 2p produce the same bit sequence when
	// sampled at the matching rates
	a := NoiseGenerator{}
	a.reset()
	a.SetPeriod(1)

	b := NoiseGenerator{}
	b.reset()
	b.SetPeriod(2)

	for i := 0; i < 10000; i++ {
		va := a.tick()
		b.tick()
		vb := b.tick()
		test.Equate(t, va, int(vb))
	}
}

func TestNoisePeriodRegister(t *testing.T) {
	ng := NoiseGenerator{}
	ng.reset()

	ng.SetPeriod(17)
	test.Equate(t, ng.Period(), 17)

	// values are masked to five bits
	ng.SetPeriod(0x3f)
	test.Equate(t, ng.Period(), 0x1f)

	// zero period is bumped to one
	ng.SetPeriod(0)
	test.Equate(t, ng.Period(), 1)

	// 32 masks to zero and is also bumped to one
	ng.SetPeriod(32)
	test.Equate(t, ng.Period(), 1)
}
