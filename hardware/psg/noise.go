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

// the noise generator's shift register is reset to this value. it
// corresponds to the all-ones delay compensation for a Galois register
// equivalent to a Fibonacci register seeded with 1. more importantly, it can
// never be zero: a zeroed register would lock the generator into permanent
// silence.
const noiseSeed = 0x4001

// taps for the 17-bit linear feedback shift register. bits 13 and 16.
const noiseTaps = 0x12000

// NoiseGenerator is the PSG's shared pseudo-random bit source: a 17-bit
// linear feedback shift register stepped once every period expiry. All three
// channels that enable noise share this one generator.
type NoiseGenerator struct {
	period  uint8
	counter uint8
	value   uint32
}

// quiescent state for the noise generator.
func (ng *NoiseGenerator) reset() {
	ng.period = 1
	ng.counter = 0
	ng.value = noiseSeed
}

// tick the noise generator forward by one chip tick, returning the current
// 1-bit noise value.
//
// note that the effective period is double the period register value. the
// real chip counts noise periods at half the rate of tone periods.
func (ng *NoiseGenerator) tick() uint8 {
	ng.counter++

	if ng.counter >= ng.period<<1 {
		ng.counter = 0

		// advance the shift register in Galois form. Galois registers are
		// cheaper to step than their Fibonacci equivalent
		lsb := ng.value & 1
		ng.value >>= 1
		if lsb != 0 {
			ng.value ^= noiseTaps
		}
	}

	return uint8(ng.value & 1)
}

// Period returns the noise generator's period. The value is between 1 and 31
// inclusive.
func (ng *NoiseGenerator) Period() uint8 {
	return ng.period
}

// SetPeriod sets the noise generator's period to a value between 1 and 31
// inclusive. A value of zero is treated as 1 and higher values are masked.
func (ng *NoiseGenerator) SetPeriod(period uint8) {
	ng.period = period & 0x1f
	if ng.period == 0 {
		ng.period = 1
	}
}
