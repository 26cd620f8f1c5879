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

// run the envelope generator with the given shape and a period of one,
// collecting the level produced by each tick.
func envelopeSequence(shape uint8, length int) []uint8 {
	eg := EnvelopeGenerator{}
	eg.reset()
	eg.SetShape(shape)

	seq := make([]uint8, length)
	for i := range seq {
		seq[i] = eg.tick()
	}
	return seq
}

func TestEnvelopeQuiescent(t *testing.T) {
	// before the first shape write the level is zero and stays there. shape
	// 0 falls into its hold segment on the first tick without ever rising
	eg := EnvelopeGenerator{}
	eg.reset()

	for i := 0; i < 100; i++ {
		test.Equate(t, eg.tick(), 0)
	}
}

func TestEnvelopeDecayThenSilence(t *testing.T) {
	// shape 0: single downward slide finishing at zero
	seq := envelopeSequence(0, 64)

	for i := 0; i < 31; i++ {
		test.Equate(t, seq[i], 30-i)
	}
	for i := 31; i < 64; i++ {
		test.Equate(t, seq[i], 0)
	}
}

func TestEnvelopeAttackThenSilence(t *testing.T) {
	// shape 4: single upward slide finishing at zero
	seq := envelopeSequence(4, 64)

	for i := 0; i < 31; i++ {
		test.Equate(t, seq[i], i+1)
	}
	for i := 31; i < 64; i++ {
		test.Equate(t, seq[i], 0)
	}
}

func TestEnvelopeSawtooth(t *testing.T) {
	// shape 8: repeated downward slides. the cycle is 32 ticks long
	seq := envelopeSequence(8, 128)

	for i := 0; i < 31; i++ {
		test.Equate(t, seq[i], 30-i)
	}
	test.Equate(t, seq[31], 31)

	for i := 32; i < 128; i++ {
		test.Equate(t, seq[i], seq[i-32])
	}
}

func TestEnvelopeUpwardSawtooth(t *testing.T) {
	// shape 12: repeated upward slides. the cycle is 32 ticks long
	seq := envelopeSequence(12, 128)

	for i := 0; i < 31; i++ {
		test.Equate(t, seq[i], i+1)
	}
	test.Equate(t, seq[31], 0)

	for i := 32; i < 128; i++ {
		test.Equate(t, seq[i], seq[i-32])
	}
}

func TestEnvelopeTriangleDownUp(t *testing.T) {
	// shape 10: alternating downward and upward slides. the turning points
	// repeat the extreme values so the cycle is 64 ticks long
	seq := envelopeSequence(10, 256)

	for i := 0; i < 31; i++ {
		test.Equate(t, seq[i], 30-i)
	}
	test.Equate(t, seq[31], 0)
	for i := 32; i < 63; i++ {
		test.Equate(t, seq[i], i-31)
	}
	test.Equate(t, seq[63], 31)

	for i := 64; i < 256; i++ {
		test.Equate(t, seq[i], seq[i-64])
	}
}

func TestEnvelopeTriangleUpDown(t *testing.T) {
	// shape 14: the mirror image of shape 10, starting with the upward
	// slide
	seq := envelopeSequence(14, 256)

	for i := 0; i < 31; i++ {
		test.Equate(t, seq[i], i+1)
	}
	test.Equate(t, seq[31], 31)
	for i := 32; i < 63; i++ {
		test.Equate(t, seq[i], 62-i)
	}
	test.Equate(t, seq[63], 0)

	for i := 64; i < 256; i++ {
		test.Equate(t, seq[i], seq[i-64])
	}
}

func TestEnvelopeDecayThenHold(t *testing.T) {
	// shape 11: downward slide then hold at maximum
	seq := envelopeSequence(11, 64)

	for i := 0; i < 31; i++ {
		test.Equate(t, seq[i], 30-i)
	}
	for i := 31; i < 64; i++ {
		test.Equate(t, seq[i], 31)
	}
}

func TestEnvelopeAttackThenHold(t *testing.T) {
	// shape 13: upward slide then hold at maximum
	seq := envelopeSequence(13, 64)

	for i := 0; i < 31; i++ {
		test.Equate(t, seq[i], i+1)
	}
	for i := 31; i < 64; i++ {
		test.Equate(t, seq[i], 31)
	}
}

func TestEnvelopeShapeAliases(t *testing.T) {
	// with the continue bit clear the alternate and hold bits have no
	// effect. shapes 0 to 3 behave identically, as do shapes 4 to 7.
	// shapes 9 and 15 repeat the same two behaviours
	ref := envelopeSequence(0, 256)
	for _, shape := range []uint8{1, 2, 3, 9} {
		seq := envelopeSequence(shape, 256)
		for i := range seq {
			test.Equate(t, seq[i], int(ref[i]))
		}
	}

	ref = envelopeSequence(4, 256)
	for _, shape := range []uint8{5, 6, 7, 15} {
		seq := envelopeSequence(shape, 256)
		for i := range seq {
			test.Equate(t, seq[i], int(ref[i]))
		}
	}
}

func TestEnvelopePeriodScaling(t *testing.T) {
	// a longer period stretches the sequence without changing its values
	eg := EnvelopeGenerator{}
	eg.reset()
	eg.SetPeriod(3)
	eg.SetShape(8)

	ref := envelopeSequence(8, 64)
	for i := 0; i < 64; i++ {
		var v uint8
		for j := 0; j < 3; j++ {
			v = eg.tick()
		}
		test.Equate(t, v, int(ref[i]))
	}
}

func TestEnvelopeShapeWriteRestarts(t *testing.T) {
	eg := EnvelopeGenerator{}
	eg.reset()
	eg.SetShape(8)

	for i := 0; i < 20; i++ {
		eg.tick()
	}

	// rewriting the shape register resets the ramp
	eg.SetShape(8)
	test.Equate(t, eg.tick(), 30)

	// a shape starting with an upward slide resets to zero
	eg.SetShape(12)
	test.Equate(t, eg.tick(), 1)
}

func TestEnvelopePeriodRegisters(t *testing.T) {
	eg := EnvelopeGenerator{}
	eg.reset()

	eg.SetPeriodMSB(0x12)
	eg.SetPeriodLSB(0x34)
	test.Equate(t, eg.Period(), 0x1234)
	test.Equate(t, eg.PeriodMSB(), 0x12)
	test.Equate(t, eg.PeriodLSB(), 0x34)

	// zero period is bumped to one
	eg.SetPeriod(0)
	test.Equate(t, eg.Period(), 1)

	eg.SetPeriodMSB(0)
	test.Equate(t, eg.Period(), 1)
}
