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

// the shape of one envelope segment.
type envelopeSegment int

const (
	// slide from 31 down to 0 and progress to the next segment
	slideDown envelopeSegment = iota

	// slide from 0 up to 31 and progress to the next segment
	slideUp

	// hold the value at 31 indefinitely
	holdTop

	// hold the value at 0 indefinitely
	holdBottom
)

// envelopeShapes is a table of all possible envelope shapes, indexed by the
// 4-bit shape register value.
//
// Every shape is represented as two segments. The generator either
// oscillates between the two segments or transitions into the second and
// stays there, depending on whether the second segment is a slide or a hold.
//
// The shape register bits are continue/attack/alternate/hold but the chip
// collapses the sixteen combinations to eight distinct behaviours: with the
// continue bit clear (shapes 0 to 7) the alternate and hold bits are
// ignored and the envelope always finishes at zero. The table reproduces
// that collapse directly rather than decoding the bits.
var envelopeShapes = [16][2]envelopeSegment{
	{slideDown, holdBottom},
	{slideDown, holdBottom},
	{slideDown, holdBottom},
	{slideDown, holdBottom},
	{slideUp, holdBottom},
	{slideUp, holdBottom},
	{slideUp, holdBottom},
	{slideUp, holdBottom},
	{slideDown, slideDown},
	{slideDown, holdBottom},
	{slideDown, slideUp},
	{slideDown, holdTop},
	{slideUp, slideUp},
	{slideUp, holdTop},
	{slideUp, slideDown},
	{slideUp, holdBottom},
}

// EnvelopeGenerator is the PSG's shared amplitude envelope: a cyclic or
// one-shot volume ramp with 5-bit resolution, shared by every channel that
// has its envelope enabled flag set.
type EnvelopeGenerator struct {
	position uint16
	period   uint16
	shape    uint8
	segment  uint8
	value    uint8
}

// quiescent state for the envelope generator. the level starts at zero, not
// at the starting level of shape 0: the real chip is silent until the shape
// register is written.
func (eg *EnvelopeGenerator) reset() {
	eg.position = 0
	eg.period = 1
	eg.shape = 0
	eg.segment = 0
	eg.value = 0
}

// tick the envelope generator forward by one chip tick, returning the new
// envelope level in the range 0 to 31.
func (eg *EnvelopeGenerator) tick() uint8 {
	eg.position++

	if eg.position >= eg.period {
		eg.position = 0

		switch envelopeShapes[eg.shape][eg.segment] {
		case slideDown:
			if eg.value == 0 {
				eg.segment ^= 1
				eg.resetSegment()
			} else {
				eg.value--
			}

		case slideUp:
			if eg.value >= 31 {
				eg.segment ^= 1
				eg.resetSegment()
			} else {
				eg.value++
			}
		}
	}

	return eg.value
}

// resetSegment sets the envelope value to the starting level of the current
// segment: 31 when the segment begins high, 0 otherwise.
func (eg *EnvelopeGenerator) resetSegment() {
	switch envelopeShapes[eg.shape][eg.segment] {
	case slideDown, holdTop:
		eg.value = 31
	default:
		eg.value = 0
	}
}

// Period returns the envelope generator's period.
func (eg *EnvelopeGenerator) Period() uint16 {
	return eg.period
}

// SetPeriod sets the envelope generator's period to a value between 1 and
// 65535 inclusive. A value of zero is treated as 1.
func (eg *EnvelopeGenerator) SetPeriod(period uint16) {
	if period == 0 {
		period = 1
	}
	eg.period = period
}

// PeriodMSB returns the most significant byte of the envelope generator's
// period.
func (eg *EnvelopeGenerator) PeriodMSB() uint8 {
	return uint8(eg.period >> 8)
}

// SetPeriodMSB sets the most significant byte of the envelope generator's
// period.
//
// Setting this byte to zero when the least significant byte is also zero
// will result in the period being set to 1. It is therefore best to always
// set the most significant byte first.
func (eg *EnvelopeGenerator) SetPeriodMSB(period uint8) {
	eg.period = (eg.period & 0x00ff) | (uint16(period) << 8)
	if eg.period == 0 {
		eg.period = 1
	}
}

// PeriodLSB returns the least significant byte of the envelope generator's
// period.
func (eg *EnvelopeGenerator) PeriodLSB() uint8 {
	return uint8(eg.period & 0xff)
}

// SetPeriodLSB sets the least significant byte of the envelope generator's
// period.
//
// Setting this byte to zero when the most significant byte is also zero
// will result in the period being set to 1. It is therefore best to always
// set the most significant byte first.
func (eg *EnvelopeGenerator) SetPeriodLSB(period uint8) {
	eg.period = (eg.period & 0xff00) | uint16(period)
	if eg.period == 0 {
		eg.period = 1
	}
}

// Shape returns the envelope generator's shape register value.
func (eg *EnvelopeGenerator) Shape() uint8 {
	return eg.shape
}

// SetShape sets the envelope generator's shape to a value between 0 and 15
// inclusive. Higher values are masked.
//
// Writing the shape register restarts the envelope, as it does on the real
// chip: the position and segment are reset and the value returns to the
// starting level of the new shape.
func (eg *EnvelopeGenerator) SetShape(shape uint8) {
	eg.shape = shape & 0x0f
	eg.position = 0
	eg.segment = 0
	eg.resetSegment()
}
