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

import "math"

// Channel is one of the PSG's three tone generator channels: a single square
// wave oscillator with configurable period, amplitude and panning.
//
// The channel's signal is the combination of the square oscillator and the
// chip's shared noise generator, which can both be turned off independently.
// The combined signal is scaled by the channel amplitude, which is either
// the flat 4-bit amplitude value or the output of the shared envelope
// generator.
type Channel struct {
	// oscillator
	period   uint16
	position uint16
	value    uint8

	// flags. note that tone and noise follow the polarity of the chip's
	// mixer register: set means disabled
	toneOff    bool
	noiseOff   bool
	envelopeOn bool

	// amplitude
	amplitude uint8

	// left/right panning factors
	panLeft  float64
	panRight float64
}

// quiescent state for a channel. tone and noise disabled, centre panning.
func (ch *Channel) reset() {
	ch.period = 1
	ch.position = 0
	ch.value = 0
	ch.toneOff = true
	ch.noiseOff = true
	ch.envelopeOn = false
	ch.amplitude = 0
	ch.panLeft = 0.5
	ch.panRight = 0.5
}

// tick the square wave oscillator forward by one chip tick, returning the
// new output bit.
func (ch *Channel) tick() uint8 {
	ch.position++

	if ch.position >= ch.period {
		ch.position = 0
		ch.value ^= 1
	}

	return ch.value
}

// Period returns the channel's tone period. The value is between 1 and 4095
// inclusive.
func (ch *Channel) Period() uint16 {
	return ch.period
}

// SetPeriod sets the channel's tone period to a value between 1 and 4095
// inclusive. A value of zero is treated as 1, mirroring the behaviour of the
// real chip. Higher values are masked.
func (ch *Channel) SetPeriod(period uint16) {
	ch.period = period & 0x0fff
	if ch.period == 0 {
		ch.period = 1
	}
}

// PeriodMSB returns the most significant byte of the channel's tone period.
// The value is between 0 and 15 inclusive.
func (ch *Channel) PeriodMSB() uint8 {
	return uint8(ch.period >> 8)
}

// SetPeriodMSB sets the most significant byte of the channel's tone period
// to a value between 0 and 15 inclusive. Higher values are masked.
//
// Setting this byte to zero when the least significant byte is also zero
// will result in the period being set to 1. It is therefore best to always
// set the most significant byte first.
func (ch *Channel) SetPeriodMSB(period uint8) {
	ch.period = (ch.period & 0x00ff) | ((uint16(period) & 0x0f) << 8)
	if ch.period == 0 {
		ch.period = 1
	}
}

// PeriodLSB returns the least significant byte of the channel's tone period.
func (ch *Channel) PeriodLSB() uint8 {
	return uint8(ch.period & 0xff)
}

// SetPeriodLSB sets the least significant byte of the channel's tone period.
//
// Setting this byte to zero when the most significant byte is also zero
// will result in the period being set to 1. It is therefore best to always
// set the most significant byte first.
func (ch *Channel) SetPeriodLSB(period uint8) {
	ch.period = (ch.period & 0x0f00) | uint16(period)
	if ch.period == 0 {
		ch.period = 1
	}
}

// Amplitude returns the channel's flat amplitude. The value is between 0 and
// 15 inclusive.
func (ch *Channel) Amplitude() uint8 {
	return ch.amplitude
}

// SetAmplitude sets the channel's flat amplitude to a value between 0 and 15
// inclusive. Higher values are masked.
func (ch *Channel) SetAmplitude(amplitude uint8) {
	ch.amplitude = amplitude & 0x0f
}

// EnvelopeEnabled returns the channel's envelope enabled flag.
func (ch *Channel) EnvelopeEnabled() bool {
	return ch.envelopeOn
}

// SetEnvelopeEnabled sets the channel's envelope enabled flag. When set, the
// flat amplitude is ignored and the channel level follows the shared
// envelope generator.
func (ch *Channel) SetEnvelopeEnabled(enabled bool) {
	ch.envelopeOn = enabled
}

// AmplitudeRegister returns the combination of the flat amplitude (bits 0 to
// 3) and the envelope enabled flag (bit 4), as read from the channel's
// amplitude register on the real chip.
func (ch *Channel) AmplitudeRegister() uint8 {
	v := ch.amplitude
	if ch.envelopeOn {
		v |= 0x10
	}
	return v
}

// SetAmplitudeRegister sets the flat amplitude from bits 0 to 3 of the value
// and the envelope enabled flag from bit 4. This is equivalent to writing
// the channel's amplitude register on the real chip.
func (ch *Channel) SetAmplitudeRegister(value uint8) {
	ch.amplitude = value & 0x0f
	ch.envelopeOn = value&0x10 != 0
}

// ToneDisabled returns the channel's tone disabled flag.
func (ch *Channel) ToneDisabled() bool {
	return ch.toneOff
}

// SetToneDisabled sets the channel's tone disabled flag.
func (ch *Channel) SetToneDisabled(disabled bool) {
	ch.toneOff = disabled
}

// NoiseDisabled returns the channel's noise disabled flag.
func (ch *Channel) NoiseDisabled() bool {
	return ch.noiseOff
}

// SetNoiseDisabled sets the channel's noise disabled flag.
func (ch *Channel) SetNoiseDisabled(disabled bool) {
	ch.noiseOff = disabled
}

// Panning returns the scaling factors applied to the channel's contribution
// to the left and right outputs.
func (ch *Channel) Panning() (float64, float64) {
	return ch.panLeft, ch.panRight
}

// SetPanning sets the channel's stereo balance to a value between 0.0 (full
// left) and 1.0 (full right) inclusive.
//
// With equalPower set the balance is interpreted as the ratio between each
// side's power rather than amplitude, taking the square root of each side's
// factor. This keeps perceived loudness constant as a channel sweeps across
// the stereo image.
func (ch *Channel) SetPanning(balance float64, equalPower bool) {
	ch.panLeft = 1.0 - balance
	ch.panRight = balance

	if equalPower {
		ch.panLeft = math.Sqrt(ch.panLeft)
		ch.panRight = math.Sqrt(ch.panRight)
	}
}
