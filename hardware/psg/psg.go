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
	"math"

	"github.com/thedjinn/psg-go/curated"
	"github.com/thedjinn/psg-go/hardware/psg/filter"
)

// Error patterns for the construction failures produced by New(). Use with
// curated.Is().
const (
	InvalidClockRate    = "psg: invalid clock rate (%v)"
	InvalidSampleRate   = "psg: invalid sample rate (%d)"
	ClockRateTooHigh    = "psg: clock rate %v too high for sample rate %d"
	UnsupportedChipType = "psg: unsupported chip type (%v)"
)

// PSG is the emulation of the programmable sound generator. It contains all
// state required to fully emulate the selected chip, which is either the
// General Instrument AY-3-8910 or the Yamaha YM2149.
//
// A PSG instance is self-contained. Two instances never share state and can
// be driven from different goroutines. A single instance performs no
// internal locking and must not be mutated concurrently.
//
// The base period unit used by the tone generators is the period of a clock
// cycle multiplied by 16 (the chip contains a 16x frequency divider). With
// a clock rate of 1MHz, tones between 15.26Hz and 31.25kHz can be obtained,
// although in practice the useful range is bounded by the output Nyquist
// frequency. The noise and envelope periods work similarly except that
// those units produce a new value after every period rather than
// oscillating.
//
// Common clock rates:
//
//	Amstrad CPC: 1MHz
//	Atari ST: 2MHz
//	MSX: 1.7897725MHz
//	Oric-1: 1MHz
//	ZX Spectrum: 1.7734MHz
type PSG struct {
	channels [3]Channel
	noise    NoiseGenerator
	envelope EnvelopeGenerator

	// active digital-to-analog table. selected by chip type
	dacTable *[32]float64

	// fractional chip tick accumulator. x is the position of the next chip
	// tick within the current oversampled slot and step is the amount it
	// advances per slot. the remainder is carried across Render() calls so
	// the clock ratio is honoured exactly over any run length
	x    float64
	step float64

	// resampling pipeline, one instance of each stage per output channel
	leftInterpolator  filter.Interpolator
	rightInterpolator filter.Interpolator
	leftDecimator     filter.Decimator
	rightDecimator    filter.Decimator
	decimatorIndex    int

	dcFilter filter.DCFilter
}

// New is the preferred method of initialisation for the PSG type.
//
// The clock rate is the frequency of the emulated chip's clock input in Hz
// and the sample rate is the output frequency Render() is expected to be
// called at.
//
// There is an upper bound on the clock rate for a given sample rate, equal
// to the sample rate multiplied by 128. For a 44100Hz sample rate the limit
// is 5.6448MHz, well above any clock rate the chip was ever used with.
func New(clockRate float64, sampleRate uint32, chip ChipType) (*PSG, error) {
	if clockRate <= 0 || math.IsNaN(clockRate) || math.IsInf(clockRate, 0) {
		return nil, curated.Errorf(InvalidClockRate, clockRate)
	}

	if sampleRate == 0 {
		return nil, curated.Errorf(InvalidSampleRate, sampleRate)
	}

	dacTable := chip.dacTable()
	if dacTable == nil {
		return nil, curated.Errorf(UnsupportedChipType, chip)
	}

	// the generators run at one eighth of the clock rate and the decimator
	// needs filter.Factor slots per output sample. a step of 1.0 or more
	// would mean more than one chip tick per slot
	step := clockRate / (float64(sampleRate) * 8 * filter.Factor)
	if step >= 1.0 {
		return nil, curated.Errorf(ClockRateTooHigh, clockRate, sampleRate)
	}

	p := &PSG{
		dacTable: dacTable,
		step:     step,
	}

	for i := range p.channels {
		p.channels[i].reset()
	}
	p.noise.reset()
	p.envelope.reset()

	return p, nil
}

// SetChipType changes the chip variant being emulated. Only the
// digital-to-analog conversion table is affected, which is most noticeable
// in the envelope resolution.
func (p *PSG) SetChipType(chip ChipType) error {
	dacTable := chip.dacTable()
	if dacTable == nil {
		return curated.Errorf(UnsupportedChipType, chip)
	}
	p.dacTable = dacTable
	return nil
}

// Channel returns the channel struct for the specified channel number. The
// channel number must be 0, 1 or 2.
//
// The returned pointer can be used for direct property access, bypassing
// the register interface:
//
//	ch := p.Channel(0)
//	ch.SetPeriod(100)
//	ch.SetAmplitude(8)
//	ch.SetToneDisabled(false)
func (p *PSG) Channel(channel int) *Channel {
	return &p.channels[channel]
}

// NoiseGenerator returns the PSG's shared noise generator.
func (p *PSG) NoiseGenerator() *NoiseGenerator {
	return &p.noise
}

// EnvelopeGenerator returns the PSG's shared envelope generator.
func (p *PSG) EnvelopeGenerator() *EnvelopeGenerator {
	return &p.envelope
}

// tick advances every generator by one chip tick and mixes the result,
// returning the raw stereo pair for the tick.
//
// The mix for each channel is purely combinational: the tone and noise bits
// gate the amplitude level, which is either the envelope output or the flat
// amplitude widened to the 5-bit range of the DAC table.
func (p *PSG) tick() (float64, float64) {
	noise := p.noise.tick()
	envelope := p.envelope.tick()

	var left, right float64

	for i := range p.channels {
		ch := &p.channels[i]

		level := (ch.tick() | maskBit(ch.toneOff)) & (noise | maskBit(ch.noiseOff))

		if ch.envelopeOn {
			level *= envelope
		} else {
			level *= ch.amplitude*2 + 1
		}

		amplitude := p.dacTable[level]

		left += amplitude * ch.panLeft
		right += amplitude * ch.panRight
	}

	return left, right
}

// a disabled tone or noise component contributes a constant high bit to the
// mixer gate, matching the pull-up behaviour of the real chip's mixer.
func maskBit(disabled bool) uint8 {
	if disabled {
		return 1
	}
	return 0
}

// Render advances the emulation by exactly one output sample's worth of
// chip time and returns the resulting stereo pair. The left channel is the
// first return value.
//
// This is the sole driver of emulated time. The host is responsible for
// calling Render() at the configured sample rate and for any actual audio
// output.
func (p *PSG) Render() (float64, float64) {
	decimatorStart := filter.FIRSize - p.decimatorIndex*filter.Factor
	p.decimatorIndex = (p.decimatorIndex + 1) % (filter.FIRSize/filter.Factor - 1)

	// fill the decimator slots in reverse, running the generators whenever
	// the fractional accumulator crosses a chip tick boundary
	for offset := filter.Factor - 1; offset >= 0; offset-- {
		p.x += p.step

		if p.x >= 1.0 {
			p.x -= 1.0

			left, right := p.tick()
			p.leftInterpolator.Feed(left)
			p.rightInterpolator.Feed(right)
		}

		p.leftDecimator.Buffer[decimatorStart+offset] = p.leftInterpolator.Interpolate(p.x)
		p.rightDecimator.Buffer[decimatorStart+offset] = p.rightInterpolator.Interpolate(p.x)
	}

	return p.dcFilter.Filter(
		p.leftDecimator.Decimate(decimatorStart),
		p.rightDecimator.Decimate(decimatorStart),
	)
}
