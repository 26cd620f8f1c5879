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

// Package notes provides conversions between frequencies, tone/envelope
// period values and MIDI pitch numbers.
//
// These are pure functions over register values. None of them carry any
// chip timing semantics; they exist so that host software (trackers in
// particular) can work in musical units.
package notes

import "math"

// the tone generators divide the chip clock by 16 per period unit. the
// envelope generator divides by 256
const (
	toneDivider     = 16.0
	envelopeDivider = 256.0
)

// MIDIPitchToFrequency converts a MIDI pitch number into its corresponding
// frequency. The pitch number is not required to be an integer.
func MIDIPitchToFrequency(pitch float64) float64 {
	return math.Pow(2.0, (pitch-69.0)/12.0) * 440.0
}

// FrequencyToMIDIPitch converts a frequency to its corresponding MIDI pitch
// number. The resulting pitch number is not guaranteed to be an integer.
func FrequencyToMIDIPitch(frequency float64) float64 {
	return math.Log2(frequency/440.0)*12.0 + 69.0
}

// FrequencyToTonePeriod converts a frequency into the nearest tone period
// value for the specified clock rate.
func FrequencyToTonePeriod(frequency float64, clockRate float64) uint16 {
	return uint16(math.Round(clockRate / (toneDivider * frequency)))
}

// TonePeriodToFrequency converts a tone period value into its corresponding
// frequency for the specified clock rate.
func TonePeriodToFrequency(period uint16, clockRate float64) float64 {
	return clockRate / (float64(period) * toneDivider)
}

// FrequencyToEnvelopePeriod converts a frequency into the nearest envelope
// period value for the specified clock rate.
func FrequencyToEnvelopePeriod(frequency float64, clockRate float64) uint16 {
	return uint16(math.Round(clockRate / (envelopeDivider * frequency)))
}

// EnvelopePeriodToFrequency converts an envelope period value into its
// corresponding frequency for the specified clock rate.
func EnvelopePeriodToFrequency(period uint16, clockRate float64) float64 {
	return clockRate / (float64(period) * envelopeDivider)
}

// MIDIPitchToTonePeriod converts a MIDI pitch number into a suitable tone
// period value for the specified clock rate.
func MIDIPitchToTonePeriod(pitch float64, clockRate float64) uint16 {
	return FrequencyToTonePeriod(MIDIPitchToFrequency(pitch), clockRate)
}

// TonePeriodToMIDIPitch converts a tone period value into its corresponding
// MIDI pitch number for the specified clock rate.
func TonePeriodToMIDIPitch(period uint16, clockRate float64) float64 {
	return FrequencyToMIDIPitch(TonePeriodToFrequency(period, clockRate))
}

// MIDIPitchToEnvelopePeriod converts a MIDI pitch number into a suitable
// envelope period value for the specified clock rate.
func MIDIPitchToEnvelopePeriod(pitch float64, clockRate float64) uint16 {
	return FrequencyToEnvelopePeriod(MIDIPitchToFrequency(pitch), clockRate)
}

// EnvelopePeriodToMIDIPitch converts an envelope period value into its
// corresponding MIDI pitch number for the specified clock rate.
func EnvelopePeriodToMIDIPitch(period uint16, clockRate float64) float64 {
	return FrequencyToMIDIPitch(EnvelopePeriodToFrequency(period, clockRate))
}
