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

package notes_test

import (
	"testing"

	"github.com/thedjinn/psg-go/notes"
	"github.com/thedjinn/psg-go/test"
)

func TestMIDIPitchToFrequency(t *testing.T) {
	test.Equate(t, notes.MIDIPitchToFrequency(81.0), 880.0)
	test.Equate(t, notes.MIDIPitchToFrequency(69.0), 440.0)
	test.Equate(t, notes.MIDIPitchToFrequency(57.0), 220.0)
}

func TestFrequencyToMIDIPitch(t *testing.T) {
	test.Equate(t, notes.FrequencyToMIDIPitch(880.0), 81.0)
	test.Equate(t, notes.FrequencyToMIDIPitch(440.0), 69.0)
	test.Equate(t, notes.FrequencyToMIDIPitch(220.0), 57.0)
}

func TestTonePeriodMIDIConversion(t *testing.T) {
	period := notes.MIDIPitchToTonePeriod(57.0, 4400000.0)
	pitch := notes.TonePeriodToMIDIPitch(period, 4400000.0)
	test.Equate(t, pitch, 57.0)

	pitch = notes.TonePeriodToMIDIPitch(100, 4400000.0)
	period = notes.MIDIPitchToTonePeriod(pitch, 4400000.0)
	test.Equate(t, period, 100)
}

func TestEnvelopePeriodMIDIConversion(t *testing.T) {
	period := notes.MIDIPitchToEnvelopePeriod(21.0, 4400000.0)
	pitch := notes.EnvelopePeriodToMIDIPitch(period, 4400000.0)
	test.Equate(t, pitch, 21.0)

	pitch = notes.EnvelopePeriodToMIDIPitch(100, 4400000.0)
	period = notes.MIDIPitchToEnvelopePeriod(pitch, 4400000.0)
	test.Equate(t, period, 100)
}

func TestTonePeriodConversion(t *testing.T) {
	period := notes.FrequencyToTonePeriod(100.0, 1000000.0)
	test.Equate(t, notes.TonePeriodToFrequency(period, 1000000.0), 100.0)

	frequency := notes.TonePeriodToFrequency(100, 1000000.0)
	test.Equate(t, notes.FrequencyToTonePeriod(frequency, 1000000.0), 100)
}

func TestEnvelopePeriodConversion(t *testing.T) {
	period := notes.FrequencyToEnvelopePeriod(1.25, 1000000.0)
	test.Equate(t, notes.EnvelopePeriodToFrequency(period, 1000000.0), 1.25)

	frequency := notes.EnvelopePeriodToFrequency(100, 1000000.0)
	test.Equate(t, notes.FrequencyToEnvelopePeriod(frequency, 1000000.0), 100)
}
