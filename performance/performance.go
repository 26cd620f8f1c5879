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

package performance

import (
	"fmt"
	"io"
	"time"

	"github.com/thedjinn/psg-go/curated"
	"github.com/thedjinn/psg-go/hardware/psg"
	"github.com/thedjinn/psg-go/notes"
)

// Error pattern for performance check failures.
const PerformanceError = "performance: %v"

// the number of samples to render between checks of the wall clock.
const renderBlock = 4096

// this is only accumulated so that the render loop cannot be optimised away.
var sink float64

// Check measures the render performance of the emulation. A busy three
// channel scenario is rendered for the specified wall-clock duration and the
// resulting sample rate is reported, along with how many times faster than
// real time the emulation runs.
//
// Profiling information is generated as requested by the profile argument.
func Check(output io.Writer, profile Profile, clockRate float64, sampleRate uint32, chip psg.ChipType, duration string) error {
	dur, err := time.ParseDuration(duration)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	p, err := psg.New(clockRate, sampleRate, chip)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	// a deliberately busy scenario. all three channels enabled, one with
	// envelope and one with noise
	p.SetTonePeriod(0, notes.MIDIPitchToTonePeriod(69.0, clockRate))
	p.SetAmplitude(0, 12)
	p.SetToneDisabled(0, false)

	p.SetTonePeriod(1, notes.MIDIPitchToTonePeriod(57.0, clockRate))
	p.SetEnvelopeEnabled(1, true)
	p.SetToneDisabled(1, false)
	p.SetEnvelopePeriod(notes.FrequencyToEnvelopePeriod(4.0, clockRate))
	p.SetEnvelopeShape(8)

	p.SetNoisePeriod(12)
	p.SetAmplitude(2, 8)
	p.SetNoiseDisabled(2, false)

	var numSamples int

	runner := func() error {
		startTime := time.Now()

		for time.Since(startTime) < dur {
			for i := 0; i < renderBlock; i++ {
				left, right := p.Render()
				sink += left + right
			}
			numSamples += renderBlock
		}

		return nil
	}

	err = RunProfiler(profile, "performance", runner)
	if err != nil {
		return curated.Errorf(PerformanceError, err)
	}

	samplesPerSecond := float64(numSamples) / dur.Seconds()
	ratio := samplesPerSecond / float64(sampleRate)
	fmt.Fprintf(output, "%.0f samples/sec (%d samples in %.2f seconds) %.1fx real time\n",
		samplesPerSecond, numSamples, dur.Seconds(), ratio)

	return nil
}
