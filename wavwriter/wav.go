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

// Package wavwriter allows writing of rendered sample streams to disk as a
// WAV file. Note that audio data is buffered in memory in its entirety and
// written to disk on EndMixing(). It is therefore intended for rendering
// finite snippets rather than open-ended streams.
package wavwriter

import (
	"os"

	"github.com/thedjinn/psg-go/curated"
	"github.com/thedjinn/psg-go/logger"
	"github.com/youpy/go-wav"
)

// Error pattern for all failures in this package.
const WavWriterError = "wavwriter: %v"

// WavWriter buffers a stereo sample stream and writes it out as a 16-bit
// WAV file.
type WavWriter struct {
	filename   string
	sampleRate uint32
	buffer     []wav.Sample
}

// New is the preferred method of initialisation for the WavWriter type. The
// file is not created until EndMixing() is called.
func New(filename string, sampleRate uint32) *WavWriter {
	return &WavWriter{
		filename:   filename,
		sampleRate: sampleRate,
		buffer:     make([]wav.Sample, 0),
	}
}

// SetAudio adds a stereo pair to the output stream. Input samples are in
// the range -1.0 to 1.0 and are quantised to 16-bit. Values outside the
// range are clamped.
func (aw *WavWriter) SetAudio(left, right float64) {
	s := wav.Sample{}
	s.Values[0] = quantise(left)
	s.Values[1] = quantise(right)
	aw.buffer = append(aw.buffer, s)
}

// EndMixing writes the buffered samples to disk.
func (aw *WavWriter) EndMixing() (rerr error) {
	f, err := os.Create(aw.filename)
	if err != nil {
		return curated.Errorf(WavWriterError, err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf(WavWriterError, err)
		}
	}()

	enc := wav.NewWriter(f, uint32(len(aw.buffer)), 2, aw.sampleRate, 16)

	logger.Logf("wavwriter", "writing %d samples to %s", len(aw.buffer), aw.filename)

	err = enc.WriteSamples(aw.buffer)
	if err != nil {
		return curated.Errorf(WavWriterError, err)
	}

	return nil
}

func quantise(v float64) int {
	if v > 1.0 {
		v = 1.0
	} else if v < -1.0 {
		v = -1.0
	}
	return int(int16(v * 32767.0))
}
