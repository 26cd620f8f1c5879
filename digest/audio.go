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

// Package digest produces a fingerprint of a rendered sample stream.
// Fingerprints are cheap to keep and compare, making them useful for
// regression testing: two streams with the same digest are the same
// recording for all practical purposes.
package digest

import (
	"crypto/sha1"
	"encoding/binary"
	"fmt"
	"math"
)

// the buffer length is not critical but it must be at least sha1.Size bytes
// plus one full stereo frame.
const audioBufferLength = 1024 + sha1.Size

// to allow digests over streams of any length, the previous digest value is
// stuffed into the first part of the buffer and included in the next digest
// calculation.
const audioBufferStart = sha1.Size

// Audio computes a running digest of a stereo sample stream.
//
// The zero value is ready for use. Feed samples with SetAudio() and read
// the fingerprint with String() once the stream has ended.
type Audio struct {
	digest   [sha1.Size]byte
	buffer   [audioBufferLength]uint8
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type.
func NewAudio() *Audio {
	dig := &Audio{}
	dig.bufferCt = audioBufferStart
	return dig
}

// String returns the fingerprint of the stream so far, flushing any
// buffered samples first.
func (dig *Audio) String() string {
	dig.flush()
	return fmt.Sprintf("%x", dig.digest)
}

// SetAudio adds a stereo pair to the digest. Samples are reduced to float32
// before hashing; the full float64 resolution of the render pipeline is
// below the reproducibility threshold we care about.
func (dig *Audio) SetAudio(left, right float64) {
	if dig.bufferCt+8 > audioBufferLength {
		dig.flush()
	}

	binary.LittleEndian.PutUint32(dig.buffer[dig.bufferCt:], math.Float32bits(float32(left)))
	binary.LittleEndian.PutUint32(dig.buffer[dig.bufferCt+4:], math.Float32bits(float32(right)))
	dig.bufferCt += 8
}

// flush folds the buffered samples into the digest. the existing digest
// value is chained through the start of the buffer.
func (dig *Audio) flush() {
	if dig.bufferCt == audioBufferStart {
		return
	}

	copy(dig.buffer[:audioBufferStart], dig.digest[:])
	dig.digest = sha1.Sum(dig.buffer[:dig.bufferCt])
	dig.bufferCt = audioBufferStart
}
