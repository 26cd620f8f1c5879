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

// Package sdlaudio plays a rendered sample stream through the host's sound
// device, using SDL. Sample pairs are queued rather than served through a
// callback, so the caller can simply alternate Render() and SetAudio() calls
// at its leisure.
package sdlaudio

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/thedjinn/psg-go/curated"
	"github.com/thedjinn/psg-go/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// Error pattern for all failures in this package.
const SdlAudioError = "sdlaudio: %v"

// the number of stereo frames to batch up before queueing them with SDL.
// small enough to keep latency reasonable, large enough to keep the queueing
// overhead down. the precise value is not critical.
const bufferLength = 1024

// if the device queue grows beyond this many bytes we are rendering faster
// than real time and should wait for playback to catch up.
const maxQueueLength = bufferLength * 8 * 4

// Audio outputs sound using SDL.
type Audio struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec

	// sample pairs are accumulated as little-endian float32 bytes, ready to
	// be passed to the SDL queue without further conversion
	buffer   []byte
	bufferCt int
}

// NewAudio is the preferred method of initialisation for the Audio type. The
// sound device is opened immediately and remains open until EndMixing() is
// called.
func NewAudio(sampleRate uint32) (*Audio, error) {
	if err := sdl.Init(sdl.INIT_AUDIO); err != nil {
		return nil, curated.Errorf(SdlAudioError, err)
	}

	aud := &Audio{
		buffer: make([]byte, bufferLength*8),
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(sampleRate),
		Format:   sdl.AUDIO_F32LSB,
		Channels: 2,
		Samples:  uint16(bufferLength),
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return nil, curated.Errorf(SdlAudioError, err)
	}

	aud.spec = actualSpec

	logger.Logf("sdlaudio", "device opened: %dHz, %d channels, %d sample buffer",
		aud.spec.Freq, aud.spec.Channels, aud.spec.Samples)

	sdl.PauseAudioDevice(aud.id, false)

	return aud, nil
}

// SetAudio queues a stereo pair for playback.
func (aud *Audio) SetAudio(left, right float64) error {
	binary.LittleEndian.PutUint32(aud.buffer[aud.bufferCt:], math.Float32bits(float32(left)))
	binary.LittleEndian.PutUint32(aud.buffer[aud.bufferCt+4:], math.Float32bits(float32(right)))
	aud.bufferCt += 8

	if aud.bufferCt >= len(aud.buffer) {
		return aud.flush()
	}

	return nil
}

func (aud *Audio) flush() error {
	// when rendering runs ahead of real time the queue fills up. wait for
	// the device to play some of it rather than queueing without bound
	for sdl.GetQueuedAudioSize(aud.id) > maxQueueLength {
		time.Sleep(time.Millisecond)
	}

	err := sdl.QueueAudio(aud.id, aud.buffer[:aud.bufferCt])
	if err != nil {
		return curated.Errorf(SdlAudioError, err)
	}
	aud.bufferCt = 0

	return nil
}

// EndMixing drains any queued audio and closes the sound device.
func (aud *Audio) EndMixing() error {
	defer func() {
		sdl.CloseAudioDevice(aud.id)
		sdl.QuitSubSystem(sdl.INIT_AUDIO)
	}()

	err := aud.flush()
	if err != nil {
		return err
	}

	for sdl.GetQueuedAudioSize(aud.id) > 0 {
		time.Sleep(10 * time.Millisecond)
	}

	return nil
}
