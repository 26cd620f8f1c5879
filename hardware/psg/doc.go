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

// Package psg emulates the General Instrument AY-3-8910 programmable sound
// generator and its most popular clone, the Yamaha YM2149. These chips were
// used in many of the popular home computers of the 1980s, among them the
// MSX family, the Sinclair ZX Spectrum and the Atari ST.
//
// The emulation is cycle accurate and band-limited: the three tone
// channels, the shared noise and envelope generators and the measured
// non-linear DAC response are modelled at the chip's own clock, with a
// windowed sinc decimation filter converting the result to the host sample
// rate without audible aliasing. The implementation is based on the
// excellent Ayumi by Peter Sovietov.
//
// To use, initialise a PSG, set some registers and render in a loop:
//
//	p, err := psg.New(1789772.5, 44100, psg.YM)
//	if err != nil {
//		...
//	}
//
//	ch := p.Channel(0)
//	ch.SetPeriod(100)
//	ch.SetAmplitude(8)
//	ch.SetToneDisabled(false)
//
//	for i := 0; i < 44100; i++ {
//		left, right := p.Render()
//		...
//	}
//
// Register values can also be set through the raw register interface with
// SetRegister(), which is the natural fit when embedding the PSG in a
// machine emulator. The tuning of periods to frequencies and MIDI pitches
// is handled by the notes package.
//
// The GPIO ports of the real chip are not modelled. Writes to their data
// registers are accepted and ignored.
package psg
