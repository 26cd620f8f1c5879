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

// The PSG's canonical register map. Note that the AY-3-8910 datasheet uses
// octal register numbers; the YM2149 datasheet uses decimal.
const (
	RegPeriodALSB uint8 = iota
	RegPeriodAMSB
	RegPeriodBLSB
	RegPeriodBMSB
	RegPeriodCLSB
	RegPeriodCMSB
	RegNoisePeriod
	RegMixer
	RegAmplitudeA
	RegAmplitudeB
	RegAmplitudeC
	RegEnvelopePeriodLSB
	RegEnvelopePeriodMSB
	RegEnvelopeShape
	RegIOPortA
	RegIOPortB
)

// SetRegister sets a PSG register to the provided value, mirroring a write
// to the chip's address/data ports. This is the natural API when embedding
// the PSG in a machine emulator.
//
// Writes are always accepted: values wider than the register are masked to
// the register's width, matching the permissive behaviour of the physical
// chip. The GPIO data registers (14 and 15) are accepted and ignored, as
// are register numbers above 15.
func (p *PSG) SetRegister(register uint8, value uint8) {
	switch register {
	case RegPeriodALSB:
		p.channels[0].SetPeriodLSB(value)
	case RegPeriodAMSB:
		p.channels[0].SetPeriodMSB(value)
	case RegPeriodBLSB:
		p.channels[1].SetPeriodLSB(value)
	case RegPeriodBMSB:
		p.channels[1].SetPeriodMSB(value)
	case RegPeriodCLSB:
		p.channels[2].SetPeriodLSB(value)
	case RegPeriodCMSB:
		p.channels[2].SetPeriodMSB(value)
	case RegNoisePeriod:
		p.noise.SetPeriod(value)
	case RegMixer:
		p.SetMixer(value)
	case RegAmplitudeA:
		p.channels[0].SetAmplitudeRegister(value)
	case RegAmplitudeB:
		p.channels[1].SetAmplitudeRegister(value)
	case RegAmplitudeC:
		p.channels[2].SetAmplitudeRegister(value)
	case RegEnvelopePeriodLSB:
		p.envelope.SetPeriodLSB(value)
	case RegEnvelopePeriodMSB:
		p.envelope.SetPeriodMSB(value)
	case RegEnvelopeShape:
		p.envelope.SetShape(value)
	}
}

// SetMixer sets the PSG's mixer/enable register. The mixer value is an
// 8-bit number consisting of the following bits, all of which disable the
// named component when set:
//
//	Bit 0: Channel A tone
//	Bit 1: Channel B tone
//	Bit 2: Channel C tone
//	Bit 3: Channel A noise
//	Bit 4: Channel B noise
//	Bit 5: Channel C noise
//	Bit 6: GPIO port A direction (ignored)
//	Bit 7: GPIO port B direction (ignored)
func (p *PSG) SetMixer(mixer uint8) {
	p.channels[0].SetToneDisabled(mixer&0x01 != 0)
	p.channels[1].SetToneDisabled(mixer&0x02 != 0)
	p.channels[2].SetToneDisabled(mixer&0x04 != 0)
	p.channels[0].SetNoiseDisabled(mixer&0x08 != 0)
	p.channels[1].SetNoiseDisabled(mixer&0x10 != 0)
	p.channels[2].SetNoiseDisabled(mixer&0x20 != 0)
}

// SetTonePeriod sets a channel's tone period to a value between 1 and 4095
// inclusive. Zero is treated as 1 and larger values are masked. The channel
// number must be 0, 1 or 2.
func (p *PSG) SetTonePeriod(channel int, period uint16) {
	p.channels[channel].SetPeriod(period)
}

// SetAmplitude sets a channel's flat amplitude to a value between 0 and 15
// inclusive. Larger values are masked. The channel number must be 0, 1 or 2.
func (p *PSG) SetAmplitude(channel int, amplitude uint8) {
	p.channels[channel].SetAmplitude(amplitude)
}

// SetToneDisabled sets a channel's tone disabled flag. The channel number
// must be 0, 1 or 2.
func (p *PSG) SetToneDisabled(channel int, disabled bool) {
	p.channels[channel].SetToneDisabled(disabled)
}

// SetNoiseDisabled sets a channel's noise disabled flag. The channel number
// must be 0, 1 or 2.
func (p *PSG) SetNoiseDisabled(channel int, disabled bool) {
	p.channels[channel].SetNoiseDisabled(disabled)
}

// SetEnvelopeEnabled sets a channel's envelope enabled flag. The channel
// number must be 0, 1 or 2.
func (p *PSG) SetEnvelopeEnabled(channel int, enabled bool) {
	p.channels[channel].SetEnvelopeEnabled(enabled)
}

// SetNoisePeriod sets the noise generator's period to a value between 1 and
// 31 inclusive. Zero is treated as 1 and larger values are masked.
func (p *PSG) SetNoisePeriod(period uint8) {
	p.noise.SetPeriod(period)
}

// SetEnvelopePeriod sets the envelope generator's period to a value between
// 1 and 65535 inclusive. Zero is treated as 1.
func (p *PSG) SetEnvelopePeriod(period uint16) {
	p.envelope.SetPeriod(period)
}

// SetEnvelopeShape sets the envelope shape to a value between 0 and 15
// inclusive. Larger values are masked. Writing the shape restarts the
// envelope.
func (p *PSG) SetEnvelopeShape(shape uint8) {
	p.envelope.SetShape(shape)
}
