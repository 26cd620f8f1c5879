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
	"strings"

	"github.com/thedjinn/psg-go/curated"
)

// ChipType is an enumeration of the chip variants supported by the PSG type.
type ChipType int

const (
	// AY is the original General Instrument AY-3-8910.
	AY ChipType = iota

	// YM is the Yamaha YM2149. In all respects identical to the AY-3-8910
	// except for the envelope DAC, which has double the resolution,
	// resulting in smoother envelopes.
	YM
)

func (chip ChipType) String() string {
	switch chip {
	case AY:
		return "AY-3-8910"
	case YM:
		return "YM2149"
	}
	return "unknown"
}

// ParseChipType converts a string to a ChipType. Recognised values are "AY"
// and "YM" (case insensitive), as well as the full chip names returned by
// String().
func ParseChipType(s string) (ChipType, error) {
	switch strings.ToUpper(s) {
	case "AY", "AY-3-8910":
		return AY, nil
	case "YM", "YM2149":
		return YM, nil
	}
	return AY, curated.Errorf(UnsupportedChipType, s)
}

// dacTable returns the digital-to-analog conversion table for the chip
// type. The returned table is shared and must never be mutated.
func (chip ChipType) dacTable() *[32]float64 {
	switch chip {
	case AY:
		return &ayDacTable
	case YM:
		return &ymDacTable
	}
	return nil
}

// Digital-to-analog amplitude conversion table for the AY-3-8910, derived
// from measurements of the real chip. Levels are indexed with 5-bit
// (envelope) resolution but the AY only has 16 distinct amplitude steps, so
// adjacent entries are duplicated.
var ayDacTable = [32]float64{
	0.0, 0.0, 0.00999465934234, 0.00999465934234,
	0.0144502937362, 0.0144502937362, 0.0210574502174, 0.0210574502174,
	0.0307011520562, 0.0307011520562, 0.0455481803616, 0.0455481803616,
	0.0644998855573, 0.0644998855573, 0.107362478065, 0.107362478065,
	0.126588845655, 0.126588845655, 0.20498970016, 0.20498970016,
	0.292210269322, 0.292210269322, 0.372838941024, 0.372838941024,
	0.492530708782, 0.492530708782, 0.635324635691, 0.635324635691,
	0.805584802014, 0.805584802014, 1.0, 1.0,
}

// Digital-to-analog amplitude conversion table for the YM2149, which uses
// the full 5-bit dynamic range. The registers still set the flat amplitude
// as a 4-bit value; only the envelope generator reaches the intermediate
// steps.
var ymDacTable = [32]float64{
	0.0, 0.0, 0.00465400167849, 0.00772106507973,
	0.0109559777218, 0.0139620050355, 0.0169985503929, 0.0200198367285,
	0.024368657969, 0.029694056611, 0.0350652323186, 0.0403906309606,
	0.0485389486534, 0.0583352407111, 0.0680552376593, 0.0777752346075,
	0.0925154497597, 0.111085679408, 0.129747463188, 0.148485542077,
	0.17666895552, 0.211551079576, 0.246387426566, 0.281101701381,
	0.333730067903, 0.400427252613, 0.467383840696, 0.53443198291,
	0.635172045472, 0.75800717174, 0.879926756695, 1.0,
}
