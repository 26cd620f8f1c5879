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

package filter

// Factor is the amount of oversampling/decimation applied by the Decimator.
const Factor = 8

// FIRSize is the length of the windowed sinc FIR impulse response.
const FIRSize = 192

// kernel is one half of the symmetric FIR impulse response, indexed 0 to
// FIRSize/2. The full response is kernel[i] == kernel[FIRSize-i]. The
// coefficients at multiples of Factor are exactly zero (the sinc zero
// crossings line up with the decimation grid), except for the centre tap.
//
// The cutoff sits near the output Nyquist frequency; DC gain is 0.99997 and
// stopband rejection is around 90dB.
var kernel = [FIRSize/2 + 1]float64{
	0,
	-0.0000046183113992051936,
	-0.00001117761640887225,
	-0.000018610264502005432,
	-0.000025134586135631012,
	-0.000028494281690666197,
	-0.000026396828793275159,
	-0.000017094212558802156,
	0,
	0.000023798193576966866,
	0.000051281160242202183,
	0.00007762197826243427,
	0.000096759426664120416,
	0.00010240229300393402,
	0.000089344614218077106,
	0.000054875700118949183,
	0,
	-0.000069839082210680165,
	-0.0001447966132360757,
	-0.00021158452917708308,
	-0.00025535069106550544,
	-0.00026228714374322104,
	-0.00022258805927027799,
	-0.00013323230495695704,
	0,
	0.00016182578767055206,
	0.00032846175385096581,
	0.00047045611576184863,
	0.00055713851457530944,
	0.00056212565121518726,
	0.00046901918553962478,
	0.00027624866838952986,
	0,
	-0.00032564179486838622,
	-0.00065182310286710388,
	-0.00092127787309319298,
	-0.0010772534348943575,
	-0.0010737727700273478,
	-0.00088556645390392634,
	-0.00051581896090765534,
	0,
	0.00059548767193795277,
	0.0011803558710661009,
	0.0016527320270369871,
	0.0019152679330965555,
	0.0018927324805381538,
	0.0015481870327877937,
	0.00089470695834941306,
	0,
	-0.0010178225878206125,
	-0.0020037400552054292,
	-0.0027874356824117317,
	-0.003210329988021943,
	-0.0031540624117984395,
	-0.0025657163651900345,
	-0.0014750752642111449,
	0,
	0.0016624165446378462,
	0.0032591192839069179,
	0.0045165685815867747,
	0.0051838984346123896,
	0.0050774264697459933,
	0.0041192521414141585,
	0.0023628575417966491,
	0,
	-0.0026543507866759182,
	-0.0051990251084333425,
	-0.0072020238234656924,
	-0.0082672928192007358,
	-0.0081033739572956287,
	-0.006583111539570221,
	-0.0037839040415292386,
	0,
	0.0042781252851152507,
	0.0084176358598320178,
	0.01172566057463055,
	0.013550476647788672,
	0.013388189369997496,
	0.010979501242341259,
	0.006381274941685413,
	0,
	-0.007421229604153888,
	-0.01486456304340213,
	-0.021143584622178104,
	-0.02504275058758609,
	-0.025473530942547201,
	-0.021627310017882196,
	-0.013104323383225543,
	0,
	0.017065133989980476,
	0.036978919264451952,
	0.05823318062093958,
	0.079072012081405949,
	0.097675998716952317,
	0.11236045936950932,
	0.12176343577287731,
	0.125,
}

// Decimator is an 8x downsampler with an anti-aliasing windowed sinc FIR
// filter.
//
// The Buffer field is filled directly by the chip driver, Factor entries per
// output sample, at the position given to the subsequent Decimate() call.
type Decimator struct {
	Buffer [FIRSize * 2]float64
}

// Decimate applies the anti-alias filter to the FIRSize window beginning at
// start and returns the downsampled result. The argument must be the same
// start position the window was filled at.
func (dec *Decimator) Decimate(start int) float64 {
	buffer := dec.Buffer[start : start+FIRSize]

	var result float64

	// the response is symmetric so each coefficient scales the sum of the
	// matching pair of taps. the zero coefficients are skipped
	for i := 1; i < FIRSize/2; i++ {
		c := kernel[i]
		if c == 0 {
			continue
		}
		result += c * (buffer[i] + buffer[FIRSize-i])
	}
	result += kernel[FIRSize/2] * buffer[FIRSize/2]

	// copy first chunk of the window to the last chunk, priming the
	// overlapping window of the next pass over the ring
	copy(buffer[FIRSize-Factor:], buffer[:Factor])

	return result
}
