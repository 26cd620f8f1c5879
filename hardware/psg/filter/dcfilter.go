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

// length of the DCFilter delay lines. must be a power of two because the
// write index wraps with a mask.
const dcFilterSize = 1024

// DCFilter is a two channel DC-offset elimination filter. It is a moving
// average filter where the average is subtracted from the input signal.
type DCFilter struct {
	leftSum    float64
	rightSum   float64
	leftDelay  [dcFilterSize]float64
	rightDelay [dcFilterSize]float64
	index      int
}

// Filter the provided stereo pair, returning the input signal with the
// moving average removed.
func (dc *DCFilter) Filter(left, right float64) (float64, float64) {
	dc.leftSum += -dc.leftDelay[dc.index] + left
	dc.rightSum += -dc.rightDelay[dc.index] + right

	dc.leftDelay[dc.index] = left
	dc.rightDelay[dc.index] = right

	dc.index = (dc.index + 1) & (dcFilterSize - 1)

	return left - dc.leftSum*(1.0/dcFilterSize), right - dc.rightSum*(1.0/dcFilterSize)
}
